package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/typer-app/backend/internal/entity"
	"github.com/typer-app/backend/internal/repository"
)

var (
	User1 = entity.User{
		Base: entity.Base{ID: "user1"},
		Name: "user1",
		Role: entity.UserRole,
	}

	User2 = entity.User{
		Base: entity.Base{ID: "user2"},
		Name: "user2",
		Role: entity.UserRole,
	}

	User3 = entity.User{
		Base: entity.Base{ID: "user3"},
		Name: "user3",
		Role: entity.UserRole,
	}

	SuperAdmin = entity.User{
		Base: entity.Base{ID: "super_admin"},
		Name: "super_admin",
		Role: entity.SuperAdminRole,
	}

	Group1 = entity.Group{
		Base:      entity.Base{ID: "group1"},
		Name:      "Group 1",
		Location:  "Warsaw",
		CreatedBy: User1.ID,
	}

	Group2 = entity.Group{
		Base:      entity.Base{ID: "group2"},
		Name:      "Group 2",
		Location:  "Berlin",
		CreatedBy: User2.ID,
	}

	// User1 is the admin of Group1, User2 a plain member. User3 belongs to
	// Group2 only.
	Member1 = entity.Member{UserID: User1.ID, GroupID: Group1.ID, Admin: true}
	Member2 = entity.Member{UserID: User2.ID, GroupID: Group1.ID, Admin: false}
	Member3 = entity.Member{UserID: User3.ID, GroupID: Group2.ID, Admin: true}

	// Event1 already started, Event2 has not.
	Event1 = entity.Event{
		Base:      entity.Base{ID: "event1"},
		GroupID:   Group1.ID,
		Team1:     "Poland",
		Team2:     "Germany",
		StartTime: time.Now().Add(-24 * time.Hour),
	}

	Event2 = entity.Event{
		Base:      entity.Base{ID: "event2"},
		GroupID:   Group1.ID,
		Team1:     "France",
		Team2:     "Spain",
		StartTime: time.Now().Add(24 * time.Hour),
	}
)

// CreateFixtureDb populates the database behind ctx with the fixture users,
// groups, members, and events.
func CreateFixtureDb(ctx context.Context, t *testing.T) {
	userRepo := repository.NewUserRepository()
	for _, user := range []entity.User{User1, User2, User3, SuperAdmin} {
		if err := userRepo.Create(ctx, &user); err != nil {
			t.Fatalf("cannot create user %s: %v", user.ID, err)
		}
	}

	groupRepo := repository.NewGroupRepository()
	for _, group := range []entity.Group{Group1, Group2} {
		if err := groupRepo.Create(ctx, &group); err != nil {
			t.Fatalf("cannot create group %s: %v", group.ID, err)
		}
	}

	memberRepo := repository.NewMemberRepository()
	for _, member := range []entity.Member{Member1, Member2, Member3} {
		if err := memberRepo.Create(ctx, &member); err != nil {
			t.Fatalf("cannot create member %s/%s: %v", member.UserID, member.GroupID, err)
		}
	}

	eventRepo := repository.NewEventRepository()
	for _, event := range []entity.Event{Event1, Event2} {
		if err := eventRepo.Create(ctx, &event); err != nil {
			t.Fatalf("cannot create event %s: %v", event.ID, err)
		}
	}
}
