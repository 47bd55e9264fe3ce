package common

import (
	"context"
	"errors"
	"time"

	"github.com/typer-app/backend/internal/entity"
	"github.com/typer-app/backend/internal/repository"
	"github.com/typer-app/backend/pkg/errorx"
	"github.com/typer-app/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// GroupRoleVerifier is the single authority answering who may do what inside
// a group. Domains call it instead of re-deriving permissions themselves.
// Rule failures come back as errorx values naming the rule that failed.
type GroupRoleVerifier struct {
	userRepo   repository.UserRepository
	groupRepo  repository.GroupRepository
	memberRepo repository.MemberRepository
	clock      Clock
}

func NewGroupRoleVerifier(
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	memberRepo repository.MemberRepository,
	clock Clock,
) *GroupRoleVerifier {
	if clock == nil {
		clock = time.Now
	}

	return &GroupRoleVerifier{
		userRepo:   userRepo,
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		clock:      clock,
	}
}

func (verifier *GroupRoleVerifier) Now() time.Time {
	return verifier.clock()
}

func (verifier *GroupRoleVerifier) load(ctx context.Context, groupID string) (*entity.User, *entity.Member, error) {
	userID := xcontext.RequestUserID(ctx)
	user, err := verifier.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	member, err := verifier.memberRepo.Get(ctx, userID, groupID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, err
		}

		member = nil
	}

	return user, member, nil
}

// VerifyModifyEvent checks that the request user may change the given event.
func (verifier *GroupRoleVerifier) VerifyModifyEvent(ctx context.Context, event *entity.Event) error {
	user, member, err := verifier.load(ctx, event.GroupID)
	if err != nil {
		return err
	}

	now := verifier.clock()
	if !event.Finished(now) {
		return errorx.New(errorx.PermissionDenied, "The event has not started yet")
	}

	if !CanModifyEvent(user, member, event, now) {
		return errorx.New(errorx.PermissionDenied, "Only group admins can modify events")
	}

	return nil
}

// VerifyCreateEvent checks that the request user may schedule events in the
// group.
func (verifier *GroupRoleVerifier) VerifyCreateEvent(ctx context.Context, groupID string) error {
	// A reference to a missing group fails the check, it is not an error.
	if _, err := verifier.groupRepo.GetByID(ctx, groupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorx.New(errorx.PermissionDenied, "Not found group")
		}

		return err
	}

	user, member, err := verifier.load(ctx, groupID)
	if err != nil {
		return err
	}

	if !CanCreateEvent(user, member) {
		return errorx.New(errorx.PermissionDenied, "Only group admins can create events")
	}

	return nil
}

// VerifyPlaceBet checks that the request user may still predict the given
// event.
func (verifier *GroupRoleVerifier) VerifyPlaceBet(ctx context.Context, event *entity.Event) error {
	_, member, err := verifier.load(ctx, event.GroupID)
	if err != nil {
		return err
	}

	if member == nil {
		return errorx.New(errorx.PermissionDenied, "Only group members can place bets")
	}

	if !CanPlaceBet(member, event, verifier.clock()) {
		return errorx.New(errorx.PermissionDenied, "The event already started")
	}

	return nil
}

// VerifyGroupAdmin checks that the request user administers the group.
func (verifier *GroupRoleVerifier) VerifyGroupAdmin(ctx context.Context, groupID string) error {
	user, member, err := verifier.load(ctx, groupID)
	if err != nil {
		return err
	}

	if !CanManageGroup(user, member) {
		return errorx.New(errorx.PermissionDenied, "Only group admins can do this")
	}

	return nil
}

// VerifySetGroupAdmin checks that the request user may change the admin flag
// of the target user in the group.
func (verifier *GroupRoleVerifier) VerifySetGroupAdmin(ctx context.Context, groupID, targetUserID string) error {
	user, member, err := verifier.load(ctx, groupID)
	if err != nil {
		return err
	}

	target, err := verifier.userRepo.GetByID(ctx, targetUserID)
	if err != nil {
		return err
	}

	if target.IsSuperAdmin() {
		return errorx.New(errorx.PermissionDenied, "Cannot change the admin flag of a super admin")
	}

	if !CanSetGroupAdmin(user, member, target) {
		return errorx.New(errorx.PermissionDenied, "Only group admins can change admin flags")
	}

	return nil
}
