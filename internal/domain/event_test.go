package domain

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/typer-app/backend/internal/domain/statistic"
	"github.com/typer-app/backend/internal/entity"
	"github.com/typer-app/backend/internal/model"
	"github.com/typer-app/backend/internal/repository"
	"github.com/typer-app/backend/pkg/errorx"
	"github.com/typer-app/backend/pkg/testutil"
	"github.com/typer-app/backend/pkg/xcontext"
)

func newTestEventDomain() *eventDomain {
	betRepo := repository.NewBetRepository()
	return NewEventDomain(
		repository.NewEventRepository(),
		betRepo,
		newTestRoleVerifier(),
		statistic.New(betRepo, &testutil.MockRedisClient{}),
	)
}

func placeBet(ctx context.Context, t *testing.T, userID, eventID string, score1, score2 int) {
	t.Helper()
	_, err := repository.NewBetRepository().Upsert(ctx, &entity.Bet{
		Base:    entity.Base{ID: uuid.NewString()},
		UserID:  userID,
		EventID: eventID,
		Score1:  score1,
		Score2:  score2,
	})
	require.NoError(t, err)
}

func Test_eventDomain_Create(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.User1.ID)
	testutil.CreateFixtureDb(ctx, t)
	eventDomain := newTestEventDomain()

	resp, err := eventDomain.Create(ctx, &model.CreateEventRequest{
		GroupID:   testutil.Group1.ID,
		Team1:     "Italy",
		Team2:     "England",
		StartTime: time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)
}

func Test_eventDomain_Create_Denied(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.User2.ID)
	testutil.CreateFixtureDb(ctx, t)
	eventDomain := newTestEventDomain()

	// User2 is a plain member, not an admin.
	_, err := eventDomain.Create(ctx, &model.CreateEventRequest{
		GroupID:   testutil.Group1.ID,
		Team1:     "Italy",
		Team2:     "England",
		StartTime: time.Now().Add(48 * time.Hour),
	})
	requireErrorCode(t, err, errorx.PermissionDenied)
}

func Test_eventDomain_Create_MissingGroup(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.SuperAdmin.ID)
	testutil.CreateFixtureDb(ctx, t)
	eventDomain := newTestEventDomain()

	// A missing group fails eligibility even for a super admin.
	_, err := eventDomain.Create(ctx, &model.CreateEventRequest{
		GroupID:   "not-a-group",
		Team1:     "Italy",
		Team2:     "England",
		StartTime: time.Now().Add(48 * time.Hour),
	})
	requireErrorCode(t, err, errorx.PermissionDenied)
}

func Test_eventDomain_Create_SuperAdmin(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.SuperAdmin.ID)
	testutil.CreateFixtureDb(ctx, t)
	eventDomain := newTestEventDomain()

	_, err := eventDomain.Create(ctx, &model.CreateEventRequest{
		GroupID:   testutil.Group1.ID,
		Team1:     "Italy",
		Team2:     "England",
		StartTime: time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)
}

func Test_eventDomain_Update_BeforeStart(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.User1.ID)
	testutil.CreateFixtureDb(ctx, t)
	eventDomain := newTestEventDomain()

	// Even the group admin cannot touch an event that has not started.
	_, err := eventDomain.Update(ctx, &model.UpdateEventRequest{
		EventID:   testutil.Event2.ID,
		Team1:     "France",
		Team2:     "Spain",
		StartTime: time.Now().Add(72 * time.Hour),
	})
	requireErrorCode(t, err, errorx.PermissionDenied)
}

func Test_eventDomain_SetResult(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.User1.ID)
	testutil.CreateFixtureDb(ctx, t)
	eventDomain := newTestEventDomain()
	betRepo := repository.NewBetRepository()

	placeBet(ctx, t, testutil.User1.ID, testutil.Event1.ID, 2, 1)
	placeBet(ctx, t, testutil.User2.ID, testutil.Event1.ID, 1, 0)
	placeBet(ctx, t, testutil.User3.ID, testutil.Event1.ID, 0, 2)

	_, err := eventDomain.SetResult(ctx, &model.SetEventResultRequest{
		EventID: testutil.Event1.ID,
		Score1:  2,
		Score2:  1,
	})
	require.NoError(t, err)

	event, err := repository.NewEventRepository().GetByID(ctx, testutil.Event1.ID)
	require.NoError(t, err)
	require.True(t, event.HasResult())
	require.EqualValues(t, 2, event.Score1.Int64)
	require.EqualValues(t, 1, event.Score2.Int64)

	// Exact result, correct winner, wrong winner.
	expected := map[string]int64{
		testutil.User1.ID: 3,
		testutil.User2.ID: 1,
		testutil.User3.ID: 0,
	}

	for userID, points := range expected {
		bet, err := betRepo.Get(ctx, userID, testutil.Event1.ID)
		require.NoError(t, err)
		require.True(t, bet.Points.Valid)
		require.Equal(t, points, bet.Points.Int64)
	}
}

func Test_eventDomain_SetResult_Rescore(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.User1.ID)
	testutil.CreateFixtureDb(ctx, t)
	eventDomain := newTestEventDomain()
	betRepo := repository.NewBetRepository()

	placeBet(ctx, t, testutil.User2.ID, testutil.Event1.ID, 1, 0)

	_, err := eventDomain.SetResult(ctx, &model.SetEventResultRequest{
		EventID: testutil.Event1.ID,
		Score1:  1,
		Score2:  0,
	})
	require.NoError(t, err)

	bet, err := betRepo.Get(ctx, testutil.User2.ID, testutil.Event1.ID)
	require.NoError(t, err)
	require.EqualValues(t, 3, bet.Points.Int64)

	// Correcting the result rescores every bet.
	_, err = eventDomain.SetResult(ctx, &model.SetEventResultRequest{
		EventID: testutil.Event1.ID,
		Score1:  0,
		Score2:  1,
	})
	require.NoError(t, err)

	bet, err = betRepo.Get(ctx, testutil.User2.ID, testutil.Event1.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, bet.Points.Int64)
}

func Test_eventDomain_Delete(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.User1.ID)
	testutil.CreateFixtureDb(ctx, t)
	eventDomain := newTestEventDomain()

	// Same gate as updates: not before the event starts.
	_, err := eventDomain.Delete(ctx, &model.DeleteEventRequest{EventID: testutil.Event2.ID})
	requireErrorCode(t, err, errorx.PermissionDenied)

	_, err = eventDomain.Delete(ctx, &model.DeleteEventRequest{EventID: testutil.Event1.ID})
	require.NoError(t, err)

	_, err = eventDomain.Get(ctx, &model.GetEventRequest{EventID: testutil.Event1.ID})
	requireErrorCode(t, err, errorx.NotFound)
}

func Test_eventDomain_SetResult_Denied(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.User2.ID)
	testutil.CreateFixtureDb(ctx, t)
	eventDomain := newTestEventDomain()

	_, err := eventDomain.SetResult(ctx, &model.SetEventResultRequest{
		EventID: testutil.Event1.ID,
		Score1:  1,
		Score2:  1,
	})
	requireErrorCode(t, err, errorx.PermissionDenied)

	adminCtx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	_, err = eventDomain.SetResult(adminCtx, &model.SetEventResultRequest{
		EventID: testutil.Event2.ID,
		Score1:  1,
		Score2:  1,
	})
	requireErrorCode(t, err, errorx.PermissionDenied)

	_, err = eventDomain.SetResult(adminCtx, &model.SetEventResultRequest{
		EventID: testutil.Event1.ID,
		Score1:  -1,
		Score2:  0,
	})
	requireErrorCode(t, err, errorx.BadRequest)
}
