package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/typer-app/backend/internal/model"
	"github.com/typer-app/backend/internal/repository"
	"github.com/typer-app/backend/pkg/errorx"
	"github.com/typer-app/backend/pkg/testutil"
	"github.com/typer-app/backend/pkg/xcontext"
)

func newTestBetDomain() *betDomain {
	return NewBetDomain(
		repository.NewBetRepository(),
		repository.NewEventRepository(),
		newTestRoleVerifier(),
	)
}

func intPtr(v int) *int {
	return &v
}

func Test_betDomain_Place(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.User2.ID)
	testutil.CreateFixtureDb(ctx, t)
	betDomain := newTestBetDomain()

	resp, err := betDomain.Place(ctx, &model.PlaceBetRequest{
		EventID: testutil.Event2.ID,
		Score1:  intPtr(2),
		Score2:  intPtr(1),
	})
	require.NoError(t, err)
	require.True(t, resp.Created)
	require.Equal(t, 2, resp.Bet.Score1)
	require.Equal(t, 1, resp.Bet.Score2)
	require.Nil(t, resp.Bet.Points)
}

func Test_betDomain_Place_ReplacesPreviousBet(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.User2.ID)
	testutil.CreateFixtureDb(ctx, t)
	betDomain := newTestBetDomain()
	betRepo := repository.NewBetRepository()

	first, err := betDomain.Place(ctx, &model.PlaceBetRequest{
		EventID: testutil.Event2.ID,
		Score1:  intPtr(1),
		Score2:  intPtr(0),
	})
	require.NoError(t, err)
	require.True(t, first.Created)

	second, err := betDomain.Place(ctx, &model.PlaceBetRequest{
		EventID: testutil.Event2.ID,
		Score1:  intPtr(0),
		Score2:  intPtr(3),
	})
	require.NoError(t, err)
	require.False(t, second.Created)

	stored, err := betRepo.Get(ctx, testutil.User2.ID, testutil.Event2.ID)
	require.NoError(t, err)
	require.Equal(t, 0, stored.Score1)
	require.Equal(t, 3, stored.Score2)
	require.False(t, stored.Points.Valid)

	bets, err := betRepo.GetListByEventID(ctx, testutil.Event2.ID)
	require.NoError(t, err)
	require.Len(t, bets, 1)
}

func Test_betDomain_Place_AfterStart(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.User2.ID)
	testutil.CreateFixtureDb(ctx, t)
	betDomain := newTestBetDomain()

	_, err := betDomain.Place(ctx, &model.PlaceBetRequest{
		EventID: testutil.Event1.ID,
		Score1:  intPtr(1),
		Score2:  intPtr(1),
	})
	requireErrorCode(t, err, errorx.PermissionDenied)
}

func Test_betDomain_Place_NotAMember(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.User3.ID)
	testutil.CreateFixtureDb(ctx, t)
	betDomain := newTestBetDomain()

	_, err := betDomain.Place(ctx, &model.PlaceBetRequest{
		EventID: testutil.Event2.ID,
		Score1:  intPtr(1),
		Score2:  intPtr(1),
	})
	requireErrorCode(t, err, errorx.PermissionDenied)
}

func Test_betDomain_Place_SuperAdminIsNotAMember(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.SuperAdmin.ID)
	testutil.CreateFixtureDb(ctx, t)
	betDomain := newTestBetDomain()

	_, err := betDomain.Place(ctx, &model.PlaceBetRequest{
		EventID: testutil.Event2.ID,
		Score1:  intPtr(1),
		Score2:  intPtr(1),
	})
	requireErrorCode(t, err, errorx.PermissionDenied)
}

func Test_betDomain_Place_InvalidRequests(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.User2.ID)
	testutil.CreateFixtureDb(ctx, t)
	betDomain := newTestBetDomain()

	_, err := betDomain.Place(ctx, &model.PlaceBetRequest{
		EventID: testutil.Event2.ID,
		Score1:  intPtr(1),
	})
	requireErrorCode(t, err, errorx.BadRequest)

	_, err = betDomain.Place(ctx, &model.PlaceBetRequest{
		EventID: testutil.Event2.ID,
		Score1:  intPtr(-1),
		Score2:  intPtr(0),
	})
	requireErrorCode(t, err, errorx.BadRequest)

	_, err = betDomain.Place(ctx, &model.PlaceBetRequest{
		EventID: "not-an-event",
		Score1:  intPtr(1),
		Score2:  intPtr(1),
	})
	requireErrorCode(t, err, errorx.NotFound)
}

func Test_betDomain_GetMyBets(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.User2.ID)
	testutil.CreateFixtureDb(ctx, t)
	betDomain := newTestBetDomain()

	_, err := betDomain.Place(ctx, &model.PlaceBetRequest{
		EventID: testutil.Event2.ID,
		Score1:  intPtr(2),
		Score2:  intPtr(2),
	})
	require.NoError(t, err)

	resp, err := betDomain.GetMyBets(ctx, &model.GetMyBetsRequest{
		GroupID: testutil.Group1.ID,
	})
	require.NoError(t, err)
	require.Len(t, resp.Bets, 1)
	require.Equal(t, testutil.Event2.ID, resp.Bets[0].EventID)

	otherCtx := xcontext.WithRequestUserID(ctx, testutil.User1.ID)
	other, err := betDomain.GetMyBets(otherCtx, &model.GetMyBetsRequest{
		GroupID: testutil.Group1.ID,
	})
	require.NoError(t, err)
	require.Empty(t, other.Bets)
}

func Test_betDomain_GetEventBets_HiddenBeforeStart(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.User2.ID)
	testutil.CreateFixtureDb(ctx, t)
	betDomain := newTestBetDomain()

	_, err := betDomain.GetEventBets(ctx, &model.GetEventBetsRequest{
		EventID: testutil.Event2.ID,
	})
	requireErrorCode(t, err, errorx.PermissionDenied)

	resp, err := betDomain.GetEventBets(ctx, &model.GetEventBetsRequest{
		EventID: testutil.Event1.ID,
	})
	require.NoError(t, err)
	require.Empty(t, resp.Bets)
}
