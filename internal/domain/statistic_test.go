package domain

import (
	"context"
	"sort"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/typer-app/backend/internal/domain/statistic"
	"github.com/typer-app/backend/internal/model"
	"github.com/typer-app/backend/internal/repository"
	"github.com/typer-app/backend/pkg/testutil"
)

// inMemoryLeaderboardRedis keeps sorted sets in a map so leaderboard tests
// run without a redis server.
func inMemoryLeaderboardRedis() *testutil.MockRedisClient {
	sets := map[string]map[string]float64{}

	return &testutil.MockRedisClient{
		ExistFunc: func(ctx context.Context, key string) (bool, error) {
			_, ok := sets[key]
			return ok, nil
		},
		ZAddFunc: func(ctx context.Context, key string, z redis.Z) error {
			if sets[key] == nil {
				sets[key] = map[string]float64{}
			}

			sets[key][z.Member.(string)] = z.Score
			return nil
		},
		ZIncrByFunc: func(ctx context.Context, key string, incr int64, member string) error {
			if sets[key] == nil {
				sets[key] = map[string]float64{}
			}

			sets[key][member] += float64(incr)
			return nil
		},
		ZRevRangeWithScoresFunc: func(ctx context.Context, key string, offset, limit int) ([]redis.Z, error) {
			var entries []redis.Z
			for member, score := range sets[key] {
				entries = append(entries, redis.Z{Member: member, Score: score})
			}

			sort.Slice(entries, func(i, j int) bool {
				return entries[i].Score > entries[j].Score
			})

			if offset >= len(entries) {
				return nil, nil
			}

			end := offset + limit
			if end > len(entries) {
				end = len(entries)
			}

			return entries[offset:end], nil
		},
	}
}

func Test_statisticDomain_GetLeaderboard(t *testing.T) {
	ctx := testutil.MockContextWithUserID(t, testutil.User1.ID)
	testutil.CreateFixtureDb(ctx, t)

	betRepo := repository.NewBetRepository()
	leaderboard := statistic.New(betRepo, inMemoryLeaderboardRedis())
	eventDomain := NewEventDomain(
		repository.NewEventRepository(), betRepo, newTestRoleVerifier(), leaderboard)
	statisticDomain := NewStatisticDomain(
		repository.NewGroupRepository(), repository.NewUserRepository(), leaderboard)

	placeBet(ctx, t, testutil.User1.ID, testutil.Event1.ID, 1, 0)
	placeBet(ctx, t, testutil.User2.ID, testutil.Event1.ID, 2, 0)

	_, err := eventDomain.SetResult(ctx, &model.SetEventResultRequest{
		EventID: testutil.Event1.ID,
		Score1:  2,
		Score2:  0,
	})
	require.NoError(t, err)

	resp, err := statisticDomain.GetLeaderboard(ctx, &model.GetLeaderboardRequest{
		GroupID: testutil.Group1.ID,
	})
	require.NoError(t, err)
	require.Len(t, resp.Leaderboard, 2)

	require.Equal(t, testutil.User2.ID, resp.Leaderboard[0].UserID)
	require.EqualValues(t, 3, resp.Leaderboard[0].Points)
	require.Equal(t, 1, resp.Leaderboard[0].Rank)

	require.Equal(t, testutil.User1.ID, resp.Leaderboard[1].UserID)
	require.EqualValues(t, 1, resp.Leaderboard[1].Points)
	require.Equal(t, 2, resp.Leaderboard[1].Rank)
}
