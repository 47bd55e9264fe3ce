// Package statistic maintains the per-group points leaderboard in redis.
package statistic

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/typer-app/backend/internal/repository"
	"github.com/typer-app/backend/pkg/xcontext"
	"github.com/typer-app/backend/pkg/xredis"
)

type Leaderboard interface {
	GetLeaderBoard(ctx context.Context, groupID string, offset, limit int) ([]redis.Z, error)
	ChangePointLeaderboard(ctx context.Context, groupID, userID string, delta int64) error
	Invalidate(ctx context.Context, groupID string) error
}

type leaderboard struct {
	betRepo     repository.BetRepository
	redisClient xredis.Client
}

func New(betRepo repository.BetRepository, redisClient xredis.Client) *leaderboard {
	return &leaderboard{betRepo: betRepo, redisClient: redisClient}
}

func key(groupID string) string {
	return fmt.Sprintf("leaderboard:points:%s", groupID)
}

// GetLeaderBoard returns members of the group ordered by points, highest
// first. The sorted set is built lazily from the database on the first read
// after an invalidation.
func (l *leaderboard) GetLeaderBoard(
	ctx context.Context, groupID string, offset, limit int,
) ([]redis.Z, error) {
	if err := l.loadIfAbsent(ctx, groupID); err != nil {
		return nil, err
	}

	return l.redisClient.ZRevRangeWithScores(ctx, key(groupID), offset, limit)
}

// ChangePointLeaderboard shifts a member's score by delta. A leaderboard not
// in redis yet needs no update, the next read rebuilds it from the database.
func (l *leaderboard) ChangePointLeaderboard(
	ctx context.Context, groupID, userID string, delta int64,
) error {
	exist, err := l.redisClient.Exist(ctx, key(groupID))
	if err != nil {
		return err
	}

	if !exist {
		return nil
	}

	return l.redisClient.ZIncrBy(ctx, key(groupID), delta, userID)
}

func (l *leaderboard) Invalidate(ctx context.Context, groupID string) error {
	return l.redisClient.Del(ctx, key(groupID))
}

func (l *leaderboard) loadIfAbsent(ctx context.Context, groupID string) error {
	exist, err := l.redisClient.Exist(ctx, key(groupID))
	if err != nil {
		return err
	}

	if exist {
		return nil
	}

	totals, err := l.betRepo.SumPointsByGroup(ctx, groupID)
	if err != nil {
		return err
	}

	for _, t := range totals {
		err := l.redisClient.ZAdd(ctx, key(groupID), redis.Z{
			Member: t.UserID,
			Score:  float64(t.Points),
		})
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot add %s to leaderboard: %v", t.UserID, err)
			return err
		}
	}

	return nil
}
