package domain

import (
	"context"
	"errors"

	"github.com/typer-app/backend/internal/domain/statistic"
	"github.com/typer-app/backend/internal/model"
	"github.com/typer-app/backend/internal/repository"
	"github.com/typer-app/backend/pkg/errorx"
	"github.com/typer-app/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type StatisticDomain interface {
	GetLeaderboard(ctx context.Context, req *model.GetLeaderboardRequest) (*model.GetLeaderboardResponse, error)
}

type statisticDomain struct {
	groupRepo   repository.GroupRepository
	userRepo    repository.UserRepository
	leaderboard statistic.Leaderboard
}

func NewStatisticDomain(
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	leaderboard statistic.Leaderboard,
) *statisticDomain {
	return &statisticDomain{
		groupRepo:   groupRepo,
		userRepo:    userRepo,
		leaderboard: leaderboard,
	}
}

func (d *statisticDomain) GetLeaderboard(ctx context.Context, req *model.GetLeaderboardRequest) (*model.GetLeaderboardResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 || req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Invalid limit")
	}

	if _, err := d.groupRepo.GetByID(ctx, req.GroupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found group")
		}

		xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
		return nil, errorx.Unknown
	}

	entries, err := d.leaderboard.GetLeaderBoard(ctx, req.GroupID, req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get leaderboard: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetLeaderboardResponse{Leaderboard: []model.LeaderboardEntry{}}
	for i, entry := range entries {
		userID, ok := entry.Member.(string)
		if !ok {
			continue
		}

		name := ""
		if user, err := d.userRepo.GetByID(ctx, userID); err == nil {
			name = user.Name
		}

		resp.Leaderboard = append(resp.Leaderboard, model.LeaderboardEntry{
			UserID: userID,
			Name:   name,
			Points: int64(entry.Score),
			Rank:   req.Offset + i + 1,
		})
	}

	return resp, nil
}
