package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/typer-app/backend/internal/common"
	"github.com/typer-app/backend/internal/entity"
	"github.com/typer-app/backend/internal/model"
	"github.com/typer-app/backend/internal/repository"
	"github.com/typer-app/backend/pkg/errorx"
	"github.com/typer-app/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type BetDomain interface {
	Place(ctx context.Context, req *model.PlaceBetRequest) (*model.PlaceBetResponse, error)
	GetMyBets(ctx context.Context, req *model.GetMyBetsRequest) (*model.GetMyBetsResponse, error)
	GetEventBets(ctx context.Context, req *model.GetEventBetsRequest) (*model.GetEventBetsResponse, error)
}

type betDomain struct {
	betRepo      repository.BetRepository
	eventRepo    repository.EventRepository
	roleVerifier *common.GroupRoleVerifier
}

func NewBetDomain(
	betRepo repository.BetRepository,
	eventRepo repository.EventRepository,
	roleVerifier *common.GroupRoleVerifier,
) *betDomain {
	return &betDomain{
		betRepo:      betRepo,
		eventRepo:    eventRepo,
		roleVerifier: roleVerifier,
	}
}

// Place records or replaces the prediction of the request user for one event.
// A second placement overwrites the first and clears any computed points.
func (d *betDomain) Place(ctx context.Context, req *model.PlaceBetRequest) (*model.PlaceBetResponse, error) {
	if req.Score1 == nil || req.Score2 == nil {
		return nil, errorx.New(errorx.BadRequest, "Require both scores")
	}

	if *req.Score1 < 0 || *req.Score2 < 0 {
		return nil, errorx.New(errorx.BadRequest, "Not allow negative scores")
	}

	event, err := d.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.roleVerifier.VerifyPlaceBet(ctx, event); err != nil {
		return nil, verifierError(ctx, err)
	}

	bet := &entity.Bet{
		Base:    entity.Base{ID: uuid.NewString()},
		UserID:  xcontext.RequestUserID(ctx),
		EventID: event.ID,
		Score1:  *req.Score1,
		Score2:  *req.Score2,
	}

	created, err := d.betRepo.Upsert(ctx, bet)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot upsert bet: %v", err)
		return nil, errorx.Unknown
	}

	return &model.PlaceBetResponse{
		Bet:     model.ConvertBet(bet),
		Created: created,
	}, nil
}

func (d *betDomain) GetMyBets(ctx context.Context, req *model.GetMyBetsRequest) (*model.GetMyBetsResponse, error) {
	bets, err := d.betRepo.GetListByUserID(ctx, xcontext.RequestUserID(ctx), req.GroupID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of bets: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetMyBetsResponse{Bets: []model.Bet{}}
	for i := range bets {
		resp.Bets = append(resp.Bets, model.ConvertBet(&bets[i]))
	}

	return resp, nil
}

// GetEventBets shows everyone's predictions for an event, but only after the
// match started. Before that a member could copy the others.
func (d *betDomain) GetEventBets(ctx context.Context, req *model.GetEventBetsRequest) (*model.GetEventBetsResponse, error) {
	event, err := d.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
		return nil, errorx.Unknown
	}

	if !event.Finished(d.roleVerifier.Now()) {
		return nil, errorx.New(errorx.PermissionDenied,
			"Predictions are hidden until the event starts")
	}

	bets, err := d.betRepo.GetListByEventID(ctx, event.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of bets: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetEventBetsResponse{Bets: []model.Bet{}}
	for i := range bets {
		resp.Bets = append(resp.Bets, model.ConvertBet(&bets[i]))
	}

	return resp, nil
}
