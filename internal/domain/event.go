package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/typer-app/backend/internal/common"
	"github.com/typer-app/backend/internal/domain/scoring"
	"github.com/typer-app/backend/internal/domain/statistic"
	"github.com/typer-app/backend/internal/entity"
	"github.com/typer-app/backend/internal/model"
	"github.com/typer-app/backend/internal/repository"
	"github.com/typer-app/backend/pkg/errorx"
	"github.com/typer-app/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type EventDomain interface {
	Create(ctx context.Context, req *model.CreateEventRequest) (*model.CreateEventResponse, error)
	Get(ctx context.Context, req *model.GetEventRequest) (*model.GetEventResponse, error)
	GetList(ctx context.Context, req *model.GetListEventRequest) (*model.GetListEventResponse, error)
	Update(ctx context.Context, req *model.UpdateEventRequest) (*model.UpdateEventResponse, error)
	Delete(ctx context.Context, req *model.DeleteEventRequest) (*model.DeleteEventResponse, error)
	SetResult(ctx context.Context, req *model.SetEventResultRequest) (*model.SetEventResultResponse, error)
}

type eventDomain struct {
	eventRepo    repository.EventRepository
	betRepo      repository.BetRepository
	roleVerifier *common.GroupRoleVerifier
	leaderboard  statistic.Leaderboard
}

func NewEventDomain(
	eventRepo repository.EventRepository,
	betRepo repository.BetRepository,
	roleVerifier *common.GroupRoleVerifier,
	leaderboard statistic.Leaderboard,
) *eventDomain {
	return &eventDomain{
		eventRepo:    eventRepo,
		betRepo:      betRepo,
		roleVerifier: roleVerifier,
		leaderboard:  leaderboard,
	}
}

func (d *eventDomain) Create(ctx context.Context, req *model.CreateEventRequest) (*model.CreateEventResponse, error) {
	if req.Team1 == "" || req.Team2 == "" {
		return nil, errorx.New(errorx.BadRequest, "Require both team names")
	}

	if req.StartTime.IsZero() {
		return nil, errorx.New(errorx.BadRequest, "Require a start time")
	}

	if err := d.roleVerifier.VerifyCreateEvent(ctx, req.GroupID); err != nil {
		return nil, verifierError(ctx, err)
	}

	event := &entity.Event{
		Base:      entity.Base{ID: uuid.NewString()},
		GroupID:   req.GroupID,
		Team1:     req.Team1,
		Team2:     req.Team2,
		StartTime: req.StartTime,
	}

	if err := d.eventRepo.Create(ctx, event); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create event: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateEventResponse{ID: event.ID}, nil
}

func (d *eventDomain) Get(ctx context.Context, req *model.GetEventRequest) (*model.GetEventResponse, error) {
	event, err := d.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetEventResponse{Event: model.ConvertEvent(event)}, nil
}

func (d *eventDomain) GetList(ctx context.Context, req *model.GetListEventRequest) (*model.GetListEventResponse, error) {
	events, err := d.eventRepo.GetListByGroupID(ctx, req.GroupID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of events: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetListEventResponse{Events: []model.Event{}}
	for i := range events {
		resp.Events = append(resp.Events, model.ConvertEvent(&events[i]))
	}

	return resp, nil
}

func (d *eventDomain) Update(ctx context.Context, req *model.UpdateEventRequest) (*model.UpdateEventResponse, error) {
	event, err := d.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.roleVerifier.VerifyModifyEvent(ctx, event); err != nil {
		return nil, verifierError(ctx, err)
	}

	update := &entity.Event{
		Team1:     req.Team1,
		Team2:     req.Team2,
		StartTime: req.StartTime,
	}

	if err := d.eventRepo.UpdateByID(ctx, event.ID, update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update event: %v", err)
		return nil, errorx.Unknown
	}

	return &model.UpdateEventResponse{}, nil
}

func (d *eventDomain) Delete(ctx context.Context, req *model.DeleteEventRequest) (*model.DeleteEventResponse, error) {
	event, err := d.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found event")
		}

		xcontext.Logger(ctx).Errorf("Cannot get event: %v", err)
		return nil, errorx.Unknown
	}

	// Deleting follows the same gate as any other modification.
	if err := d.roleVerifier.VerifyModifyEvent(ctx, event); err != nil {
		return nil, verifierError(ctx, err)
	}

	if err := d.eventRepo.DeleteByID(ctx, event.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete event: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.leaderboard.Invalidate(ctx, event.GroupID); err != nil {
		xcontext.Logger(ctx).Warnf("Cannot invalidate leaderboard of %s: %v", event.GroupID, err)
	}

	return &model.DeleteEventResponse{}, nil
}

// SetResult records the final score of an event and scores every bet placed
// on it. The score write and the bet updates happen in one transaction, a
// reader never sees a result without the points that follow from it.
func (d *eventDomain) SetResult(ctx context.Context, req *model.SetEventResultRequest) (*model.SetEventResultResponse, error) {
	if req.Score1 < 0 || req.Score2 < 0 {
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

	if err := d.roleVerifier.VerifyModifyEvent(ctx, event); err != nil {
		return nil, verifierError(ctx, err)
	}

	err = xcontext.WithDBTransaction(ctx, func(ctx context.Context) error {
		if err := d.eventRepo.UpdateResult(ctx, event.ID, req.Score1, req.Score2); err != nil {
			return err
		}

		event.Score1.Int64, event.Score1.Valid = req.Score1, true
		event.Score2.Int64, event.Score2.Valid = req.Score2, true
		return d.finalizeEvent(ctx, event)
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot set event result: %v", err)
		return nil, errorx.Unknown
	}

	return &model.SetEventResultResponse{}, nil
}

// finalizeEvent computes the points of every bet on the event. It refuses an
// event without a complete result.
func (d *eventDomain) finalizeEvent(ctx context.Context, event *entity.Event) error {
	if !event.HasResult() {
		return errorx.New(errorx.Unavailable, "The event has no result yet")
	}

	bets, err := d.betRepo.GetListByEventID(ctx, event.ID)
	if err != nil {
		return err
	}

	for i := range bets {
		bet := &bets[i]
		points := scoring.Points(
			event.Score1.Int64, event.Score2.Int64,
			int64(bet.Score1), int64(bet.Score2),
		)

		if err := d.betRepo.UpdatePoints(ctx, bet.ID, points); err != nil {
			return err
		}

		var previous int64
		if bet.Points.Valid {
			previous = bet.Points.Int64
		}

		err := d.leaderboard.ChangePointLeaderboard(ctx, event.GroupID, bet.UserID, points-previous)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot update leaderboard of %s: %v", event.GroupID, err)
		}
	}

	return nil
}
