package repository

import (
	"context"
	"database/sql"

	"github.com/typer-app/backend/internal/entity"
	"github.com/typer-app/backend/pkg/xcontext"
)

type EventRepository interface {
	Create(ctx context.Context, event *entity.Event) error
	GetByID(ctx context.Context, id string) (*entity.Event, error)
	GetListByGroupID(ctx context.Context, groupID string) ([]entity.Event, error)
	UpdateByID(ctx context.Context, id string, event *entity.Event) error
	UpdateResult(ctx context.Context, id string, score1, score2 int64) error
	DeleteByID(ctx context.Context, id string) error
}

type eventRepository struct{}

func NewEventRepository() *eventRepository {
	return &eventRepository{}
}

func (r *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	return xcontext.DB(ctx).Create(event).Error
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	var record entity.Event
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *eventRepository) GetListByGroupID(ctx context.Context, groupID string) ([]entity.Event, error) {
	var records []entity.Event
	err := xcontext.DB(ctx).
		Order("start_time ASC").
		Find(&records, "group_id=?", groupID).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *eventRepository) UpdateByID(ctx context.Context, id string, event *entity.Event) error {
	return xcontext.DB(ctx).
		Model(&entity.Event{}).
		Where("id=?", id).
		Updates(event).Error
}

func (r *eventRepository) UpdateResult(ctx context.Context, id string, score1, score2 int64) error {
	return xcontext.DB(ctx).
		Model(&entity.Event{}).
		Where("id=?", id).
		Updates(map[string]any{
			"score1": sql.NullInt64{Int64: score1, Valid: true},
			"score2": sql.NullInt64{Int64: score2, Valid: true},
		}).Error
}

func (r *eventRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Event{}, "id=?", id).Error
}
