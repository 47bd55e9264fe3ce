package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/typer-app/backend/internal/entity"
	"github.com/typer-app/backend/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserPoints struct {
	UserID string
	Points int64
}

type BetRepository interface {
	Upsert(ctx context.Context, bet *entity.Bet) (created bool, err error)
	Get(ctx context.Context, userID, eventID string) (*entity.Bet, error)
	GetListByEventID(ctx context.Context, eventID string) ([]entity.Bet, error)
	GetListByUserID(ctx context.Context, userID, groupID string) ([]entity.Bet, error)
	UpdatePoints(ctx context.Context, id string, points int64) error
	SumPointsByGroup(ctx context.Context, groupID string) ([]UserPoints, error)
}

type betRepository struct{}

func NewBetRepository() *betRepository {
	return &betRepository{}
}

// Upsert replaces the previous prediction of (user, event) if one exists,
// otherwise inserts a new one. Replacing always clears the points.
func (r *betRepository) Upsert(ctx context.Context, bet *entity.Bet) (bool, error) {
	existing, err := r.Get(ctx, bet.UserID, bet.EventID)
	if err == nil {
		err := xcontext.DB(ctx).
			Model(&entity.Bet{}).
			Where("id=?", existing.ID).
			Updates(map[string]any{
				"score1": bet.Score1,
				"score2": bet.Score2,
				"points": sql.NullInt64{},
			}).Error
		if err != nil {
			return false, err
		}

		bet.ID = existing.ID
		return false, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	// The unique index on (user_id, event_id) closes the race between two
	// concurrent first-time placements.
	err = xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "event_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"score1": bet.Score1,
				"score2": bet.Score2,
				"points": sql.NullInt64{},
			}),
		}).
		Create(bet).Error
	if err != nil {
		return false, err
	}

	return true, nil
}

func (r *betRepository) Get(ctx context.Context, userID, eventID string) (*entity.Bet, error) {
	var record entity.Bet
	err := xcontext.DB(ctx).
		Take(&record, "user_id=? AND event_id=?", userID, eventID).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *betRepository) GetListByEventID(ctx context.Context, eventID string) ([]entity.Bet, error) {
	var records []entity.Bet
	if err := xcontext.DB(ctx).Find(&records, "event_id=?", eventID).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *betRepository) GetListByUserID(ctx context.Context, userID, groupID string) ([]entity.Bet, error) {
	var records []entity.Bet
	err := xcontext.DB(ctx).
		Joins("JOIN events ON events.id=bets.event_id AND events.deleted_at IS NULL").
		Where("bets.user_id=? AND events.group_id=?", userID, groupID).
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *betRepository) UpdatePoints(ctx context.Context, id string, points int64) error {
	return xcontext.DB(ctx).
		Model(&entity.Bet{}).
		Where("id=?", id).
		Update("points", sql.NullInt64{Int64: points, Valid: true}).Error
}

func (r *betRepository) SumPointsByGroup(ctx context.Context, groupID string) ([]UserPoints, error) {
	var records []UserPoints
	err := xcontext.DB(ctx).
		Model(&entity.Bet{}).
		Select("bets.user_id AS user_id, SUM(COALESCE(bets.points, 0)) AS points").
		Joins("JOIN events ON events.id=bets.event_id AND events.deleted_at IS NULL").
		Where("events.group_id=?", groupID).
		Group("bets.user_id").
		Scan(&records).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}
