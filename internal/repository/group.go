package repository

import (
	"context"

	"github.com/typer-app/backend/internal/entity"
	"github.com/typer-app/backend/pkg/xcontext"
)

type GetListGroupFilter struct {
	Q      string
	Offset int
	Limit  int
}

type GroupRepository interface {
	Create(ctx context.Context, group *entity.Group) error
	GetByID(ctx context.Context, id string) (*entity.Group, error)
	GetList(ctx context.Context, filter GetListGroupFilter) ([]entity.Group, error)
	UpdateByID(ctx context.Context, id string, group *entity.Group) error
	DeleteByID(ctx context.Context, id string) error
}

type groupRepository struct{}

func NewGroupRepository() *groupRepository {
	return &groupRepository{}
}

func (r *groupRepository) Create(ctx context.Context, group *entity.Group) error {
	return xcontext.DB(ctx).Create(group).Error
}

func (r *groupRepository) GetByID(ctx context.Context, id string) (*entity.Group, error) {
	var record entity.Group
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *groupRepository) GetList(ctx context.Context, filter GetListGroupFilter) ([]entity.Group, error) {
	var records []entity.Group
	tx := xcontext.DB(ctx).
		Order("created_at DESC").
		Offset(filter.Offset).
		Limit(filter.Limit)

	if filter.Q != "" {
		tx = tx.Where("name LIKE ?", filter.Q+"%")
	}

	if err := tx.Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}

func (r *groupRepository) UpdateByID(ctx context.Context, id string, group *entity.Group) error {
	return xcontext.DB(ctx).
		Model(&entity.Group{}).
		Where("id=?", id).
		Updates(group).Error
}

func (r *groupRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Group{}, "id=?", id).Error
}
