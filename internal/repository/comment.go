package repository

import (
	"context"

	"github.com/typer-app/backend/internal/entity"
	"github.com/typer-app/backend/pkg/xcontext"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	GetListByGroupID(ctx context.Context, groupID string) ([]entity.Comment, error)
	DeleteByID(ctx context.Context, id string) error
}

type commentRepository struct{}

func NewCommentRepository() *commentRepository {
	return &commentRepository{}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	return xcontext.DB(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	var record entity.Comment
	if err := xcontext.DB(ctx).Take(&record, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *commentRepository) GetListByGroupID(ctx context.Context, groupID string) ([]entity.Comment, error) {
	var records []entity.Comment
	err := xcontext.DB(ctx).
		Joins("User").
		Order("comments.created_at DESC").
		Find(&records, "group_id=?", groupID).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *commentRepository) DeleteByID(ctx context.Context, id string) error {
	return xcontext.DB(ctx).Delete(&entity.Comment{}, "id=?", id).Error
}
