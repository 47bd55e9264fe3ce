package repository

import (
	"context"

	"github.com/typer-app/backend/internal/entity"
	"github.com/typer-app/backend/pkg/xcontext"
)

type MemberRepository interface {
	Create(ctx context.Context, member *entity.Member) error
	Get(ctx context.Context, userID, groupID string) (*entity.Member, error)
	GetListByGroupID(ctx context.Context, groupID string) ([]entity.Member, error)
	GetListByUserID(ctx context.Context, userID string) ([]entity.Member, error)
	UpdateAdmin(ctx context.Context, userID, groupID string, admin bool) error
	Delete(ctx context.Context, userID, groupID string) error
	Count(ctx context.Context, groupID string) (int64, error)
}

type memberRepository struct{}

func NewMemberRepository() *memberRepository {
	return &memberRepository{}
}

func (r *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	return xcontext.DB(ctx).Create(member).Error
}

func (r *memberRepository) Get(ctx context.Context, userID, groupID string) (*entity.Member, error) {
	var record entity.Member
	err := xcontext.DB(ctx).
		Take(&record, "user_id=? AND group_id=?", userID, groupID).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *memberRepository) GetListByGroupID(ctx context.Context, groupID string) ([]entity.Member, error) {
	var records []entity.Member
	err := xcontext.DB(ctx).
		Joins("User").
		Order("members.created_at ASC").
		Find(&records, "group_id=?", groupID).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *memberRepository) GetListByUserID(ctx context.Context, userID string) ([]entity.Member, error) {
	var records []entity.Member
	err := xcontext.DB(ctx).
		Joins("Group").
		Find(&records, "user_id=?", userID).Error
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (r *memberRepository) UpdateAdmin(ctx context.Context, userID, groupID string, admin bool) error {
	return xcontext.DB(ctx).
		Model(&entity.Member{}).
		Where("user_id=? AND group_id=?", userID, groupID).
		Update("admin", admin).Error
}

func (r *memberRepository) Delete(ctx context.Context, userID, groupID string) error {
	return xcontext.DB(ctx).
		Delete(&entity.Member{}, "user_id=? AND group_id=?", userID, groupID).Error
}

func (r *memberRepository) Count(ctx context.Context, groupID string) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).
		Model(&entity.Member{}).
		Where("group_id=?", groupID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
