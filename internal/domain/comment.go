package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/typer-app/backend/internal/entity"
	"github.com/typer-app/backend/internal/model"
	"github.com/typer-app/backend/internal/repository"
	"github.com/typer-app/backend/pkg/errorx"
	"github.com/typer-app/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type CommentDomain interface {
	Create(ctx context.Context, req *model.CreateCommentRequest) (*model.CreateCommentResponse, error)
	GetList(ctx context.Context, req *model.GetListCommentRequest) (*model.GetListCommentResponse, error)
	Delete(ctx context.Context, req *model.DeleteCommentRequest) (*model.DeleteCommentResponse, error)
}

type commentDomain struct {
	commentRepo repository.CommentRepository
	memberRepo  repository.MemberRepository
	userRepo    repository.UserRepository
}

func NewCommentDomain(
	commentRepo repository.CommentRepository,
	memberRepo repository.MemberRepository,
	userRepo repository.UserRepository,
) *commentDomain {
	return &commentDomain{
		commentRepo: commentRepo,
		memberRepo:  memberRepo,
		userRepo:    userRepo,
	}
}

func (d *commentDomain) Create(ctx context.Context, req *model.CreateCommentRequest) (*model.CreateCommentResponse, error) {
	if req.Description == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty comment")
	}

	userID := xcontext.RequestUserID(ctx)
	if _, err := d.memberRepo.Get(ctx, userID, req.GroupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.PermissionDenied, "Only members can comment")
		}

		xcontext.Logger(ctx).Errorf("Cannot get member: %v", err)
		return nil, errorx.Unknown
	}

	comment := &entity.Comment{
		Base:        entity.Base{ID: uuid.NewString()},
		GroupID:     req.GroupID,
		UserID:      userID,
		Description: req.Description,
	}

	if err := d.commentRepo.Create(ctx, comment); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create comment: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateCommentResponse{ID: comment.ID}, nil
}

func (d *commentDomain) GetList(ctx context.Context, req *model.GetListCommentRequest) (*model.GetListCommentResponse, error) {
	comments, err := d.commentRepo.GetListByGroupID(ctx, req.GroupID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of comments: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetListCommentResponse{Comments: []model.Comment{}}
	for i := range comments {
		resp.Comments = append(resp.Comments, model.ConvertComment(&comments[i]))
	}

	return resp, nil
}

func (d *commentDomain) Delete(ctx context.Context, req *model.DeleteCommentRequest) (*model.DeleteCommentResponse, error) {
	comment, err := d.commentRepo.GetByID(ctx, req.CommentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found comment")
		}

		xcontext.Logger(ctx).Errorf("Cannot get comment: %v", err)
		return nil, errorx.Unknown
	}

	userID := xcontext.RequestUserID(ctx)
	if comment.UserID != userID {
		user, err := d.userRepo.GetByID(ctx, userID)
		if err != nil || !user.IsSuperAdmin() {
			return nil, errorx.New(errorx.PermissionDenied, "Only the author can delete a comment")
		}
	}

	if err := d.commentRepo.DeleteByID(ctx, req.CommentID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete comment: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteCommentResponse{}, nil
}
