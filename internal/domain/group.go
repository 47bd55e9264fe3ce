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
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type GroupDomain interface {
	Create(ctx context.Context, req *model.CreateGroupRequest) (*model.CreateGroupResponse, error)
	Get(ctx context.Context, req *model.GetGroupRequest) (*model.GetGroupResponse, error)
	GetList(ctx context.Context, req *model.GetListGroupRequest) (*model.GetListGroupResponse, error)
	Join(ctx context.Context, req *model.JoinGroupRequest) (*model.JoinGroupResponse, error)
	Leave(ctx context.Context, req *model.LeaveGroupRequest) (*model.LeaveGroupResponse, error)
	Delete(ctx context.Context, req *model.DeleteGroupRequest) (*model.DeleteGroupResponse, error)
	SetAdmin(ctx context.Context, req *model.SetGroupAdminRequest) (*model.SetGroupAdminResponse, error)
	GetRoster(ctx context.Context, req *model.GetGroupRosterRequest) (*model.GetGroupRosterResponse, error)
}

type groupDomain struct {
	groupRepo    repository.GroupRepository
	memberRepo   repository.MemberRepository
	eventRepo    repository.EventRepository
	betRepo      repository.BetRepository
	commentRepo  repository.CommentRepository
	roleVerifier *common.GroupRoleVerifier
}

func NewGroupDomain(
	groupRepo repository.GroupRepository,
	memberRepo repository.MemberRepository,
	eventRepo repository.EventRepository,
	betRepo repository.BetRepository,
	commentRepo repository.CommentRepository,
	roleVerifier *common.GroupRoleVerifier,
) *groupDomain {
	return &groupDomain{
		groupRepo:    groupRepo,
		memberRepo:   memberRepo,
		eventRepo:    eventRepo,
		betRepo:      betRepo,
		commentRepo:  commentRepo,
		roleVerifier: roleVerifier,
	}
}

func (d *groupDomain) Create(ctx context.Context, req *model.CreateGroupRequest) (*model.CreateGroupResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty group name")
	}

	userID := xcontext.RequestUserID(ctx)
	group := &entity.Group{
		Base:        entity.Base{ID: uuid.NewString()},
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		CreatedBy:   userID,
	}

	// The creator becomes the first admin member in the same transaction as
	// the group itself.
	err := xcontext.WithDBTransaction(ctx, func(ctx context.Context) error {
		if err := d.groupRepo.Create(ctx, group); err != nil {
			return err
		}

		return d.memberRepo.Create(ctx, &entity.Member{
			UserID:  userID,
			GroupID: group.ID,
			Admin:   true,
		})
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errorx.New(errorx.AlreadyExists,
				"A group with this name already exists at this location")
		}

		xcontext.Logger(ctx).Errorf("Cannot create group: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateGroupResponse{ID: group.ID}, nil
}

func (d *groupDomain) Get(ctx context.Context, req *model.GetGroupRequest) (*model.GetGroupResponse, error) {
	group, err := d.groupRepo.GetByID(ctx, req.GroupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found group")
		}

		xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetGroupResponse{Group: model.ConvertGroup(group)}, nil
}

func (d *groupDomain) GetList(ctx context.Context, req *model.GetListGroupRequest) (*model.GetListGroupResponse, error) {
	apiCfg := xcontext.Configs(ctx).ApiServer
	if req.Limit == 0 {
		req.Limit = apiCfg.DefaultLimit
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > apiCfg.MaxLimit {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum limit of %d", apiCfg.MaxLimit)
	}

	groups, err := d.groupRepo.GetList(ctx, repository.GetListGroupFilter{
		Q:      req.Q,
		Offset: req.Offset,
		Limit:  req.Limit,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of groups: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetListGroupResponse{Groups: []model.Group{}}
	for i := range groups {
		resp.Groups = append(resp.Groups, model.ConvertGroup(&groups[i]))
	}

	return resp, nil
}

func (d *groupDomain) Join(ctx context.Context, req *model.JoinGroupRequest) (*model.JoinGroupResponse, error) {
	if _, err := d.groupRepo.GetByID(ctx, req.GroupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found group")
		}

		xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
		return nil, errorx.Unknown
	}

	userID := xcontext.RequestUserID(ctx)
	if _, err := d.memberRepo.Get(ctx, userID, req.GroupID); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "You already joined this group")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get member: %v", err)
		return nil, errorx.Unknown
	}

	err := d.memberRepo.Create(ctx, &entity.Member{
		UserID:  userID,
		GroupID: req.GroupID,
		Admin:   false,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errorx.New(errorx.AlreadyExists, "You already joined this group")
		}

		xcontext.Logger(ctx).Errorf("Cannot create member: %v", err)
		return nil, errorx.Unknown
	}

	return &model.JoinGroupResponse{}, nil
}

func (d *groupDomain) Leave(ctx context.Context, req *model.LeaveGroupRequest) (*model.LeaveGroupResponse, error) {
	userID := xcontext.RequestUserID(ctx)
	if _, err := d.memberRepo.Get(ctx, userID, req.GroupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "You are not a member of this group")
		}

		xcontext.Logger(ctx).Errorf("Cannot get member: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.memberRepo.Delete(ctx, userID, req.GroupID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete member: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LeaveGroupResponse{}, nil
}

func (d *groupDomain) Delete(ctx context.Context, req *model.DeleteGroupRequest) (*model.DeleteGroupResponse, error) {
	if _, err := d.groupRepo.GetByID(ctx, req.GroupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found group")
		}

		xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.roleVerifier.VerifyGroupAdmin(ctx, req.GroupID); err != nil {
		return nil, verifierError(ctx, err)
	}

	if err := d.groupRepo.DeleteByID(ctx, req.GroupID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete group: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DeleteGroupResponse{}, nil
}

func (d *groupDomain) SetAdmin(ctx context.Context, req *model.SetGroupAdminRequest) (*model.SetGroupAdminResponse, error) {
	if err := d.roleVerifier.VerifySetGroupAdmin(ctx, req.GroupID, req.UserID); err != nil {
		return nil, verifierError(ctx, err)
	}

	if _, err := d.memberRepo.Get(ctx, req.UserID, req.GroupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "The user is not a member of this group")
		}

		xcontext.Logger(ctx).Errorf("Cannot get member: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.memberRepo.UpdateAdmin(ctx, req.UserID, req.GroupID, req.Admin); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update member: %v", err)
		return nil, errorx.Unknown
	}

	return &model.SetGroupAdminResponse{}, nil
}

// GetRoster assembles the full group page, members with their point totals,
// the event schedule, and the latest comments.
func (d *groupDomain) GetRoster(ctx context.Context, req *model.GetGroupRosterRequest) (*model.GetGroupRosterResponse, error) {
	group, err := d.groupRepo.GetByID(ctx, req.GroupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found group")
		}

		xcontext.Logger(ctx).Errorf("Cannot get group: %v", err)
		return nil, errorx.Unknown
	}

	members, err := d.memberRepo.GetListByGroupID(ctx, req.GroupID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get members: %v", err)
		return nil, errorx.Unknown
	}

	totals, err := d.betRepo.SumPointsByGroup(ctx, req.GroupID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot sum points: %v", err)
		return nil, errorx.Unknown
	}

	pointsByUser := map[string]int64{}
	for _, t := range totals {
		pointsByUser[t.UserID] = t.Points
	}

	events, err := d.eventRepo.GetListByGroupID(ctx, req.GroupID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get events: %v", err)
		return nil, errorx.Unknown
	}

	comments, err := d.commentRepo.GetListByGroupID(ctx, req.GroupID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get comments: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetGroupRosterResponse{
		Group:    model.ConvertGroup(group),
		Members:  []model.Member{},
		Events:   []model.Event{},
		Comments: []model.Comment{},
	}

	for i := range members {
		resp.Members = append(resp.Members, model.Member{
			User:   model.ConvertUser(&members[i].User),
			Admin:  members[i].Admin,
			Points: pointsByUser[members[i].UserID],
		})
	}

	// Best members first, ties keep the join order.
	slices.SortStableFunc(resp.Members, func(a, b model.Member) bool {
		return a.Points > b.Points
	})

	for i := range events {
		resp.Events = append(resp.Events, model.ConvertEvent(&events[i]))
	}

	for i := range comments {
		resp.Comments = append(resp.Comments, model.ConvertComment(&comments[i]))
	}

	return resp, nil
}
