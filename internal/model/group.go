package model

import "github.com/typer-app/backend/internal/entity"

type Group struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	CreatedBy   string `json:"created_by"`
}

func ConvertGroup(group *entity.Group) Group {
	if group == nil {
		return Group{}
	}

	return Group{
		ID:          group.ID,
		Name:        group.Name,
		Location:    group.Location,
		Description: group.Description,
		CreatedBy:   group.CreatedBy,
	}
}

type Member struct {
	User   User  `json:"user"`
	Admin  bool  `json:"admin"`
	Points int64 `json:"points"`
}

type CreateGroupRequest struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

type CreateGroupResponse struct {
	ID string `json:"id"`
}

type GetGroupRequest struct {
	GroupID string `json:"group_id"`
}

type GetGroupResponse struct {
	Group Group `json:"group"`
}

type GetListGroupRequest struct {
	Q      string `json:"q"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type GetListGroupResponse struct {
	Groups []Group `json:"groups"`
}

type JoinGroupRequest struct {
	GroupID string `json:"group_id"`
}

type JoinGroupResponse struct{}

type LeaveGroupRequest struct {
	GroupID string `json:"group_id"`
}

type LeaveGroupResponse struct{}

type DeleteGroupRequest struct {
	GroupID string `json:"group_id"`
}

type DeleteGroupResponse struct{}

type SetGroupAdminRequest struct {
	GroupID string `json:"group_id"`
	UserID  string `json:"user_id"`
	Admin   bool   `json:"admin"`
}

type SetGroupAdminResponse struct{}

type GetGroupRosterRequest struct {
	GroupID string `json:"group_id"`
}

type GetGroupRosterResponse struct {
	Group    Group     `json:"group"`
	Members  []Member  `json:"members"`
	Events   []Event   `json:"events"`
	Comments []Comment `json:"comments"`
}
