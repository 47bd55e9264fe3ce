package model

import (
	"time"

	"github.com/typer-app/backend/internal/entity"
)

type Comment struct {
	ID          string    `json:"id"`
	GroupID     string    `json:"group_id"`
	User        User      `json:"user"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func ConvertComment(comment *entity.Comment) Comment {
	if comment == nil {
		return Comment{}
	}

	return Comment{
		ID:          comment.ID,
		GroupID:     comment.GroupID,
		User:        ConvertUser(&comment.User),
		Description: comment.Description,
		CreatedAt:   comment.CreatedAt,
	}
}

type CreateCommentRequest struct {
	GroupID     string `json:"group_id"`
	Description string `json:"description"`
}

type CreateCommentResponse struct {
	ID string `json:"id"`
}

type GetListCommentRequest struct {
	GroupID string `json:"group_id"`
}

type GetListCommentResponse struct {
	Comments []Comment `json:"comments"`
}

type DeleteCommentRequest struct {
	CommentID string `json:"comment_id"`
}

type DeleteCommentResponse struct{}
