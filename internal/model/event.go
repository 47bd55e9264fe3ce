package model

import (
	"time"

	"github.com/typer-app/backend/internal/entity"
)

type Event struct {
	ID        string    `json:"id"`
	GroupID   string    `json:"group_id"`
	Team1     string    `json:"team1"`
	Team2     string    `json:"team2"`
	StartTime time.Time `json:"start_time"`
	Score1    *int64    `json:"score1"`
	Score2    *int64    `json:"score2"`
}

func ConvertEvent(event *entity.Event) Event {
	if event == nil {
		return Event{}
	}

	converted := Event{
		ID:        event.ID,
		GroupID:   event.GroupID,
		Team1:     event.Team1,
		Team2:     event.Team2,
		StartTime: event.StartTime,
	}

	if event.Score1.Valid {
		converted.Score1 = &event.Score1.Int64
	}

	if event.Score2.Valid {
		converted.Score2 = &event.Score2.Int64
	}

	return converted
}

type CreateEventRequest struct {
	GroupID   string    `json:"group_id"`
	Team1     string    `json:"team1"`
	Team2     string    `json:"team2"`
	StartTime time.Time `json:"start_time"`
}

type CreateEventResponse struct {
	ID string `json:"id"`
}

type GetEventRequest struct {
	EventID string `json:"event_id"`
}

type GetEventResponse struct {
	Event Event `json:"event"`
}

type GetListEventRequest struct {
	GroupID string `json:"group_id"`
}

type GetListEventResponse struct {
	Events []Event `json:"events"`
}

type UpdateEventRequest struct {
	EventID   string    `json:"event_id"`
	Team1     string    `json:"team1"`
	Team2     string    `json:"team2"`
	StartTime time.Time `json:"start_time"`
}

type UpdateEventResponse struct{}

type DeleteEventRequest struct {
	EventID string `json:"event_id"`
}

type DeleteEventResponse struct{}

type SetEventResultRequest struct {
	EventID string `json:"event_id"`
	Score1  int64  `json:"score1"`
	Score2  int64  `json:"score2"`
}

type SetEventResultResponse struct{}
