package model

import "github.com/typer-app/backend/internal/entity"

type Bet struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	EventID string `json:"event_id"`
	Score1  int    `json:"score1"`
	Score2  int    `json:"score2"`
	Points  *int64 `json:"points"`
}

func ConvertBet(bet *entity.Bet) Bet {
	if bet == nil {
		return Bet{}
	}

	converted := Bet{
		ID:      bet.ID,
		UserID:  bet.UserID,
		EventID: bet.EventID,
		Score1:  bet.Score1,
		Score2:  bet.Score2,
	}

	if bet.Points.Valid {
		converted.Points = &bet.Points.Int64
	}

	return converted
}

type PlaceBetRequest struct {
	EventID string `json:"event_id"`
	Score1  *int   `json:"score1"`
	Score2  *int   `json:"score2"`
}

type PlaceBetResponse struct {
	Bet     Bet  `json:"bet"`
	Created bool `json:"created"`
}

type GetMyBetsRequest struct {
	GroupID string `json:"group_id"`
}

type GetMyBetsResponse struct {
	Bets []Bet `json:"bets"`
}

type GetEventBetsRequest struct {
	EventID string `json:"event_id"`
}

type GetEventBetsResponse struct {
	Bets []Bet `json:"bets"`
}
