package model

type LeaderboardEntry struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Points int64  `json:"points"`
	Rank   int    `json:"rank"`
}

type GetLeaderboardRequest struct {
	GroupID string `json:"group_id"`
	Offset  int    `json:"offset"`
	Limit   int    `json:"limit"`
}

type GetLeaderboardResponse struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}
