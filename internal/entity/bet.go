package entity

import (
	"database/sql"
)

// Bet is a user's score prediction for one event. Points stay null until the
// scoring engine computes them.
type Bet struct {
	Base

	UserID string `gorm:"uniqueIndex:idx_bets_user_event"`
	User   User   `gorm:"foreignKey:UserID"`

	EventID string `gorm:"uniqueIndex:idx_bets_user_event"`
	Event   Event  `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`

	Score1 int
	Score2 int

	Points sql.NullInt64
}
