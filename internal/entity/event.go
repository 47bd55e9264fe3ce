package entity

import (
	"database/sql"
	"time"
)

// Event is a scheduled match between two teams within a group. Score1 and
// Score2 stay null until an admin records the result, then both are set
// together.
type Event struct {
	Base

	GroupID string `gorm:"index"`
	Group   Group  `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`

	Team1     string
	Team2     string
	StartTime time.Time

	Score1 sql.NullInt64
	Score2 sql.NullInt64
}

// Finished reports whether the match has started, which closes betting and
// opens the event for modification.
func (e Event) Finished(now time.Time) bool {
	return !now.Before(e.StartTime)
}

func (e Event) HasResult() bool {
	return e.Score1.Valid && e.Score2.Valid
}
