package entity

import (
	"time"
)

// Member links a user to a group. A user joins a group at most once.
type Member struct {
	CreatedAt time.Time
	UpdatedAt time.Time

	UserID string `gorm:"primaryKey"`
	User   User   `gorm:"foreignKey:UserID"`

	GroupID string `gorm:"primaryKey"`
	Group   Group  `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`

	Admin bool
}
