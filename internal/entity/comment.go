package entity

type Comment struct {
	Base

	GroupID string `gorm:"index"`
	Group   Group  `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`

	UserID string
	User   User `gorm:"foreignKey:UserID"`

	Description string
}
