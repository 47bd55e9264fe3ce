package entity

type Group struct {
	Base
	Name        string `gorm:"index:idx_groups_name_location,unique"`
	Location    string `gorm:"index:idx_groups_name_location,unique"`
	Description string
	CreatedBy   string
}
