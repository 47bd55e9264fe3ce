package entity

type User struct {
	Base
	Name           string `gorm:"unique"`
	Email          string
	HashedPassword string
	Role           string `gorm:"default:USER"`
}

const (
	SuperAdminRole = "SUPER_ADMIN"
	UserRole       = "USER"
)

func (u User) IsSuperAdmin() bool {
	return u.Role == SuperAdminRole
}
