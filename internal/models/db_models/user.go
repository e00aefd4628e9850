package db_models

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

type User struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique;not null"`
	Image        string
	PasswordHash string
	Role         string `gorm:"not null;default:USER"`
}
