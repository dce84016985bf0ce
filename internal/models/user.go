package models

type UserRole string

const (
	UserRoleResident UserRole = "resident"
	UserRoleAdmin    UserRole = "admin"
)

type User struct {
	BaseModel
	FullName     string   `gorm:"size:255;not null" json:"full_name"`
	Email        string   `gorm:"size:255;uniqueIndex;not null" json:"email"`
	MobileNumber string   `gorm:"size:20" json:"mobile_number"`
	Address      string   `json:"address"`
	PasswordHash string   `gorm:"size:255;not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'resident'" json:"role"`
}

func (User) TableName() string { return "users" }

// IsAdmin проверяет является ли пользователь администратором
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
