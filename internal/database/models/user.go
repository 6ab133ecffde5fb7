package models

// User is an application login. Users are created on first login and never deleted in-band.
type User struct {
	BaseModel
	Email string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Name  string `json:"name" gorm:"not null;size:200"`
	Role  string `json:"role" gorm:"type:varchar(50);not null;default:'Administrator'"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
