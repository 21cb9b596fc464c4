package domain

import (
	"time"
)

type User struct {
	Base
	Email        string     `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PasswordHash string     `gorm:"type:text;not null" json:"-"`
	FullName     string     `gorm:"type:text;not null" json:"full_name"`
	Phone        string     `gorm:"type:text" json:"phone"`
	Role         Role       `gorm:"type:text;not null;default:'owner'" json:"role"`
	Active       bool       `gorm:"not null;default:true" json:"active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

type UserFilter struct {
	Pagination
	Role   string `json:"role"`
	Email  string `json:"email"`
	Active *bool  `json:"active"`
}
