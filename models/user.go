package models

import "time"

// User represents the users table backing the admin login.
type User struct {
	ID           int       `gorm:"primaryKey;column:id" json:"id"`
	Email        string    `gorm:"column:email" json:"email"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	FullName     string    `gorm:"column:full_name" json:"full_name"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// LoginRequest is the body for POST /api/v1/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
