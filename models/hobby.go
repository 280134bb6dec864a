package models

import "time"

// Hobby represents the hobbies table
type Hobby struct {
	ID          int       `gorm:"primaryKey;column:id" json:"id"`
	HobbyName   string    `gorm:"column:hobby_name" json:"hobby_name"`
	Description *string   `gorm:"column:description" json:"description"`
	IconClass   *string   `gorm:"column:icon_class" json:"icon_class"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName overrides the table name for Hobby
func (Hobby) TableName() string {
	return "hobbies"
}

// HobbyRequest is the writable field set accepted by POST and PUT.
type HobbyRequest struct {
	ID          int     `json:"id"`
	HobbyName   string  `json:"hobby_name"`
	Description *string `json:"description"`
	IconClass   *string `json:"icon_class"`
}
