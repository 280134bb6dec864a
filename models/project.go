package models

import "time"

// ValidProjectStatuses is the ENUM value set for projects.status.
var ValidProjectStatuses = []string{"Planning", "In Progress", "Completed", "Archived"}

// Project represents the projects table
type Project struct {
	ID               int        `gorm:"primaryKey;column:id" json:"id"`
	ProjectTitle     string     `gorm:"column:project_title" json:"project_title"`
	Description      string     `gorm:"column:description" json:"description"`
	TechnologiesUsed *string    `gorm:"column:technologies_used" json:"technologies_used"`
	ProjectURL       *string    `gorm:"column:project_url" json:"project_url"`
	GithubURL        *string    `gorm:"column:github_url" json:"github_url"`
	ImageURL         *string    `gorm:"column:image_url" json:"image_url"`
	StartDate        *time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate          *time.Time `gorm:"column:end_date" json:"end_date"`
	Status           string     `gorm:"column:status" json:"status"`
	Featured         bool       `gorm:"column:featured" json:"featured"`
	CreatedAt        time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName overrides the table name for Project
func (Project) TableName() string {
	return "projects"
}

// ProjectRequest is the writable field set accepted by POST and PUT.
type ProjectRequest struct {
	ID               int     `json:"id"`
	ProjectTitle     string  `json:"project_title"`
	Description      string  `json:"description"`
	TechnologiesUsed *string `json:"technologies_used"`
	ProjectURL       *string `json:"project_url"`
	GithubURL        *string `json:"github_url"`
	ImageURL         *string `json:"image_url"`
	StartDate        *string `json:"start_date"` // YYYY-MM-DD
	EndDate          *string `json:"end_date"`   // YYYY-MM-DD
	Status           string  `json:"status"`
	Featured         bool    `json:"featured"`
}
