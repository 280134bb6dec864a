package models

import "time"

// Profile represents the profile table. A portfolio normally has exactly one
// row, but the API does not enforce that; it only enforces unique emails.
type Profile struct {
	ID          int        `gorm:"primaryKey;column:id" json:"id"`
	FullName    string     `gorm:"column:full_name" json:"full_name"`
	Email       string     `gorm:"column:email" json:"email"`
	Phone       *string    `gorm:"column:phone" json:"phone"`
	Address     *string    `gorm:"column:address" json:"address"`
	Bio         *string    `gorm:"column:bio" json:"bio"`
	PhotoURL    *string    `gorm:"column:photo_url" json:"photo_url"`
	LinkedinURL *string    `gorm:"column:linkedin_url" json:"linkedin_url"`
	GithubURL   *string    `gorm:"column:github_url" json:"github_url"`
	WebsiteURL  *string    `gorm:"column:website_url" json:"website_url"`
	DateOfBirth *time.Time `gorm:"column:date_of_birth" json:"date_of_birth"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName overrides the table name for Profile
func (Profile) TableName() string {
	return "profile"
}

// ProfileRequest is the writable field set accepted by POST and PUT.
type ProfileRequest struct {
	ID          int     `json:"id"`
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Bio         *string `json:"bio"`
	PhotoURL    *string `json:"photo_url"`
	LinkedinURL *string `json:"linkedin_url"`
	GithubURL   *string `json:"github_url"`
	WebsiteURL  *string `json:"website_url"`
	DateOfBirth *string `json:"date_of_birth"` // YYYY-MM-DD
}

// Education represents the education table, read by the profile stats query.
type Education struct {
	ID          int        `gorm:"primaryKey;column:id" json:"id"`
	ProfileID   int        `gorm:"column:profile_id" json:"profile_id"`
	Degree      string     `gorm:"column:degree" json:"degree"`
	Institution string     `gorm:"column:institution" json:"institution"`
	StartDate   *time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate     *time.Time `gorm:"column:end_date" json:"end_date"`
}

// TableName overrides the table name for Education
func (Education) TableName() string {
	return "education"
}

// Certification represents the certifications table, read by the profile
// stats query.
type Certification struct {
	ID                int        `gorm:"primaryKey;column:id" json:"id"`
	ProfileID         int        `gorm:"column:profile_id" json:"profile_id"`
	CertificationName string     `gorm:"column:certification_name" json:"certification_name"`
	Issuer            *string    `gorm:"column:issuer" json:"issuer"`
	IssueDate         *time.Time `gorm:"column:issue_date" json:"issue_date"`
}

// TableName overrides the table name for Certification
func (Certification) TableName() string {
	return "certifications"
}
