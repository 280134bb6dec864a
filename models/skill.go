package models

import "time"

// ValidProficiencyLevels is the ENUM value set for skills.proficiency_level.
// Both create and update validate against this list.
var ValidProficiencyLevels = []string{"Beginner", "Intermediate", "Advanced", "Expert"}

// Skill represents the skills table
type Skill struct {
	ID                int       `gorm:"primaryKey;column:id" json:"id"`
	SkillName         string    `gorm:"column:skill_name" json:"skill_name"`
	Category          string    `gorm:"column:category" json:"category"`
	ProficiencyLevel  string    `gorm:"column:proficiency_level" json:"proficiency_level"`
	YearsOfExperience float64   `gorm:"column:years_of_experience" json:"years_of_experience"`
	Description       *string   `gorm:"column:description" json:"description"`
	IconClass         *string   `gorm:"column:icon_class" json:"icon_class"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName overrides the table name for Skill
func (Skill) TableName() string {
	return "skills"
}

// SkillRequest is the writable field set accepted by POST and PUT.
type SkillRequest struct {
	ID                int     `json:"id"`
	SkillName         string  `json:"skill_name"`
	Category          string  `json:"category"`
	ProficiencyLevel  string  `json:"proficiency_level"`
	YearsOfExperience float64 `json:"years_of_experience"`
	Description       *string `json:"description"`
	IconClass         *string `json:"icon_class"`
}
