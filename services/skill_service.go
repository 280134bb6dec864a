package services

import (
	"portfolio-api/models"

	"gorm.io/gorm"
)

// SkillService holds the read-only aggregate queries layered on the skills
// table.
type SkillService struct {
	db *gorm.DB
}

func NewSkillService(db *gorm.DB) *SkillService {
	return &SkillService{db: db}
}

// SkillCategoryRow is one category with its aggregate figures and the
// skill names ordered by proficiency.
type SkillCategoryRow struct {
	Category      string   `gorm:"column:category" json:"category"`
	SkillCount    int      `gorm:"column:skill_count" json:"skill_count"`
	AvgExperience *float64 `gorm:"column:avg_experience" json:"avg_experience"`
	MaxExperience *float64 `gorm:"column:max_experience" json:"max_experience"`
	MinExperience *float64 `gorm:"column:min_experience" json:"min_experience"`
	SkillsList    string   `gorm:"column:skills_list" json:"skills_list"`
}

// ByCategory groups skills per category with count, experience aggregates
// and a concatenated name list.
func (s *SkillService) ByCategory() ([]SkillCategoryRow, error) {
	var rows []SkillCategoryRow
	err := s.db.Raw(`
		SELECT
			category,
			COUNT(*) AS skill_count,
			AVG(years_of_experience) AS avg_experience,
			MAX(years_of_experience) AS max_experience,
			MIN(years_of_experience) AS min_experience,
			GROUP_CONCAT(skill_name ORDER BY proficiency_level DESC SEPARATOR ', ') AS skills_list
		FROM skills
		GROUP BY category
		HAVING skill_count > 0
		ORDER BY avg_experience DESC, skill_count DESC`).Scan(&rows).Error
	return rows, err
}

// ByProficiency lists skills at one proficiency level.
func (s *SkillService) ByProficiency(level string) ([]models.Skill, error) {
	var skills []models.Skill
	err := s.db.Raw(`
		SELECT * FROM skills
		WHERE proficiency_level = ?
		ORDER BY years_of_experience DESC, skill_name ASC`, level).Scan(&skills).Error
	return skills, err
}

// SkillStatistics is the global skill summary with per-level counts.
type SkillStatistics struct {
	TotalSkills        int      `gorm:"column:total_skills" json:"total_skills"`
	TotalCategories    int      `gorm:"column:total_categories" json:"total_categories"`
	AvgYearsExperience *float64 `gorm:"column:avg_years_experience" json:"avg_years_experience"`
	MaxYearsExperience *float64 `gorm:"column:max_years_experience" json:"max_years_experience"`
	ExpertCount        int      `gorm:"column:expert_count" json:"expert_count"`
	AdvancedCount      int      `gorm:"column:advanced_count" json:"advanced_count"`
	IntermediateCount  int      `gorm:"column:intermediate_count" json:"intermediate_count"`
	BeginnerCount      int      `gorm:"column:beginner_count" json:"beginner_count"`
}

// Statistics returns totals and counts bucketed by proficiency level.
func (s *SkillService) Statistics() (*SkillStatistics, error) {
	var stats SkillStatistics
	err := s.db.Raw(`
		SELECT
			COUNT(*) AS total_skills,
			COUNT(DISTINCT category) AS total_categories,
			AVG(years_of_experience) AS avg_years_experience,
			MAX(years_of_experience) AS max_years_experience,
			(SELECT COUNT(*) FROM skills WHERE proficiency_level = 'Expert') AS expert_count,
			(SELECT COUNT(*) FROM skills WHERE proficiency_level = 'Advanced') AS advanced_count,
			(SELECT COUNT(*) FROM skills WHERE proficiency_level = 'Intermediate') AS intermediate_count,
			(SELECT COUNT(*) FROM skills WHERE proficiency_level = 'Beginner') AS beginner_count
		FROM skills`).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
