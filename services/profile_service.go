package services

import (
	"portfolio-api/models"

	"gorm.io/gorm"
)

// ProfileService holds the stats join and the email-uniqueness pre-check for
// the profile table.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// ProfileStats is a profile joined with its related counts and the
// completion percentage computed by the fn_profile_completion database
// function.
type ProfileStats struct {
	models.Profile       `gorm:"embedded"`
	TotalEducation       int      `gorm:"column:total_education" json:"total_education"`
	TotalCertifications  int      `gorm:"column:total_certifications" json:"total_certifications"`
	Degrees              *string  `gorm:"column:degrees" json:"degrees"`
	Certifications       *string  `gorm:"column:certifications" json:"certifications"`
	TotalSkills          int      `gorm:"column:total_skills" json:"total_skills"`
	TotalProjects        int      `gorm:"column:total_projects" json:"total_projects"`
	FeaturedProjects     int      `gorm:"column:featured_projects" json:"featured_projects"`
	CompletionPercentage *float64 `gorm:"column:completion_percentage" json:"completion_percentage"`
}

// StatsFor returns the stats row for one profile, or (nil, nil) when the
// profile id does not exist.
func (s *ProfileService) StatsFor(id int) (*ProfileStats, error) {
	var stats ProfileStats
	res := s.db.Raw(`
		SELECT
			p.*,
			COUNT(DISTINCT e.id) AS total_education,
			COUNT(DISTINCT c.id) AS total_certifications,
			GROUP_CONCAT(DISTINCT e.degree ORDER BY e.end_date DESC SEPARATOR ', ') AS degrees,
			GROUP_CONCAT(DISTINCT c.certification_name ORDER BY c.issue_date DESC SEPARATOR ', ') AS certifications,
			(SELECT COUNT(*) FROM skills) AS total_skills,
			(SELECT COUNT(*) FROM projects) AS total_projects,
			(SELECT COUNT(*) FROM projects WHERE featured = TRUE) AS featured_projects,
			fn_profile_completion(p.id) AS completion_percentage
		FROM profile p
		LEFT JOIN education e ON p.id = e.profile_id
		LEFT JOIN certifications c ON p.id = c.profile_id
		WHERE p.id = ?
		GROUP BY p.id`, id).Scan(&stats)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &stats, nil
}

// EmailExists reports whether another profile already uses the email.
// excludeID skips the profile being updated so keeping its own email passes.
func (s *ProfileService) EmailExists(email string, excludeID int) (bool, error) {
	var count int64
	query := `SELECT COUNT(*) FROM profile WHERE email = ?`
	args := []interface{}{email}
	if excludeID > 0 {
		query += ` AND id != ?`
		args = append(args, excludeID)
	}
	if err := s.db.Raw(query, args...).Scan(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
