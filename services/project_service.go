package services

import (
	"portfolio-api/models"

	"gorm.io/gorm"
)

// ProjectService holds the read-only aggregate and search queries layered on
// the projects table.
type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// ProjectSearchRow is a project with its fulltext relevance score.
type ProjectSearchRow struct {
	models.Project `gorm:"embedded"`
	Relevance      float64 `gorm:"column:relevance" json:"relevance"`
}

// SearchByTechnology runs a natural-language fulltext search over
// technologies_used and description, ties broken by the featured flag.
func (s *ProjectService) SearchByTechnology(technology string) ([]ProjectSearchRow, error) {
	var rows []ProjectSearchRow
	err := s.db.Raw(`
		SELECT *,
			MATCH(technologies_used, description) AGAINST(? IN NATURAL LANGUAGE MODE) AS relevance
		FROM projects
		WHERE MATCH(technologies_used, description) AGAINST(? IN NATURAL LANGUAGE MODE)
		ORDER BY relevance DESC, featured DESC`, technology, technology).Scan(&rows).Error
	return rows, err
}

// ProjectDurationRow is a project annotated with its day count, duration
// bucket and the portfolio-wide average duration.
type ProjectDurationRow struct {
	models.Project     `gorm:"embedded"`
	DurationDays       int      `gorm:"column:duration_days" json:"duration_days"`
	DurationType       string   `gorm:"-" json:"duration_type"`
	AvgProjectDuration *float64 `gorm:"column:avg_project_duration" json:"avg_project_duration"`
}

// WithDuration annotates every project with its duration in whole days.
// Ongoing projects (no end_date) are measured against the current date.
func (s *ProjectService) WithDuration() ([]ProjectDurationRow, error) {
	var rows []ProjectDurationRow
	err := s.db.Raw(`
		SELECT *,
			DATEDIFF(COALESCE(end_date, CURDATE()), start_date) AS duration_days,
			(SELECT AVG(DATEDIFF(COALESCE(end_date, CURDATE()), start_date)) FROM projects) AS avg_project_duration
		FROM projects
		ORDER BY duration_days DESC`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].DurationType = ClassifyDuration(rows[i].DurationDays)
	}
	return rows, nil
}

// Featured lists featured projects, newest first.
func (s *ProjectService) Featured() ([]models.Project, error) {
	var projects []models.Project
	err := s.db.Raw(`
		SELECT * FROM projects
		WHERE featured = TRUE
		ORDER BY start_date DESC`).Scan(&projects).Error
	return projects, err
}

// ByStatus lists projects with one status, newest first.
func (s *ProjectService) ByStatus(status string) ([]models.Project, error) {
	var projects []models.Project
	err := s.db.Raw(`
		SELECT * FROM projects
		WHERE status = ?
		ORDER BY start_date DESC`, status).Scan(&projects).Error
	return projects, err
}

// ProjectStatistics is the global project summary: per-status counts plus
// duration aggregates under the same open-ended duration rule.
type ProjectStatistics struct {
	TotalProjects   int      `gorm:"column:total_projects" json:"total_projects"`
	CompletedCount  int      `gorm:"column:completed_count" json:"completed_count"`
	InProgressCount int      `gorm:"column:in_progress_count" json:"in_progress_count"`
	PlanningCount   int      `gorm:"column:planning_count" json:"planning_count"`
	ArchivedCount   int      `gorm:"column:archived_count" json:"archived_count"`
	FeaturedCount   int      `gorm:"column:featured_count" json:"featured_count"`
	AvgDurationDays *float64 `gorm:"column:avg_duration_days" json:"avg_duration_days"`
	MaxDurationDays *int     `gorm:"column:max_duration_days" json:"max_duration_days"`
	MinDurationDays *int     `gorm:"column:min_duration_days" json:"min_duration_days"`
}

// Statistics returns counts by status and duration aggregates.
func (s *ProjectService) Statistics() (*ProjectStatistics, error) {
	var stats ProjectStatistics
	err := s.db.Raw(`
		SELECT
			COUNT(*) AS total_projects,
			COALESCE(SUM(CASE WHEN status = 'Completed' THEN 1 ELSE 0 END), 0) AS completed_count,
			COALESCE(SUM(CASE WHEN status = 'In Progress' THEN 1 ELSE 0 END), 0) AS in_progress_count,
			COALESCE(SUM(CASE WHEN status = 'Planning' THEN 1 ELSE 0 END), 0) AS planning_count,
			COALESCE(SUM(CASE WHEN status = 'Archived' THEN 1 ELSE 0 END), 0) AS archived_count,
			COALESCE(SUM(CASE WHEN featured = TRUE THEN 1 ELSE 0 END), 0) AS featured_count,
			AVG(DATEDIFF(COALESCE(end_date, CURDATE()), start_date)) AS avg_duration_days,
			MAX(DATEDIFF(COALESCE(end_date, CURDATE()), start_date)) AS max_duration_days,
			MIN(DATEDIFF(COALESCE(end_date, CURDATE()), start_date)) AS min_duration_days
		FROM projects`).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
