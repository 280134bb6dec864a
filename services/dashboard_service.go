package services

import (
	"time"

	"portfolio-api/models"

	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

// DashboardService aggregates counts across all resources for the admin
// dashboard. The summary is cached briefly; it backs a glance view, not the
// resource statistics endpoints, which always read fresh.
type DashboardService struct {
	db    *gorm.DB
	cache *gocache.Cache
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{
		db:    db,
		cache: gocache.New(time.Minute, 5*time.Minute),
	}
}

const dashboardCacheKey = "dashboard_summary"

// DashboardSummary is the cross-resource count overview.
type DashboardSummary struct {
	TotalProfiles     int64 `json:"total_profiles"`
	TotalSkills       int64 `json:"total_skills"`
	TotalProjects     int64 `json:"total_projects"`
	FeaturedProjects  int64 `json:"featured_projects"`
	CompletedProjects int64 `json:"completed_projects"`
	TotalHobbies      int64 `json:"total_hobbies"`
	TotalContacts     int64 `json:"total_contacts"`
	NewContacts       int64 `json:"new_contacts"`
}

// Summary returns the cached overview, recounting when the cache expired.
func (s *DashboardService) Summary() (*DashboardSummary, error) {
	if cached, found := s.cache.Get(dashboardCacheKey); found {
		return cached.(*DashboardSummary), nil
	}

	var summary DashboardSummary
	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&summary.TotalProfiles, s.db.Model(&models.Profile{})},
		{&summary.TotalSkills, s.db.Model(&models.Skill{})},
		{&summary.TotalProjects, s.db.Model(&models.Project{})},
		{&summary.FeaturedProjects, s.db.Model(&models.Project{}).Where("featured = ?", true)},
		{&summary.CompletedProjects, s.db.Model(&models.Project{}).Where("status = ?", "Completed")},
		{&summary.TotalHobbies, s.db.Model(&models.Hobby{})},
		{&summary.TotalContacts, s.db.Model(&models.Contact{})},
		{&summary.NewContacts, s.db.Model(&models.Contact{}).Where("status = ?", "New")},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}

	s.cache.Set(dashboardCacheKey, &summary, gocache.DefaultExpiration)
	return &summary, nil
}
