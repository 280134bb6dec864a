package services

import (
	"portfolio-api/models"

	"gorm.io/gorm"
)

// HobbyService holds the search query layered on the hobbies table.
type HobbyService struct {
	db *gorm.DB
}

func NewHobbyService(db *gorm.DB) *HobbyService {
	return &HobbyService{db: db}
}

// Search matches the keyword as a substring of hobby_name or description.
// Matching is case-insensitive when the column collation is.
func (s *HobbyService) Search(keyword string) ([]models.Hobby, error) {
	term := "%" + keyword + "%"
	var hobbies []models.Hobby
	err := s.db.Raw(`
		SELECT * FROM hobbies
		WHERE hobby_name LIKE ? OR description LIKE ?
		ORDER BY hobby_name ASC`, term, term).Scan(&hobbies).Error
	return hobbies, err
}
