// controllers/skill.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"portfolio-api/config"
	"portfolio-api/models"
	"portfolio-api/services"
	"portfolio-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ===== SKILL CONTROLLERS =====

// GetSkills - GET /skills with optional id or action query parameters
func GetSkills(c *gin.Context) {
	svc := services.NewSkillService(config.DB)

	switch c.Query("action") {
	case "by_category":
		rows, err := svc.ByCategory()
		if err != nil {
			log.Printf("Skill ByCategory error: %v", err)
			utils.Error(c, http.StatusInternalServerError, "Error retrieving skills")
			return
		}
		utils.SuccessData(c, http.StatusOK, "Skills by category retrieved successfully", rows)
		return

	case "by_proficiency":
		level := c.Query("level")
		if level == "" {
			utils.Error(c, http.StatusBadRequest, "Proficiency level is required")
			return
		}
		if !utils.InList(level, models.ValidProficiencyLevels) {
			utils.Error(c, http.StatusBadRequest,
				"Invalid proficiency level. Must be: Beginner, Intermediate, Advanced, or Expert")
			return
		}
		skills, err := svc.ByProficiency(level)
		if err != nil {
			log.Printf("Skill ByProficiency error: %v", err)
			utils.Error(c, http.StatusInternalServerError, "Error retrieving skills")
			return
		}
		utils.SuccessData(c, http.StatusOK, "Skills by proficiency level retrieved successfully", skills)
		return

	case "statistics":
		stats, err := svc.Statistics()
		if err != nil {
			log.Printf("Skill Statistics error: %v", err)
			utils.Error(c, http.StatusInternalServerError, "Error retrieving skills")
			return
		}
		utils.SuccessData(c, http.StatusOK, "Skill statistics retrieved successfully", stats)
		return
	}

	if raw := c.Query("id"); raw != "" {
		var skill models.Skill
		err := config.DB.Where("id = ?", queryID(raw)).First(&skill).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Skill not found")
			return
		}
		if err != nil {
			log.Printf("Skill get error: %v", err)
			utils.Error(c, http.StatusInternalServerError, "Error retrieving skills")
			return
		}
		utils.SuccessData(c, http.StatusOK, "Skill retrieved successfully", skill)
		return
	}

	var skills []models.Skill
	if err := config.DB.
		Order("category ASC, proficiency_level DESC, years_of_experience DESC").
		Find(&skills).Error; err != nil {
		log.Printf("Skill list error: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Error retrieving skills")
		return
	}
	utils.SuccessList(c, http.StatusOK, "Skills retrieved successfully", len(skills), skills)
}

func validateSkillRequest(c *gin.Context, req *models.SkillRequest) bool {
	req.SkillName = strings.TrimSpace(req.SkillName)
	req.Category = strings.TrimSpace(req.Category)

	if req.SkillName == "" || req.Category == "" || req.ProficiencyLevel == "" {
		utils.Error(c, http.StatusBadRequest,
			"Missing required fields: skill_name, category, and proficiency_level are required")
		return false
	}
	if !utils.InList(req.ProficiencyLevel, models.ValidProficiencyLevels) {
		utils.Error(c, http.StatusBadRequest,
			"Invalid proficiency level. Must be: Beginner, Intermediate, Advanced, or Expert")
		return false
	}
	return true
}

// CreateSkill - POST /skills
func CreateSkill(c *gin.Context) {
	var req models.SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validateSkillRequest(c, &req) {
		return
	}

	skill := models.Skill{
		SkillName:         req.SkillName,
		Category:          req.Category,
		ProficiencyLevel:  req.ProficiencyLevel,
		YearsOfExperience: req.YearsOfExperience,
		Description:       req.Description,
		IconClass:         req.IconClass,
	}
	if err := config.DB.Create(&skill).Error; err != nil {
		log.Printf("Skill create error: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Failed to create skill")
		return
	}

	utils.Success(c, http.StatusCreated, "Skill created successfully")
}

// UpdateSkill - PUT /skills (full-column replace, id in body)
func UpdateSkill(c *gin.Context) {
	var req models.SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID == 0 {
		utils.Error(c, http.StatusBadRequest, "Skill ID is required")
		return
	}

	var existing models.Skill
	if err := config.DB.Where("id = ?", req.ID).First(&existing).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Skill not found")
		return
	}
	if !validateSkillRequest(c, &req) {
		return
	}

	updates := map[string]interface{}{
		"skill_name":          req.SkillName,
		"category":            req.Category,
		"proficiency_level":   req.ProficiencyLevel,
		"years_of_experience": req.YearsOfExperience,
		"description":         req.Description,
		"icon_class":          req.IconClass,
	}
	if err := config.DB.Model(&models.Skill{}).Where("id = ?", req.ID).Updates(updates).Error; err != nil {
		log.Printf("Skill update error: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Failed to update skill")
		return
	}

	utils.Success(c, http.StatusOK, "Skill updated successfully")
}

// DeleteSkill - DELETE /skills?id=N
func DeleteSkill(c *gin.Context) {
	raw := c.Query("id")
	if raw == "" {
		utils.Error(c, http.StatusBadRequest, "Skill ID is required")
		return
	}
	id := queryID(raw)

	var existing models.Skill
	if err := config.DB.Where("id = ?", id).First(&existing).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Skill not found")
		return
	}

	res := config.DB.Where("id = ?", id).Delete(&models.Skill{})
	if res.Error != nil || res.RowsAffected == 0 {
		if res.Error != nil {
			log.Printf("Skill delete error: %v", res.Error)
		}
		utils.Error(c, http.StatusInternalServerError, "Failed to delete skill")
		return
	}

	utils.Success(c, http.StatusOK, "Skill deleted successfully")
}
