// controllers/profile.go
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

// ===== PROFILE CONTROLLERS =====

// GetProfiles - GET /profile with optional id or action query parameters
func GetProfiles(c *gin.Context) {
	if c.Query("action") == "stats" {
		raw := c.Query("id")
		if raw == "" {
			utils.Error(c, http.StatusBadRequest, "Profile ID is required for stats")
			return
		}
		stats, err := services.NewProfileService(config.DB).StatsFor(queryID(raw))
		if err != nil {
			log.Printf("Profile StatsFor error: %v", err)
			utils.Error(c, http.StatusInternalServerError, "Error retrieving profile")
			return
		}
		if stats == nil {
			utils.Error(c, http.StatusNotFound, "Profile not found")
			return
		}
		utils.SuccessData(c, http.StatusOK, "Profile statistics retrieved successfully", stats)
		return
	}

	if raw := c.Query("id"); raw != "" {
		var profile models.Profile
		err := config.DB.Where("id = ?", queryID(raw)).First(&profile).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Profile not found")
			return
		}
		if err != nil {
			log.Printf("Profile get error: %v", err)
			utils.Error(c, http.StatusInternalServerError, "Error retrieving profile")
			return
		}
		utils.SuccessData(c, http.StatusOK, "Profile retrieved successfully", profile)
		return
	}

	var profiles []models.Profile
	if err := config.DB.Order("created_at DESC").Find(&profiles).Error; err != nil {
		log.Printf("Profile list error: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Error retrieving profile")
		return
	}
	utils.SuccessList(c, http.StatusOK, "Profiles retrieved successfully", len(profiles), profiles)
}

func validateProfileRequest(c *gin.Context, req *models.ProfileRequest) bool {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)

	if req.FullName == "" || req.Email == "" {
		utils.Error(c, http.StatusBadRequest,
			"Missing required fields: full_name and email are required")
		return false
	}
	if !utils.ValidateEmail(req.Email) {
		utils.Error(c, http.StatusBadRequest, "Invalid email format")
		return false
	}
	return true
}

// CreateProfile - POST /profile
func CreateProfile(c *gin.Context) {
	var req models.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validateProfileRequest(c, &req) {
		return
	}

	// Email uniqueness is enforced here, not by a database constraint.
	exists, err := services.NewProfileService(config.DB).EmailExists(req.Email, 0)
	if err != nil {
		log.Printf("Profile EmailExists error: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Failed to create profile")
		return
	}
	if exists {
		utils.Error(c, http.StatusBadRequest, "Email already exists")
		return
	}

	dob, ok := parseDate(req.DateOfBirth)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "Invalid date_of_birth format. Use YYYY-MM-DD")
		return
	}

	profile := models.Profile{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		Bio:         req.Bio,
		PhotoURL:    req.PhotoURL,
		LinkedinURL: req.LinkedinURL,
		GithubURL:   req.GithubURL,
		WebsiteURL:  req.WebsiteURL,
		DateOfBirth: dob,
	}
	if err := config.DB.Create(&profile).Error; err != nil {
		log.Printf("Profile create error: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Failed to create profile")
		return
	}

	utils.Success(c, http.StatusCreated, "Profile created successfully")
}

// UpdateProfile - PUT /profile (full-column replace, id in body)
func UpdateProfile(c *gin.Context) {
	var req models.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID == 0 {
		utils.Error(c, http.StatusBadRequest, "Profile ID is required")
		return
	}

	var existing models.Profile
	if err := config.DB.Where("id = ?", req.ID).First(&existing).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Profile not found")
		return
	}
	if !validateProfileRequest(c, &req) {
		return
	}

	// Updating to another profile's email is rejected; keeping the own
	// unchanged email passes because the check excludes this id.
	exists, err := services.NewProfileService(config.DB).EmailExists(req.Email, req.ID)
	if err != nil {
		log.Printf("Profile EmailExists error: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	if exists {
		utils.Error(c, http.StatusBadRequest, "Email already exists")
		return
	}

	dob, ok := parseDate(req.DateOfBirth)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "Invalid date_of_birth format. Use YYYY-MM-DD")
		return
	}

	updates := map[string]interface{}{
		"full_name":     req.FullName,
		"email":         req.Email,
		"phone":         req.Phone,
		"address":       req.Address,
		"bio":           req.Bio,
		"photo_url":     req.PhotoURL,
		"linkedin_url":  req.LinkedinURL,
		"github_url":    req.GithubURL,
		"website_url":   req.WebsiteURL,
		"date_of_birth": dob,
	}
	if err := config.DB.Model(&models.Profile{}).Where("id = ?", req.ID).Updates(updates).Error; err != nil {
		log.Printf("Profile update error: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	utils.Success(c, http.StatusOK, "Profile updated successfully")
}

// DeleteProfile - DELETE /profile?id=N
func DeleteProfile(c *gin.Context) {
	raw := c.Query("id")
	if raw == "" {
		utils.Error(c, http.StatusBadRequest, "Profile ID is required")
		return
	}
	id := queryID(raw)

	var existing models.Profile
	if err := config.DB.Where("id = ?", id).First(&existing).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Profile not found")
		return
	}

	res := config.DB.Where("id = ?", id).Delete(&models.Profile{})
	if res.Error != nil || res.RowsAffected == 0 {
		if res.Error != nil {
			log.Printf("Profile delete error: %v", res.Error)
		}
		utils.Error(c, http.StatusInternalServerError, "Failed to delete profile")
		return
	}

	utils.Success(c, http.StatusOK, "Profile deleted successfully")
}
