// controllers/hobby.go
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

// ===== HOBBY CONTROLLERS =====

// GetHobbies - GET /hobbies with optional id or action query parameters
func GetHobbies(c *gin.Context) {
	if c.Query("action") == "search" {
		keyword := c.Query("keyword")
		if keyword == "" {
			utils.Error(c, http.StatusBadRequest, "Keyword parameter is required for search")
			return
		}
		hobbies, err := services.NewHobbyService(config.DB).Search(keyword)
		if err != nil {
			log.Printf("Hobby search error: %v", err)
			utils.Error(c, http.StatusInternalServerError, "Error retrieving hobbies")
			return
		}
		utils.SuccessList(c, http.StatusOK, "Search results retrieved successfully", len(hobbies), hobbies)
		return
	}

	if raw := c.Query("id"); raw != "" {
		var hobby models.Hobby
		err := config.DB.Where("id = ?", queryID(raw)).First(&hobby).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Hobby not found")
			return
		}
		if err != nil {
			log.Printf("Hobby get error: %v", err)
			utils.Error(c, http.StatusInternalServerError, "Error retrieving hobbies")
			return
		}
		utils.SuccessData(c, http.StatusOK, "Hobby retrieved successfully", hobby)
		return
	}

	var hobbies []models.Hobby
	if err := config.DB.Order("hobby_name ASC").Find(&hobbies).Error; err != nil {
		log.Printf("Hobby list error: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Error retrieving hobbies")
		return
	}
	utils.SuccessList(c, http.StatusOK, "Hobbies retrieved successfully", len(hobbies), hobbies)
}

// CreateHobby - POST /hobbies
func CreateHobby(c *gin.Context) {
	var req models.HobbyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.HobbyName = strings.TrimSpace(req.HobbyName)
	if req.HobbyName == "" {
		utils.Error(c, http.StatusBadRequest, "Missing required field: hobby_name is required")
		return
	}

	hobby := models.Hobby{
		HobbyName:   req.HobbyName,
		Description: req.Description,
		IconClass:   req.IconClass,
	}
	if err := config.DB.Create(&hobby).Error; err != nil {
		log.Printf("Hobby create error: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Failed to create hobby")
		return
	}

	utils.Success(c, http.StatusCreated, "Hobby created successfully")
}

// UpdateHobby - PUT /hobbies (full-column replace, id in body)
func UpdateHobby(c *gin.Context) {
	var req models.HobbyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID == 0 {
		utils.Error(c, http.StatusBadRequest, "Hobby ID is required")
		return
	}

	var existing models.Hobby
	if err := config.DB.Where("id = ?", req.ID).First(&existing).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Hobby not found")
		return
	}

	req.HobbyName = strings.TrimSpace(req.HobbyName)
	if req.HobbyName == "" {
		utils.Error(c, http.StatusBadRequest, "Missing required field: hobby_name is required")
		return
	}

	updates := map[string]interface{}{
		"hobby_name":  req.HobbyName,
		"description": req.Description,
		"icon_class":  req.IconClass,
	}
	if err := config.DB.Model(&models.Hobby{}).Where("id = ?", req.ID).Updates(updates).Error; err != nil {
		log.Printf("Hobby update error: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Failed to update hobby")
		return
	}

	utils.Success(c, http.StatusOK, "Hobby updated successfully")
}

// DeleteHobby - DELETE /hobbies?id=N
func DeleteHobby(c *gin.Context) {
	raw := c.Query("id")
	if raw == "" {
		utils.Error(c, http.StatusBadRequest, "Hobby ID is required")
		return
	}
	id := queryID(raw)

	var existing models.Hobby
	if err := config.DB.Where("id = ?", id).First(&existing).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Hobby not found")
		return
	}

	res := config.DB.Where("id = ?", id).Delete(&models.Hobby{})
	if res.Error != nil || res.RowsAffected == 0 {
		if res.Error != nil {
			log.Printf("Hobby delete error: %v", res.Error)
		}
		utils.Error(c, http.StatusInternalServerError, "Failed to delete hobby")
		return
	}

	utils.Success(c, http.StatusOK, "Hobby deleted successfully")
}
