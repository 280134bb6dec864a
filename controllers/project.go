// controllers/project.go
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

// ===== PROJECT CONTROLLERS =====

// GetProjects - GET /projects with optional id or action query parameters
func GetProjects(c *gin.Context) {
	svc := services.NewProjectService(config.DB)

	switch c.Query("action") {
	case "featured":
		projects, err := svc.Featured()
		if err != nil {
			log.Printf("Project Featured error: %v", err)
			utils.Error(c, http.StatusInternalServerError, "Error retrieving projects")
			return
		}
		utils.SuccessList(c, http.StatusOK, "Featured projects retrieved successfully", len(projects), projects)
		return

	case "with_duration":
		rows, err := svc.WithDuration()
		if err != nil {
			log.Printf("Project WithDuration error: %v", err)
			utils.Error(c, http.StatusInternalServerError, "Error retrieving projects")
			return
		}
		utils.SuccessData(c, http.StatusOK, "Projects with duration retrieved successfully", rows)
		return

	case "statistics":
		stats, err := svc.Statistics()
		if err != nil {
			log.Printf("Project Statistics error: %v", err)
			utils.Error(c, http.StatusInternalServerError, "Error retrieving projects")
			return
		}
		utils.SuccessData(c, http.StatusOK, "Project statistics retrieved successfully", stats)
		return

	case "search":
		// The original client sends ?technology=; keyword is an alias.
		technology := c.Query("technology")
		if technology == "" {
			technology = c.Query("keyword")
		}
		if technology == "" {
			utils.Error(c, http.StatusBadRequest, "Technology parameter is required for search")
			return
		}
		rows, err := svc.SearchByTechnology(technology)
		if err != nil {
			log.Printf("Project SearchByTechnology error: %v", err)
			utils.Error(c, http.StatusInternalServerError, "Error retrieving projects")
			return
		}
		utils.SuccessList(c, http.StatusOK, "Search results retrieved successfully", len(rows), rows)
		return

	case "by_status":
		status := c.Query("status")
		if status == "" {
			utils.Error(c, http.StatusBadRequest, "Status parameter is required")
			return
		}
		if !utils.InList(status, models.ValidProjectStatuses) {
			utils.Error(c, http.StatusBadRequest,
				"Invalid status. Must be: Planning, In Progress, Completed, or Archived")
			return
		}
		projects, err := svc.ByStatus(status)
		if err != nil {
			log.Printf("Project ByStatus error: %v", err)
			utils.Error(c, http.StatusInternalServerError, "Error retrieving projects")
			return
		}
		utils.SuccessData(c, http.StatusOK, "Projects by status retrieved successfully", projects)
		return
	}

	if raw := c.Query("id"); raw != "" {
		var project models.Project
		err := config.DB.Where("id = ?", queryID(raw)).First(&project).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Project not found")
			return
		}
		if err != nil {
			log.Printf("Project get error: %v", err)
			utils.Error(c, http.StatusInternalServerError, "Error retrieving projects")
			return
		}
		utils.SuccessData(c, http.StatusOK, "Project retrieved successfully", project)
		return
	}

	var projects []models.Project
	if err := config.DB.Order("featured DESC, start_date DESC").Find(&projects).Error; err != nil {
		log.Printf("Project list error: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Error retrieving projects")
		return
	}
	utils.SuccessList(c, http.StatusOK, "Projects retrieved successfully", len(projects), projects)
}

func validateProjectRequest(c *gin.Context, req *models.ProjectRequest) bool {
	req.ProjectTitle = strings.TrimSpace(req.ProjectTitle)
	req.Description = strings.TrimSpace(req.Description)

	if req.ProjectTitle == "" || req.Description == "" {
		utils.Error(c, http.StatusBadRequest,
			"Missing required fields: project_title and description are required")
		return false
	}
	if req.Status == "" {
		req.Status = "Planning"
	}
	if !utils.InList(req.Status, models.ValidProjectStatuses) {
		utils.Error(c, http.StatusBadRequest,
			"Invalid status. Must be: Planning, In Progress, Completed, or Archived")
		return false
	}
	return true
}

// CreateProject - POST /projects
func CreateProject(c *gin.Context) {
	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validateProjectRequest(c, &req) {
		return
	}

	startDate, ok := parseDate(req.StartDate)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "Invalid start_date format. Use YYYY-MM-DD")
		return
	}
	endDate, ok := parseDate(req.EndDate)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "Invalid end_date format. Use YYYY-MM-DD")
		return
	}

	project := models.Project{
		ProjectTitle:     req.ProjectTitle,
		Description:      req.Description,
		TechnologiesUsed: req.TechnologiesUsed,
		ProjectURL:       req.ProjectURL,
		GithubURL:        req.GithubURL,
		ImageURL:         req.ImageURL,
		StartDate:        startDate,
		EndDate:          endDate,
		Status:           req.Status,
		Featured:         req.Featured,
	}
	if err := config.DB.Create(&project).Error; err != nil {
		log.Printf("Project create error: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Failed to create project")
		return
	}

	utils.Success(c, http.StatusCreated, "Project created successfully")
}

// UpdateProject - PUT /projects (full-column replace, id in body)
func UpdateProject(c *gin.Context) {
	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID == 0 {
		utils.Error(c, http.StatusBadRequest, "Project ID is required")
		return
	}

	var existing models.Project
	if err := config.DB.Where("id = ?", req.ID).First(&existing).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Project not found")
		return
	}
	if !validateProjectRequest(c, &req) {
		return
	}

	startDate, ok := parseDate(req.StartDate)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "Invalid start_date format. Use YYYY-MM-DD")
		return
	}
	endDate, ok := parseDate(req.EndDate)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "Invalid end_date format. Use YYYY-MM-DD")
		return
	}

	updates := map[string]interface{}{
		"project_title":     req.ProjectTitle,
		"description":       req.Description,
		"technologies_used": req.TechnologiesUsed,
		"project_url":       req.ProjectURL,
		"github_url":        req.GithubURL,
		"image_url":         req.ImageURL,
		"start_date":        startDate,
		"end_date":          endDate,
		"status":            req.Status,
		"featured":          req.Featured,
	}
	if err := config.DB.Model(&models.Project{}).Where("id = ?", req.ID).Updates(updates).Error; err != nil {
		log.Printf("Project update error: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Failed to update project")
		return
	}

	utils.Success(c, http.StatusOK, "Project updated successfully")
}

// DeleteProject - DELETE /projects?id=N
func DeleteProject(c *gin.Context) {
	raw := c.Query("id")
	if raw == "" {
		utils.Error(c, http.StatusBadRequest, "Project ID is required")
		return
	}
	id := queryID(raw)

	var existing models.Project
	if err := config.DB.Where("id = ?", id).First(&existing).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Project not found")
		return
	}

	res := config.DB.Where("id = ?", id).Delete(&models.Project{})
	if res.Error != nil || res.RowsAffected == 0 {
		if res.Error != nil {
			log.Printf("Project delete error: %v", res.Error)
		}
		utils.Error(c, http.StatusInternalServerError, "Failed to delete project")
		return
	}

	utils.Success(c, http.StatusOK, "Project deleted successfully")
}
