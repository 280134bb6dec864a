// controllers/contact.go
package controllers

import (
	"errors"
	"fmt"
	"html"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"portfolio-api/config"
	"portfolio-api/models"
	"portfolio-api/services"
	"portfolio-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ===== CONTACT CONTROLLERS =====

// GetContacts - GET /contacts with optional id or action query parameters
func GetContacts(c *gin.Context) {
	svc := services.NewContactService(config.DB)

	switch c.Query("action") {
	case "by_status":
		status := c.Query("status")
		if status == "" {
			utils.Error(c, http.StatusBadRequest, "Status parameter is required")
			return
		}
		contacts, err := svc.ByStatus(status)
		if err != nil {
			log.Printf("Contact ByStatus error: %v", err)
			utils.Error(c, http.StatusInternalServerError, "Error retrieving contacts")
			return
		}
		utils.SuccessList(c, http.StatusOK, "Contacts by status retrieved successfully", len(contacts), contacts)
		return

	case "recent":
		days := 30
		if raw := c.Query("days"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil {
				days = parsed
			}
		}
		rows, err := svc.Recent(days)
		if err != nil {
			log.Printf("Contact Recent error: %v", err)
			utils.Error(c, http.StatusInternalServerError, "Error retrieving contacts")
			return
		}
		utils.SuccessList(c, http.StatusOK, "Recent contacts retrieved successfully", len(rows), rows)
		return

	case "statistics":
		stats, err := svc.Statistics()
		if err != nil {
			log.Printf("Contact Statistics error: %v", err)
			utils.Error(c, http.StatusInternalServerError, "Error retrieving contacts")
			return
		}
		utils.SuccessData(c, http.StatusOK, "Contact statistics retrieved successfully", stats)
		return

	case "by_date":
		rows, err := svc.ByDate()
		if err != nil {
			log.Printf("Contact ByDate error: %v", err)
			utils.Error(c, http.StatusInternalServerError, "Error retrieving contacts")
			return
		}
		utils.SuccessData(c, http.StatusOK, "Contacts by date retrieved successfully", rows)
		return

	case "search":
		keyword := c.Query("keyword")
		if keyword == "" {
			utils.Error(c, http.StatusBadRequest, "Keyword parameter is required for search")
			return
		}
		contacts, err := svc.Search(keyword)
		if err != nil {
			log.Printf("Contact Search error: %v", err)
			utils.Error(c, http.StatusInternalServerError, "Error retrieving contacts")
			return
		}
		utils.SuccessList(c, http.StatusOK, "Search results retrieved successfully", len(contacts), contacts)
		return
	}

	if raw := c.Query("id"); raw != "" {
		var contact models.Contact
		err := config.DB.Where("id = ?", queryID(raw)).First(&contact).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Contact not found")
			return
		}
		if err != nil {
			log.Printf("Contact get error: %v", err)
			utils.Error(c, http.StatusInternalServerError, "Error retrieving contacts")
			return
		}
		utils.SuccessData(c, http.StatusOK, "Contact retrieved successfully", contact)
		return
	}

	var contacts []models.Contact
	if err := config.DB.Order("created_at DESC").Find(&contacts).Error; err != nil {
		log.Printf("Contact list error: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Error retrieving contacts")
		return
	}
	utils.SuccessList(c, http.StatusOK, "Contacts retrieved successfully", len(contacts), contacts)
}

func validateContactRequest(c *gin.Context, req *models.ContactRequest) bool {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Message == "" {
		utils.Error(c, http.StatusBadRequest,
			"Missing required fields: name, email, and message are required")
		return false
	}
	if !utils.ValidateEmail(req.Email) {
		utils.Error(c, http.StatusBadRequest, "Invalid email format")
		return false
	}
	if req.Status == "" {
		req.Status = "New"
	}
	if !utils.InList(req.Status, models.ValidContactStatuses) {
		utils.Error(c, http.StatusBadRequest,
			"Invalid status. Must be: New, Read, Replied, or Archived")
		return false
	}
	return true
}

// CreateContact - POST /contacts
func CreateContact(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validateContactRequest(c, &req) {
		return
	}

	ipAddress := c.ClientIP()
	if req.IPAddress != nil && *req.IPAddress != "" {
		ipAddress = *req.IPAddress
	}

	contact := models.Contact{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    req.Status,
		IPAddress: &ipAddress,
	}
	if err := config.DB.Create(&contact).Error; err != nil {
		log.Printf("Contact create error: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Failed to create contact")
		return
	}

	// Notify the portfolio owner. Mail failures must not affect the response.
	go notifyNewContact(contact)

	utils.Success(c, http.StatusCreated, "Contact created successfully")
}

func notifyNewContact(contact models.Contact) {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" || !config.MailConfigured() {
		return
	}

	subject := "New contact message"
	if contact.Subject != nil && *contact.Subject != "" {
		subject = fmt.Sprintf("New contact message: %s", *contact.Subject)
	}
	body := fmt.Sprintf(
		"<p><strong>From:</strong> %s (%s)</p><p>%s</p>",
		html.EscapeString(contact.Name),
		html.EscapeString(contact.Email),
		html.EscapeString(contact.Message),
	)
	if err := config.SendMail([]string{adminEmail}, subject, body); err != nil {
		log.Printf("Contact notification mail error: %v", err)
	}
}

// UpdateContact - PUT /contacts, or PUT /contacts?action=update_status for a
// status-only partial update.
func UpdateContact(c *gin.Context) {
	if c.Query("action") == "update_status" {
		updateContactStatus(c)
		return
	}

	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID == 0 {
		utils.Error(c, http.StatusBadRequest, "Contact ID is required")
		return
	}

	var existing models.Contact
	if err := config.DB.Where("id = ?", req.ID).First(&existing).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Contact not found")
		return
	}
	if !validateContactRequest(c, &req) {
		return
	}

	updates := map[string]interface{}{
		"name":    req.Name,
		"email":   req.Email,
		"subject": req.Subject,
		"message": req.Message,
		"status":  req.Status,
	}
	if err := config.DB.Model(&models.Contact{}).Where("id = ?", req.ID).Updates(updates).Error; err != nil {
		log.Printf("Contact update error: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Failed to update contact")
		return
	}

	utils.Success(c, http.StatusOK, "Contact updated successfully")
}

func updateContactStatus(c *gin.Context) {
	var req models.ContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ID == 0 || req.Status == "" {
		utils.Error(c, http.StatusBadRequest, "Contact ID and status are required")
		return
	}
	if !utils.InList(req.Status, models.ValidContactStatuses) {
		utils.Error(c, http.StatusBadRequest,
			"Invalid status. Must be: New, Read, Replied, or Archived")
		return
	}

	var existing models.Contact
	if err := config.DB.Where("id = ?", req.ID).First(&existing).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Contact not found")
		return
	}

	if err := config.DB.Model(&models.Contact{}).Where("id = ?", req.ID).
		Update("status", req.Status).Error; err != nil {
		log.Printf("Contact status update error: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Failed to update contact status")
		return
	}

	utils.Success(c, http.StatusOK, "Contact status updated successfully")
}

// DeleteContact - DELETE /contacts?id=N
func DeleteContact(c *gin.Context) {
	raw := c.Query("id")
	if raw == "" {
		utils.Error(c, http.StatusBadRequest, "Contact ID is required")
		return
	}
	id := queryID(raw)

	var existing models.Contact
	if err := config.DB.Where("id = ?", id).First(&existing).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Contact not found")
		return
	}

	res := config.DB.Where("id = ?", id).Delete(&models.Contact{})
	if res.Error != nil || res.RowsAffected == 0 {
		if res.Error != nil {
			log.Printf("Contact delete error: %v", res.Error)
		}
		utils.Error(c, http.StatusInternalServerError, "Failed to delete contact")
		return
	}

	utils.Success(c, http.StatusOK, "Contact deleted successfully")
}
