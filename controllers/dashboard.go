// controllers/dashboard.go
package controllers

import (
	"log"
	"net/http"
	"sync"

	"portfolio-api/config"
	"portfolio-api/services"
	"portfolio-api/utils"

	"github.com/gin-gonic/gin"
)

var (
	dashboardOnce sync.Once
	dashboardSvc  *services.DashboardService
)

// GetDashboard - GET /api/v1/admin/dashboard. Cached cross-resource summary
// for the admin overview; the service keeps one cache for the process.
func GetDashboard(c *gin.Context) {
	dashboardOnce.Do(func() {
		dashboardSvc = services.NewDashboardService(config.DB)
	})

	summary, err := dashboardSvc.Summary()
	if err != nil {
		log.Printf("Dashboard summary error: %v", err)
		utils.Error(c, http.StatusInternalServerError, "Error retrieving dashboard summary")
		return
	}
	utils.SuccessData(c, http.StatusOK, "Dashboard summary retrieved successfully", summary)
}
