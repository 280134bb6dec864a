package routes

import (
	"net/http"

	"portfolio-api/controllers"
	"portfolio-api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers the resource endpoints and the supplemental admin
// surface. The five resources keep the query-parameter contract the frontend
// already speaks: ?id=, ?action=, with PUT ids in the body.
func SetupRoutes(router *gin.Engine) {
	// Unsupported verbs on a known path answer 405 with the envelope.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"status":  "error",
			"message": "Method not allowed",
		})
	})

	resources := []struct {
		path   string
		get    gin.HandlerFunc
		post   gin.HandlerFunc
		put    gin.HandlerFunc
		delete gin.HandlerFunc
	}{
		{"/profile", controllers.GetProfiles, controllers.CreateProfile, controllers.UpdateProfile, controllers.DeleteProfile},
		{"/skills", controllers.GetSkills, controllers.CreateSkill, controllers.UpdateSkill, controllers.DeleteSkill},
		{"/projects", controllers.GetProjects, controllers.CreateProject, controllers.UpdateProject, controllers.DeleteProject},
		{"/hobbies", controllers.GetHobbies, controllers.CreateHobby, controllers.UpdateHobby, controllers.DeleteHobby},
		{"/contacts", controllers.GetContacts, controllers.CreateContact, controllers.UpdateContact, controllers.DeleteContact},
	}
	for _, r := range resources {
		router.GET(r.path, r.get)
		router.POST(r.path, r.post)
		router.PUT(r.path, r.put)
		router.DELETE(r.path, r.delete)
	}

	// API v1 group for everything outside the five-resource contract
	v1 := router.Group("/api/v1")
	{
		public := v1.Group("")
		{
			public.POST("/login", controllers.Login)

			public.GET("/health", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{
					"status":  "ok",
					"message": "Portfolio API is running",
				})
			})
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware())
		{
			admin.GET("/dashboard", controllers.GetDashboard)
		}
	}
}
