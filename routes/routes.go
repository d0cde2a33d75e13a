package routes

import (
	"time"

	"goodjob/handlers"
	"goodjob/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterWorkingsRoutes registers the statistics and listing endpoints.
func RegisterWorkingsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/workings")
	{
		api.GET("", hb.ListWorkingsHandler)
		api.GET("/extreme", hb.ExtremeWorkingHandler)
		api.GET("/search_by/company/group_by/company", hb.SearchByCompanyHandler)
		api.GET("/search_by/job_title/group_by/company", hb.SearchByJobTitleHandler)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.PATCH("/:id", hb.UpdateWorkingStatusHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterWorkingsRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
