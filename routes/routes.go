package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/muambr/fashionscrape/handlers"
)

// SetupRoutes wires the scrape endpoint under /api/v1 and the
// administrative status endpoint.
func SetupRoutes(r *gin.Engine) {
	scrapeHandler := handlers.NewScrapeHandler()
	adminHandler := handlers.NewAdminHandler()

	api := r.Group("/api/v1")
	{
		api.GET("/scrape", scrapeHandler.ScrapeProduct)
		api.POST("/scrape", scrapeHandler.ScrapeProduct)
	}

	admin := r.Group("/admin")
	{
		admin.GET("/engine/status", adminHandler.EngineStatus)
	}
}
