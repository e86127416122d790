package main

import (
	"github.com/gin-gonic/gin"

	"github.com/muambr/fashionscrape/internal/obs"
	"github.com/muambr/fashionscrape/routes"
)

func main() {
	obs.Init(false)
	defer obs.L().Sync()

	r := gin.Default()

	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "fashion scrape engine is running",
		})
	})

	routes.SetupRoutes(r)

	obs.Info("starting fashion scrape engine server", obs.String("addr", ":8080"))
	if err := r.Run(":8080"); err != nil {
		obs.Error("server stopped", obs.Err(err))
	}
}
