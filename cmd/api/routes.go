package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/khawajaazfar/NASA-Hackathon-2025-Backend/internal/metrics"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoints
	app.router.GET("/", app.handleHealth)
	app.router.GET("/ping", app.handlePing)

	// Prediction endpoint
	app.router.POST("/predict", app.handlePredict)

	// Prometheus metrics
	app.router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
