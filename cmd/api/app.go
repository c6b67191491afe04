package main

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/khawajaazfar/NASA-Hackathon-2025-Backend/internal/config"
	"github.com/khawajaazfar/NASA-Hackathon-2025-Backend/internal/metrics"
	"github.com/khawajaazfar/NASA-Hackathon-2025-Backend/internal/prediction"
)

// App encapsulates application dependencies
type App struct {
	router            *gin.Engine
	logger            *slog.Logger
	predictionService prediction.Service
	cfg               *config.Config
}

// NewApp creates a new application with injected dependencies. The prediction
// service wraps the model artifact loaded at startup; nothing here is mutated
// after construction, so the App is safe for concurrent request handling.
func NewApp(cfg *config.Config, logger *slog.Logger, svc prediction.Service) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
	}))
	router.Use(metrics.Middleware())

	app := &App{
		router:            router,
		logger:            logger,
		predictionService: svc,
		cfg:               cfg,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
