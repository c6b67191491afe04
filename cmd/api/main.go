package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g docs.go -o ../../docs --parseDependency

import (
	"log"
	"log/slog"
	"os"

	"github.com/khawajaazfar/NASA-Hackathon-2025-Backend/internal/config"
	"github.com/khawajaazfar/NASA-Hackathon-2025-Backend/internal/model"
	"github.com/khawajaazfar/NASA-Hackathon-2025-Backend/internal/prediction"

	_ "github.com/khawajaazfar/NASA-Hackathon-2025-Backend/docs" // Import generated docs
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger) // Set as default logger for the application

	// The model must load before the listener opens. A process that cannot
	// load its artifact must not accept traffic.
	artifact, err := model.Load(cfg.Model.Path)
	if err != nil {
		logger.Error("model unavailable, refusing to start",
			"kind", string(prediction.KindModelUnavailable),
			"path", cfg.Model.Path,
			"error", err,
		)
		os.Exit(1)
	}
	logger.Info("model loaded",
		"path", cfg.Model.Path,
		"features", artifact.Features(),
		"targets", artifact.Targets(),
	)

	// Create app
	app := NewApp(cfg, logger, prediction.NewService(artifact, logger))

	// Start server
	logger.Info("starting server", "addr", cfg.GetServerAddr())
	if err := app.Run(cfg.GetServerAddr()); err != nil {
		logger.Error("server failed", "error", err)
		log.Fatal(err)
	}
}
