package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"care-schedule/config"
	_ "care-schedule/docs" // Swagger docs
	"care-schedule/internal/httpserver"
	"care-schedule/internal/middleware"
	"care-schedule/internal/schedule/repository/sqlite"
	"care-schedule/pkg/log"
)

// @title       Care Schedule API
// @description Scheduling conflict detection for a caregiving companion: activities, doctor appointments and the overlaps between them.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Care Schedule...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlite.Open(ctx, cfg.Database.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database %s: %v", cfg.Database.Path, err)
	}
	defer db.Close()
	logger.Infof(ctx, "Database: %s", cfg.Database.Path)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		RateLimit: middleware.RateLimitConfig{
			Enabled:        cfg.RateLimit.Enabled,
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			MaxClients:     cfg.RateLimit.MaxClients,
			TTL:            cfg.RateLimit.TTL,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
