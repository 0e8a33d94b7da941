package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Uoerim/UniSphere-sub001/internal/cache"
	"github.com/Uoerim/UniSphere-sub001/internal/config"
	"github.com/Uoerim/UniSphere-sub001/internal/db"
	"github.com/Uoerim/UniSphere-sub001/internal/logger"
	"github.com/Uoerim/UniSphere-sub001/internal/server"
)

// @title UniSphere Facility API
// @version 1.0
// @description Facility scheduling and room reservation API for the UniSphere portal.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	logger.Init()
	logger.Info("Starting UniSphere facility service")
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	catalogCache := cache.New(cfg.RedisAddr)
	if catalogCache != nil {
		defer catalogCache.Close()
		logger.Infof("Catalog cache enabled at %s", cfg.RedisAddr)
	} else {
		logger.Info("Catalog cache disabled, reading catalogs from database")
	}

	srv := server.New(database, cfg, catalogCache)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
