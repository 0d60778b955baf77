package main

import (
	"context"
	"net/http"
	"os"

	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/api"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/config"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/database"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/handler"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/logger"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/middleware"
	"github.com/Darkprophet2323/ThriveRemote-V.3.0/internal/services"
	"github.com/joho/godotenv"
)

func main() {
	// Charger .env si présent (optionnel en production)
	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using environment")
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.InitSchema(context.Background()); err != nil {
		logger.Error("Schema init failed: %v", err)
		os.Exit(1)
	}

	// Client du flux externe d'offres
	handler.JobFeed = services.NewFeedClient(cfg.JobFeedURL, cfg.JobFeedTimeout)

	// Initialize routes
	router := api.SetupRouter(cfg)

	// Wrap router with CORS middleware
	h := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("ThriveRemote API starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, h); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
