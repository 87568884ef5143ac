package main

import (
	"log"
	"os"
	"path/filepath"

	"event-portal-backend/internal/accounts"
	"event-portal-backend/internal/api/routes"
	"event-portal-backend/internal/config"
	"event-portal-backend/internal/database"
	"event-portal-backend/internal/logger"
	"event-portal-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	logger.Setup(cfg.LogLevel)

	// Initialize database
	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath()), 0o755); err != nil {
		logrus.Fatal("Failed to create data directory:", err)
	}
	db, err := database.Initialize(cfg.DatabasePath(), nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Initialize file storage
	files, err := storage.New(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize file storage:", err)
	}

	// Load login accounts
	accountStore, err := accounts.Open(cfg.AccountsPath)
	if err != nil {
		logrus.Fatal("Failed to load accounts:", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, files, accountStore)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}
