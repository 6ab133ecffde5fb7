package main

import (
	"context"
	"log"
	"os"

	"permitpro-backend/internal/api/routes"
	"permitpro-backend/internal/auth"
	"permitpro-backend/internal/config"
	"permitpro-backend/internal/database"
	"permitpro-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "permitpro-backend/docs" // This is needed for swag
)

//	@title			PermitPro Backend API
//	@version		1.0
//	@description	Backend API for PermitPro: permit packages, documents, contractors, subcontractors and county checklists.

//	@contact.name	PermitPro Support
//	@contact.email	support@permitpro.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:8000
//	@BasePath	/api

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	setupLogging(cfg.LogLevel)

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
	})
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	store, err := storage.New(context.Background(), storage.Options{
		Driver:     cfg.StorageDriver,
		UploadsDir: cfg.UploadsDir,
		S3: storage.S3Options{
			Bucket:   cfg.S3Bucket,
			Region:   cfg.S3Region,
			Prefix:   cfg.S3Prefix,
			Endpoint: cfg.S3Endpoint,
		},
	})
	if err != nil {
		logrus.Fatal("Failed to initialize document storage:", err)
	}

	authService, err := auth.NewAuthService(&auth.AuthConfig{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.JWTTTL,
		Required:  cfg.AuthRequired,
	})
	if err != nil {
		logrus.Fatal("Failed to initialize auth:", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRoutes(db, cfg, store, authService)

	logrus.WithFields(logrus.Fields{
		"port":           cfg.Port,
		"storage_driver": cfg.StorageDriver,
		"auth_required":  cfg.AuthRequired,
	}).Info("Starting server")
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}
