package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hadiheib99/storefront-backend/config"
	"github.com/hadiheib99/storefront-backend/middleware"
	"github.com/hadiheib99/storefront-backend/models"
	"github.com/hadiheib99/storefront-backend/routes"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	// Init DB
	db := initDatabase(cfg, logger)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderProduct{},
	); err != nil {
		logger.Fatal().Err(err).Msg("AutoMigrate failed")
	}

	// Gin setup
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	// Service banner
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Storefront API is running",
			"endpoints": gin.H{
				"users":    "/users",
				"products": "/products",
				"orders":   "/orders",
			},
		})
	})

	// Setup routes
	routes.SetupRoutes(r, db, cfg)

	// Start server
	logger.Info().Str("port", cfg.Port).Str("database", cfg.DatabaseName()).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("failed to start server")
	}
}

// initDatabase sets up the GORM DB connection against the dev or test
// database depending on ENV.
func initDatabase(cfg *config.Config, logger zerolog.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("DB connection failed")
	}
	return db
}
