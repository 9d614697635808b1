package stores

import (
	"log"
	"os"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/hadiheib99/storefront-backend/config"
	"github.com/hadiheib99/storefront-backend/models"
)

var (
	testDB  *gorm.DB
	testCfg = &config.Config{
		JWTSecret:  "test-secret",
		Pepper:     "test-pepper",
		BcryptCost: bcrypt.MinCost,
		TokenTTL:   time.Hour,
	}
)

// TestMain connects to the test database named by the POSTGRES_* variables.
// When POSTGRES_HOST is unset the DB-backed tests skip themselves.
func TestMain(m *testing.M) {
	if host := os.Getenv("POSTGRES_HOST"); host != "" {
		cfg := &config.Config{
			Env:        "test",
			DBHost:     host,
			DBPort:     getenv("POSTGRES_PORT", "5432"),
			DBTestName: getenv("POSTGRES_DB_TEST", "storefront_test"),
			DBUser:     getenv("POSTGRES_USER", "postgres"),
			DBPassword: os.Getenv("POSTGRES_PASSWORD"),
		}

		db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			log.Fatalf("failed to connect to test database: %v", err)
		}
		if err := db.AutoMigrate(
			&models.User{},
			&models.Product{},
			&models.Order{},
			&models.OrderProduct{},
		); err != nil {
			log.Fatalf("failed to migrate test database: %v", err)
		}
		testDB = db
	}

	os.Exit(m.Run())
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func skipWithoutDB(t *testing.T) {
	t.Helper()
	if testDB == nil {
		t.Skip("database not configured, skipping")
	}
}
