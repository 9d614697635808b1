package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds everything the service reads from the environment. It is
// built once in main and never mutated afterwards.
type Config struct {
	Env        string
	Port       string
	DBHost     string
	DBPort     string
	DBName     string
	DBTestName string
	DBUser     string
	DBPassword string
	JWTSecret  string
	Pepper     string
	BcryptCost int
	TokenTTL   time.Duration
}

// Load reads the configuration from the environment. godotenv is expected
// to have populated the process env already (main does that).
//
// The service must not run without a signing secret or a password pepper:
// missing either is a startup error, not a warning.
func Load() (*Config, error) {
	cfg := &Config{
		Env:        getEnv("ENV", "dev"),
		Port:       getEnv("PORT", "3000"),
		DBHost:     getEnv("POSTGRES_HOST", "localhost"),
		DBPort:     getEnv("POSTGRES_PORT", "5432"),
		DBName:     getEnv("POSTGRES_DB", "storefront"),
		DBTestName: getEnv("POSTGRES_DB_TEST", "storefront_test"),
		DBUser:     getEnv("POSTGRES_USER", "postgres"),
		DBPassword: os.Getenv("POSTGRES_PASSWORD"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		Pepper:     os.Getenv("BCRYPT_PASSWORD"),
		BcryptCost: getEnvInt("SALT_ROUNDS", 10),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	if cfg.Pepper == "" {
		return nil, errors.New("BCRYPT_PASSWORD (password pepper) is not set")
	}

	ttlStr := getEnv("TOKEN_TTL", "1h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", ttlStr, err)
	}
	cfg.TokenTTL = ttl

	return cfg, nil
}

// DatabaseName returns the test database when ENV=test, the dev one
// otherwise.
func (c *Config) DatabaseName() string {
	if c.Env == "test" {
		return c.DBTestName
	}
	return c.DBName
}

// DSN builds the Postgres connection string for gorm.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DatabaseName(),
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
