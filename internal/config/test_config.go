package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadTestConfig loads the configuration from the .env file or environment variables for integration tests.
// If the .env file doesn't exist or TEST_DB_* variables are not set, it returns a Config with empty
// database values, which lets tests fall back to a default DSN or skip.
func LoadTestConfig() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist - it's optional)
	_ = godotenv.Load("./../../.env")
	_ = godotenv.Load()

	cfg := &Config{}

	// Session configuration always has a test fallback
	cfg.Session.Secret = os.Getenv("TEST_SESSION_SECRET")
	if cfg.Session.Secret == "" {
		cfg.Session.Secret = "integration-test-secret"
	}

	sessionMaxAgeStr := os.Getenv("TEST_SESSION_MAX_AGE")
	if sessionMaxAgeStr == "" {
		sessionMaxAgeStr = "720h" // 30 days
	}
	sessionMaxAge, err := time.ParseDuration(sessionMaxAgeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TEST_SESSION_MAX_AGE: %w", err)
	}
	cfg.Session.MaxAge = sessionMaxAge

	dbHost := os.Getenv("TEST_DB_HOST")
	if dbHost == "" {
		// Return config without database values to allow fallback DSN in tests
		return cfg, nil
	}
	cfg.Database.Host = dbHost

	dbPortStr := os.Getenv("TEST_DB_PORT")
	if dbPortStr == "" {
		return cfg, nil
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TEST_DB_PORT: %w", err)
	}
	cfg.Database.Port = dbPort

	dbUser := os.Getenv("TEST_DB_USER")
	if dbUser == "" {
		return cfg, nil
	}
	cfg.Database.User = dbUser

	dbPassword := os.Getenv("TEST_DB_PASSWORD")
	if dbPassword == "" {
		return cfg, nil
	}
	cfg.Database.Password = dbPassword

	dbName := os.Getenv("TEST_DB_NAME")
	if dbName == "" {
		return cfg, nil
	}
	cfg.Database.DBName = dbName

	return cfg, nil
}
