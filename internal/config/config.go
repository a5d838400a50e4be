package config

import (
	"fmt"
	"os"
	"strconv"
)

// Storage strategy selectors.
const (
	StorageFile = "file"
	StorageDB   = "db"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port string

	// Storage configuration
	StorageType string // file or db
	FilePath    string // snapshot path for the file strategy

	// Database configuration (db strategy only)
	DBType            string // mysql, postgres, sqlite, sqlserver, etc.
	DBHost            string
	DBPort            string
	DBDatabase        string
	DBUser            string
	DBPassword        string
	DBConnectionLimit int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:              getEnv("PORT", "5000"),
		StorageType:       getEnv("STORAGE_TYPE", StorageFile),
		FilePath:          getEnv("FILE_PATH", "file.json"),
		DBType:            getEnv("DB_TYPE", "mysql"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBDatabase:        getEnv("DB_DATABASE", ""),
		DBUser:            getEnv("DB_USER", ""),
		DBPassword:        getEnv("DB_PASSWORD", ""),
		DBConnectionLimit: getEnvAsInt("DB_CONNECTION_LIMIT", 5),
	}

	// Validate required fields
	switch cfg.StorageType {
	case StorageFile:
		if cfg.FilePath == "" {
			return nil, fmt.Errorf("FILE_PATH is required")
		}
	case StorageDB:
		if cfg.DBDatabase == "" {
			return nil, fmt.Errorf("DB_DATABASE is required")
		}
		if cfg.DBType != "sqlite" && cfg.DBUser == "" {
			return nil, fmt.Errorf("DB_USER is required")
		}
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.StorageType)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
