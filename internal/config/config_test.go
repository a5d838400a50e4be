package config_test

import (
	"testing"

	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/config"
)

// clearEnv blanks every config variable so defaults apply
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "STORAGE_TYPE", "FILE_PATH",
		"DB_TYPE", "DB_HOST", "DB_PORT", "DB_DATABASE",
		"DB_USER", "DB_PASSWORD", "DB_CONNECTION_LIMIT",
	} {
		t.Setenv(key, "")
	}
}

// TestLoadDefaults tests the default file-strategy configuration
func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load defaults: %v", err)
	}
	if cfg.Port != "5000" {
		t.Errorf("Expected port 5000, got %s", cfg.Port)
	}
	if cfg.StorageType != config.StorageFile {
		t.Errorf("Expected file storage, got %s", cfg.StorageType)
	}
	if cfg.FilePath != "file.json" {
		t.Errorf("Expected file.json, got %s", cfg.FilePath)
	}
	if cfg.DBConnectionLimit != 5 {
		t.Errorf("Expected connection limit 5, got %d", cfg.DBConnectionLimit)
	}
}

// TestLoadDBValidation tests the db-strategy required fields
func TestLoadDBValidation(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_TYPE", "db")

	if _, err := config.Load(); err == nil {
		t.Error("Expected an error without DB_DATABASE")
	}

	t.Setenv("DB_DATABASE", "hbnb")
	if _, err := config.Load(); err == nil {
		t.Error("Expected an error without DB_USER")
	}

	t.Setenv("DB_USER", "hbnb")
	if _, err := config.Load(); err != nil {
		t.Errorf("Expected a valid db config, got %v", err)
	}
}

// TestLoadSQLiteNoUser tests that SQLite skips the user requirement
func TestLoadSQLiteNoUser(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_TYPE", "db")
	t.Setenv("DB_TYPE", "sqlite")
	t.Setenv("DB_DATABASE", "hbnb.db")

	if _, err := config.Load(); err != nil {
		t.Errorf("Expected sqlite without a user to load, got %v", err)
	}
}

// TestLoadUnknownStorage tests the storage type check
func TestLoadUnknownStorage(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE_TYPE", "tape")

	if _, err := config.Load(); err == nil {
		t.Error("Expected an error for an unknown storage type")
	}
}

// TestLoadBadConnectionLimit tests that a junk limit falls back
func TestLoadBadConnectionLimit(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_CONNECTION_LIMIT", "lots")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load: %v", err)
	}
	if cfg.DBConnectionLimit != 5 {
		t.Errorf("Expected fallback limit 5, got %d", cfg.DBConnectionLimit)
	}
}
