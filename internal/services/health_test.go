package services_test

import (
	"path/filepath"
	"testing"

	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/config"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/services"
)

// TestHealthCheckFileStorage tests a healthy file-backed check
func TestHealthCheckFileStorage(t *testing.T) {
	cfg := &config.Config{
		StorageType: config.StorageFile,
		FilePath:    filepath.Join(t.TempDir(), "file.json"),
	}

	result := services.HealthCheck(cfg)
	if result.Status != "healthy" {
		t.Fatalf("Expected healthy, got %s: %s", result.Status, result.ErrorMessage)
	}
	if result.Storage != config.StorageFile {
		t.Errorf("Expected file storage reported, got %s", result.Storage)
	}
	if result.Details["objects"] != "0" {
		t.Errorf("Expected 0 objects, got %s", result.Details["objects"])
	}
	if result.Details["states"] != "0" {
		t.Errorf("Expected 0 states, got %s", result.Details["states"])
	}
}

// TestHealthCheckBadEngine tests that an unbuildable engine is unhealthy
func TestHealthCheckBadEngine(t *testing.T) {
	cfg := &config.Config{
		StorageType: config.StorageDB,
		DBType:      "oracle",
		DBDatabase:  "hbnb",
	}

	result := services.HealthCheck(cfg)
	if result.Status != "unhealthy" {
		t.Fatalf("Expected unhealthy, got %s", result.Status)
	}
	if result.ErrorMessage == "" {
		t.Error("Expected an error message")
	}
}
