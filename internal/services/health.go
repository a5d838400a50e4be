package services

import (
	"fmt"
	"log"
	"strconv"

	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/config"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/models"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/storage"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Storage      string            `json:"storage"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthCheck builds the configured storage engine, loads it and reports
// whether the backing store is reachable, with per-kind object counts.
func HealthCheck(cfg *config.Config) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Storage: cfg.StorageType,
		Details: make(map[string]string),
	}

	eng, err := storage.NewEngine(cfg)
	if err != nil {
		result.Status = "unhealthy"
		result.ErrorMessage = fmt.Sprintf("Storage engine error: %v", err)
		log.Printf("Health check failed - engine construction: %v", err)
		return result
	}
	defer eng.Close()

	if err := eng.Reload(); err != nil {
		result.Status = "unhealthy"
		result.ErrorMessage = fmt.Sprintf("Storage reload failed: %v", err)
		log.Printf("Health check failed - reload: %v", err)
		return result
	}

	for _, kind := range models.Kinds {
		result.Details[models.Plurals[kind]] = strconv.Itoa(eng.Count(kind))
	}
	result.Details["objects"] = strconv.Itoa(eng.Count(""))

	log.Println("Health check passed - storage reachable")
	return result
}
