package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/config"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/models"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/storage"
)

// sqliteConfig returns a db-strategy config over a throwaway SQLite file
func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		StorageType:       config.StorageDB,
		DBType:            "sqlite",
		DBDatabase:        filepath.Join(t.TempDir(), "test.db"),
		DBConnectionLimit: 5,
	}
}

// openDBStore connects and loads a database store, closing it with the test
func openDBStore(t *testing.T, cfg *config.Config) *storage.DBStore {
	t.Helper()
	s, err := storage.NewDBStore(cfg)
	if err != nil {
		t.Fatalf("Failed to create db store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	if err := s.Reload(); err != nil {
		t.Fatalf("Failed to load db store: %v", err)
	}
	return s
}

// TestDBStoreUnsupportedType tests that an unknown driver is rejected
func TestDBStoreUnsupportedType(t *testing.T) {
	_, err := storage.NewDBStore(&config.Config{DBType: "oracle"})
	if err == nil {
		t.Fatal("Expected an error for an unsupported database type")
	}
}

// TestDBStoreSaveReloadRoundTrip tests persistence across connections
func TestDBStoreSaveReloadRoundTrip(t *testing.T) {
	cfg := sqliteConfig(t)
	s := openDBStore(t, cfg)

	state := models.New(models.KindState, map[string]interface{}{"name": "Texas"})
	city := models.New(models.KindCity, map[string]interface{}{
		"name":     "Austin",
		"state_id": state.GetID(),
	})
	s.New(state)
	s.New(city)
	if err := s.Save(); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	fresh := openDBStore(t, cfg)
	if n := fresh.Count(""); n != 2 {
		t.Fatalf("Expected 2 objects after reload, got %d", n)
	}
	got, ok := fresh.Get(models.KindCity, city.GetID()).(*models.City)
	if !ok {
		t.Fatal("Expected the city back")
	}
	if got.Name != "Austin" || got.StateID != state.GetID() {
		t.Errorf("Expected Austin in %s, got %q in %q", state.GetID(), got.Name, got.StateID)
	}
}

// TestDBStoreSaveUpserts tests that repeated saves update, not duplicate
func TestDBStoreSaveUpserts(t *testing.T) {
	cfg := sqliteConfig(t)
	s := openDBStore(t, cfg)

	state := models.New(models.KindState, map[string]interface{}{"name": "Texas"})
	s.New(state)
	if err := s.Save(); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	models.Apply(state, map[string]interface{}{"name": "Nevada"})
	if err := s.Save(); err != nil {
		t.Fatalf("Failed to save update: %v", err)
	}

	fresh := openDBStore(t, cfg)
	if n := fresh.Count(models.KindState); n != 1 {
		t.Fatalf("Expected 1 state after upsert, got %d", n)
	}
	got := fresh.Get(models.KindState, state.GetID()).(*models.State)
	if got.Name != "Nevada" {
		t.Errorf("Expected updated name Nevada, got %q", got.Name)
	}
}

// TestDBStoreDelete tests that deleted rows stay gone
func TestDBStoreDelete(t *testing.T) {
	cfg := sqliteConfig(t)
	s := openDBStore(t, cfg)

	state := models.New(models.KindState, map[string]interface{}{"name": "Texas"})
	s.New(state)
	if err := s.Save(); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}
	if err := s.Delete(state); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}
	if err := s.Delete(state); err != nil {
		t.Errorf("Expected repeat delete to be a no-op, got %v", err)
	}

	fresh := openDBStore(t, cfg)
	if got := fresh.Get(models.KindState, state.GetID()); got != nil {
		t.Error("Expected the state gone after reload")
	}
}

// TestDBStoreAmenityLinksPersist tests the place_amenity join table
// round trip
func TestDBStoreAmenityLinksPersist(t *testing.T) {
	cfg := sqliteConfig(t)
	s := openDBStore(t, cfg)

	user := models.New(models.KindUser, map[string]interface{}{
		"email": "a@b.co", "password": "secret",
	})
	amenity := models.New(models.KindAmenity, map[string]interface{}{"name": "Wifi"})
	place := models.New(models.KindPlace, map[string]interface{}{
		"name": "Cabin", "city_id": "city-1", "user_id": user.GetID(),
	}).(*models.Place)
	place.AddAmenity(amenity.GetID())

	for _, e := range []models.Entity{user, amenity, place} {
		s.New(e)
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	fresh := openDBStore(t, cfg)
	got, ok := fresh.Get(models.KindPlace, place.GetID()).(*models.Place)
	if !ok {
		t.Fatal("Expected the place back")
	}
	if !got.HasAmenity(amenity.GetID()) {
		t.Errorf("Expected the link hydrated, got %v", got.AmenityIDs)
	}
}

// TestDBStoreAmenityDeleteClearsLinks tests that deleting an amenity
// drops its join rows and in-memory links
func TestDBStoreAmenityDeleteClearsLinks(t *testing.T) {
	cfg := sqliteConfig(t)
	s := openDBStore(t, cfg)

	amenity := models.New(models.KindAmenity, map[string]interface{}{"name": "Wifi"})
	place := models.New(models.KindPlace, map[string]interface{}{
		"name": "Cabin", "city_id": "city-1", "user_id": "user-1",
	}).(*models.Place)
	place.AddAmenity(amenity.GetID())
	s.New(amenity)
	s.New(place)
	if err := s.Save(); err != nil {
		t.Fatalf("Failed to save: %v", err)
	}

	if err := s.Delete(amenity); err != nil {
		t.Fatalf("Failed to delete amenity: %v", err)
	}
	if place.HasAmenity(amenity.GetID()) {
		t.Error("Expected the resident place scrubbed")
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Failed to save after delete: %v", err)
	}

	fresh := openDBStore(t, cfg)
	got := fresh.Get(models.KindPlace, place.GetID()).(*models.Place)
	if got.HasAmenity(amenity.GetID()) {
		t.Errorf("Expected no hydrated link, got %v", got.AmenityIDs)
	}
}

// TestNewEngineSelection tests the strategy factory
func TestNewEngineSelection(t *testing.T) {
	eng, err := storage.NewEngine(&config.Config{
		StorageType: config.StorageFile,
		FilePath:    filepath.Join(t.TempDir(), "file.json"),
	})
	if err != nil {
		t.Fatalf("Failed to build file engine: %v", err)
	}
	if _, ok := eng.(*storage.FileStore); !ok {
		t.Errorf("Expected a file store, got %T", eng)
	}

	if _, err := storage.NewEngine(&config.Config{StorageType: "tape"}); err == nil {
		t.Error("Expected an error for an unknown storage type")
	}
}
