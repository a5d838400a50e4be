package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/models"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/storage"
)

// TestStateCitiesView tests the state to cities relation
func TestStateCitiesView(t *testing.T) {
	s := storage.NewFileStore(filepath.Join(t.TempDir(), "file.json"))
	if err := s.Reload(); err != nil {
		t.Fatalf("Failed to load store: %v", err)
	}

	state := models.New(models.KindState, map[string]interface{}{"name": "Texas"})
	other := models.New(models.KindState, map[string]interface{}{"name": "Utah"})
	austin := models.New(models.KindCity, map[string]interface{}{
		"name": "Austin", "state_id": state.GetID(),
	})
	provo := models.New(models.KindCity, map[string]interface{}{
		"name": "Provo", "state_id": other.GetID(),
	})
	for _, e := range []models.Entity{state, other, austin, provo} {
		s.New(e)
	}

	cities := storage.StateCities(s, state.GetID())
	if len(cities) != 1 || cities[0].GetID() != austin.GetID() {
		t.Errorf("Expected only Austin under Texas, got %d cities", len(cities))
	}
}

// TestViewReflectsDeletes tests that relations are live views, not
// stored collections
func TestViewReflectsDeletes(t *testing.T) {
	s := storage.NewFileStore(filepath.Join(t.TempDir(), "file.json"))
	if err := s.Reload(); err != nil {
		t.Fatalf("Failed to load store: %v", err)
	}

	place := models.New(models.KindPlace, map[string]interface{}{
		"name": "Cabin", "city_id": "city-1", "user_id": "user-1",
	})
	review := models.New(models.KindReview, map[string]interface{}{
		"text": "Great stay", "place_id": place.GetID(), "user_id": "user-1",
	})
	s.New(place)
	s.New(review)

	if n := len(storage.PlaceReviews(s, place.GetID())); n != 1 {
		t.Fatalf("Expected 1 review, got %d", n)
	}
	if err := s.Delete(review); err != nil {
		t.Fatalf("Failed to delete review: %v", err)
	}
	if n := len(storage.PlaceReviews(s, place.GetID())); n != 0 {
		t.Errorf("Expected the view to reflect the delete, got %d reviews", n)
	}
}

// TestPlaceAmenitiesSkipsDangling tests that dangling link ids resolve
// to nothing instead of failing
func TestPlaceAmenitiesSkipsDangling(t *testing.T) {
	s := storage.NewFileStore(filepath.Join(t.TempDir(), "file.json"))
	if err := s.Reload(); err != nil {
		t.Fatalf("Failed to load store: %v", err)
	}

	amenity := models.New(models.KindAmenity, map[string]interface{}{"name": "Wifi"})
	s.New(amenity)

	place := models.New(models.KindPlace, map[string]interface{}{
		"name": "Cabin", "city_id": "city-1", "user_id": "user-1",
	}).(*models.Place)
	place.AddAmenity(amenity.GetID())
	place.AddAmenity("gone")
	s.New(place)

	resolved := storage.PlaceAmenities(s, place)
	if len(resolved) != 1 || resolved[0].GetID() != amenity.GetID() {
		t.Errorf("Expected only the resident amenity, got %d", len(resolved))
	}
}
