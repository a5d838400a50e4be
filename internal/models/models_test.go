package models_test

import (
	"testing"
	"time"

	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/models"
	"github.com/google/uuid"
)

// TestNewBaseIdentity tests that fresh entities get distinct valid UUIDs
// and matching creation timestamps
func TestNewBaseIdentity(t *testing.T) {
	a := models.New(models.KindState, map[string]interface{}{"name": "California"})
	b := models.New(models.KindState, map[string]interface{}{"name": "Nevada"})

	if a.GetID() == b.GetID() {
		t.Errorf("Expected distinct ids, both got %s", a.GetID())
	}
	for _, e := range []models.Entity{a, b} {
		if _, err := uuid.Parse(e.GetID()); err != nil {
			t.Errorf("Expected valid UUID, got %q: %v", e.GetID(), err)
		}
	}

	m := a.ToMap(true)
	if m["created_at"] != m["updated_at"] {
		t.Errorf("Expected matching timestamps on creation, got %v and %v",
			m["created_at"], m["updated_at"])
	}
}

// TestToMapTimestampFormat tests the serialized timestamp wire format
func TestToMapTimestampFormat(t *testing.T) {
	state := models.New(models.KindState, map[string]interface{}{"name": "Oregon"})
	m := state.ToMap(true)

	for _, key := range []string{"created_at", "updated_at"} {
		raw, ok := m[key].(string)
		if !ok {
			t.Fatalf("Expected string %s, got %T", key, m[key])
		}
		if _, err := time.Parse(models.TimeFormat, raw); err != nil {
			t.Errorf("Expected %s to match the wire format, got %q: %v", key, raw, err)
		}
	}

	if m["__class__"] != "State" {
		t.Errorf("Expected __class__ State, got %v", m["__class__"])
	}
}

// TestNewRoundTrip tests that an entity rebuilt from its serialized form
// preserves identity, timestamps and attributes
func TestNewRoundTrip(t *testing.T) {
	orig := models.New(models.KindCity, map[string]interface{}{
		"name":     "San Francisco",
		"state_id": "state-1",
	}).(*models.City)

	rebuilt, ok := models.New(models.KindCity, orig.ToMap(false)).(*models.City)
	if !ok {
		t.Fatal("Expected a City from the round trip")
	}

	if rebuilt.ID != orig.ID {
		t.Errorf("Expected id %s, got %s", orig.ID, rebuilt.ID)
	}
	if rebuilt.Name != orig.Name {
		t.Errorf("Expected name %s, got %s", orig.Name, rebuilt.Name)
	}
	if rebuilt.StateID != orig.StateID {
		t.Errorf("Expected state_id %s, got %s", orig.StateID, rebuilt.StateID)
	}
	if !rebuilt.CreatedAt.Equal(orig.CreatedAt.Truncate(time.Microsecond)) {
		t.Errorf("Expected created_at %v, got %v", orig.CreatedAt, rebuilt.CreatedAt)
	}
}

// TestNewUnknownKind tests that an unrecognized kind yields nil
func TestNewUnknownKind(t *testing.T) {
	if e := models.New("Widget", map[string]interface{}{"name": "x"}); e != nil {
		t.Errorf("Expected nil for unknown kind, got %T", e)
	}
}

// TestNewNumericCoercion tests that JSON float64 numbers land in int fields
func TestNewNumericCoercion(t *testing.T) {
	place := models.New(models.KindPlace, map[string]interface{}{
		"name":           "Loft",
		"city_id":        "city-1",
		"user_id":        "user-1",
		"number_rooms":   float64(3),
		"price_by_night": float64(120),
		"latitude":       37.77,
	}).(*models.Place)

	if place.NumberRooms != 3 {
		t.Errorf("Expected 3 rooms, got %d", place.NumberRooms)
	}
	if place.PriceByNight != 120 {
		t.Errorf("Expected price 120, got %d", place.PriceByNight)
	}
	if place.Latitude != 37.77 {
		t.Errorf("Expected latitude 37.77, got %f", place.Latitude)
	}
}

// TestUserPasswordMasking tests that the password only appears in the
// unmasked persistence form
func TestUserPasswordMasking(t *testing.T) {
	user := models.New(models.KindUser, map[string]interface{}{
		"email":    "a@b.co",
		"password": "secret",
	})

	if _, ok := user.ToMap(true)["password"]; ok {
		t.Error("Expected password absent from the masked form")
	}
	if pw := user.ToMap(false)["password"]; pw != "secret" {
		t.Errorf("Expected password in the unmasked form, got %v", pw)
	}
}

// TestApplyAllowList tests that updates only touch mutable fields and
// refresh updated_at
func TestApplyAllowList(t *testing.T) {
	user := models.New(models.KindUser, map[string]interface{}{
		"email":    "a@b.co",
		"password": "secret",
	}).(*models.User)

	origID := user.ID
	origCreated := user.CreatedAt
	before := user.UpdatedAt

	time.Sleep(time.Millisecond)
	models.Apply(user, map[string]interface{}{
		"id":         "forged",
		"email":      "evil@b.co",
		"created_at": "2000-01-01T00:00:00.000000",
		"first_name": "Ada",
	})

	if user.ID != origID {
		t.Errorf("Expected id unchanged, got %s", user.ID)
	}
	if user.Email != "a@b.co" {
		t.Errorf("Expected email unchanged, got %s", user.Email)
	}
	if !user.CreatedAt.Equal(origCreated) {
		t.Errorf("Expected created_at unchanged, got %v", user.CreatedAt)
	}
	if user.FirstName != "Ada" {
		t.Errorf("Expected first_name applied, got %q", user.FirstName)
	}
	if !user.UpdatedAt.After(before) {
		t.Errorf("Expected updated_at refreshed, got %v", user.UpdatedAt)
	}
}

// TestPlaceAmenityLinks tests the in-memory link list operations
func TestPlaceAmenityLinks(t *testing.T) {
	place := models.New(models.KindPlace, map[string]interface{}{
		"name":    "Cabin",
		"city_id": "city-1",
		"user_id": "user-1",
	}).(*models.Place)

	if !place.AddAmenity("wifi") {
		t.Error("Expected first link to report added")
	}
	if place.AddAmenity("wifi") {
		t.Error("Expected duplicate link to report not added")
	}
	if !place.HasAmenity("wifi") {
		t.Error("Expected wifi linked")
	}
	if len(place.AmenityIDs) != 1 {
		t.Errorf("Expected exactly one link, got %d", len(place.AmenityIDs))
	}

	if !place.RemoveAmenity("wifi") {
		t.Error("Expected unlink to report removed")
	}
	if place.RemoveAmenity("wifi") {
		t.Error("Expected second unlink to report absent")
	}
	if place.HasAmenity("wifi") {
		t.Error("Expected wifi unlinked")
	}
}

// TestPlaceToMapCopiesAmenityIDs tests that serialization does not alias
// the live link list
func TestPlaceToMapCopiesAmenityIDs(t *testing.T) {
	place := models.New(models.KindPlace, map[string]interface{}{
		"name":    "Cabin",
		"city_id": "city-1",
		"user_id": "user-1",
	}).(*models.Place)
	place.AddAmenity("wifi")

	m := place.ToMap(false)
	ids, ok := m["amenity_ids"].([]string)
	if !ok {
		t.Fatalf("Expected amenity_ids slice, got %T", m["amenity_ids"])
	}
	ids[0] = "mutated"

	if place.AmenityIDs[0] != "wifi" {
		t.Error("Expected the serialized link list to be a copy")
	}
}
