package storage

import (
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/models"
)

// One-to-many relations are views, not stored collections: each call scans
// the resident entities of the child kind and filters on the foreign key,
// so the result always reflects the identity map at the time of the call.

// StateCities returns every resident City belonging to the state.
func StateCities(eng Engine, stateID string) []*models.City {
	out := make([]*models.City, 0)
	for _, e := range eng.All(models.KindCity) {
		if c := e.(*models.City); c.StateID == stateID {
			out = append(out, c)
		}
	}
	return out
}

// CityPlaces returns every resident Place located in the city.
func CityPlaces(eng Engine, cityID string) []*models.Place {
	out := make([]*models.Place, 0)
	for _, e := range eng.All(models.KindPlace) {
		if p := e.(*models.Place); p.CityID == cityID {
			out = append(out, p)
		}
	}
	return out
}

// UserPlaces returns every resident Place owned by the user.
func UserPlaces(eng Engine, userID string) []*models.Place {
	out := make([]*models.Place, 0)
	for _, e := range eng.All(models.KindPlace) {
		if p := e.(*models.Place); p.UserID == userID {
			out = append(out, p)
		}
	}
	return out
}

// UserReviews returns every resident Review written by the user.
func UserReviews(eng Engine, userID string) []*models.Review {
	out := make([]*models.Review, 0)
	for _, e := range eng.All(models.KindReview) {
		if r := e.(*models.Review); r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}

// PlaceReviews returns every resident Review of the place.
func PlaceReviews(eng Engine, placeID string) []*models.Review {
	out := make([]*models.Review, 0)
	for _, e := range eng.All(models.KindReview) {
		if r := e.(*models.Review); r.PlaceID == placeID {
			out = append(out, r)
		}
	}
	return out
}

// PlaceAmenities resolves the place's link list to Amenity instances,
// skipping dangling ids.
func PlaceAmenities(eng Engine, p *models.Place) []*models.Amenity {
	out := make([]*models.Amenity, 0, len(p.AmenityIDs))
	for _, id := range p.AmenityIDs {
		if e := eng.Get(models.KindAmenity, id); e != nil {
			out = append(out, e.(*models.Amenity))
		}
	}
	return out
}
