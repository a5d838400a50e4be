package handlers

import (
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/storage"
	"github.com/gofiber/fiber/v2"
)

// Register mounts every API route on router against one storage engine.
func Register(router fiber.Router, eng storage.Engine) {
	index := &IndexHandler{Store: eng}
	states := &StateHandler{Store: eng}
	cities := &CityHandler{Store: eng}
	amenities := &AmenityHandler{Store: eng}
	users := &UserHandler{Store: eng}
	places := &PlaceHandler{Store: eng}
	reviews := &ReviewHandler{Store: eng}
	placeAmenities := &PlaceAmenityHandler{Store: eng}

	router.Get("/status", index.Status)
	router.Get("/stats", index.Stats)

	router.Get("/states", states.List)
	router.Post("/states", states.Create)
	router.Get("/states/:state_id", states.Get)
	router.Put("/states/:state_id", states.Update)
	router.Delete("/states/:state_id", states.Delete)

	router.Get("/states/:state_id/cities", cities.ListByState)
	router.Post("/states/:state_id/cities", cities.Create)
	router.Get("/cities/:city_id", cities.Get)
	router.Put("/cities/:city_id", cities.Update)
	router.Delete("/cities/:city_id", cities.Delete)

	router.Get("/amenities", amenities.List)
	router.Post("/amenities", amenities.Create)
	router.Get("/amenities/:amenity_id", amenities.Get)
	router.Put("/amenities/:amenity_id", amenities.Update)
	router.Delete("/amenities/:amenity_id", amenities.Delete)

	router.Get("/users", users.List)
	router.Post("/users", users.Create)
	router.Get("/users/:user_id", users.Get)
	router.Put("/users/:user_id", users.Update)
	router.Delete("/users/:user_id", users.Delete)

	router.Get("/cities/:city_id/places", places.ListByCity)
	router.Post("/cities/:city_id/places", places.Create)
	router.Get("/places/:place_id", places.Get)
	router.Put("/places/:place_id", places.Update)
	router.Delete("/places/:place_id", places.Delete)
	router.Post("/places_search", places.Search)

	router.Get("/places/:place_id/reviews", reviews.ListByPlace)
	router.Post("/places/:place_id/reviews", reviews.Create)
	router.Get("/reviews/:review_id", reviews.Get)
	router.Put("/reviews/:review_id", reviews.Update)
	router.Delete("/reviews/:review_id", reviews.Delete)

	router.Get("/places/:place_id/amenities", placeAmenities.List)
	router.Post("/places/:place_id/amenities/:amenity_id", placeAmenities.Link)
	router.Delete("/places/:place_id/amenities/:amenity_id", placeAmenities.Unlink)
}
