package handlers

import (
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/models"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/storage"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/types"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// PlaceHandler handles Place routes
type PlaceHandler struct {
	Store storage.Engine
}

// ListByCity handles GET /api/v1/cities/:city_id/places
// @Summary List the places of a city
// @Tags Places
// @Produce json
// @Param city_id path string true "City ID"
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /cities/{city_id}/places [get]
func (h *PlaceHandler) ListByCity(c *fiber.Ctx) error {
	city := h.Store.Get(models.KindCity, c.Params("city_id"))
	if city == nil {
		return utils.NotFound(c)
	}
	return c.JSON(serialize(storage.CityPlaces(h.Store, city.GetID())))
}

// Get handles GET /api/v1/places/:place_id
// @Summary Get a place by id
// @Tags Places
// @Produce json
// @Param place_id path string true "Place ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /places/{place_id} [get]
func (h *PlaceHandler) Get(c *fiber.Ctx) error {
	place := h.Store.Get(models.KindPlace, c.Params("place_id"))
	if place == nil {
		return utils.NotFound(c)
	}
	return c.JSON(place.ToMap(true))
}

// Create handles POST /api/v1/cities/:city_id/places
// The city is resolved before the body; the referenced user must also
// exist, surfacing a dangling user_id as 404 like any other missing
// entity.
// @Summary Create a place under a city
// @Tags Places
// @Accept json
// @Produce json
// @Param city_id path string true "City ID"
// @Param body body object true "Place attributes"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cities/{city_id}/places [post]
func (h *PlaceHandler) Create(c *fiber.Ctx) error {
	city := h.Store.Get(models.KindCity, c.Params("city_id"))
	if city == nil {
		return utils.NotFound(c)
	}

	attrs, ok := parseBody(c)
	if !ok {
		return utils.NotJSON(c)
	}
	if _, ok := attrs["user_id"]; !ok {
		return utils.MissingField(c, "user_id")
	}
	if _, ok := attrs["name"]; !ok {
		return utils.MissingField(c, "name")
	}
	attrs["city_id"] = city.GetID()

	userID, _ := attrs["user_id"].(string)
	if h.Store.Get(models.KindUser, userID) == nil {
		return utils.NotFound(c)
	}

	place := models.New(models.KindPlace, attrs)
	h.Store.New(place)
	if err := h.Store.Save(); err != nil {
		return &types.StorageError{Op: "save place", Err: err}
	}

	return c.Status(fiber.StatusCreated).JSON(place.ToMap(true))
}

// Update handles PUT /api/v1/places/:place_id
// @Summary Update a place
// @Tags Places
// @Accept json
// @Produce json
// @Param place_id path string true "Place ID"
// @Param body body object true "Mutable place attributes"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /places/{place_id} [put]
func (h *PlaceHandler) Update(c *fiber.Ctx) error {
	attrs, ok := parseBody(c)
	if !ok {
		return utils.NotJSON(c)
	}

	place := h.Store.Get(models.KindPlace, c.Params("place_id"))
	if place == nil {
		return utils.NotFound(c)
	}

	models.Apply(place, attrs)
	if err := h.Store.Save(); err != nil {
		return &types.StorageError{Op: "save place", Err: err}
	}

	return c.JSON(place.ToMap(true))
}

// Delete handles DELETE /api/v1/places/:place_id
// @Summary Delete a place
// @Tags Places
// @Produce json
// @Param place_id path string true "Place ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /places/{place_id} [delete]
func (h *PlaceHandler) Delete(c *fiber.Ctx) error {
	place := h.Store.Get(models.KindPlace, c.Params("place_id"))
	if place == nil {
		return utils.NotFound(c)
	}

	if err := h.Store.Delete(place); err != nil {
		return &types.StorageError{Op: "delete place", Err: err}
	}
	if err := h.Store.Save(); err != nil {
		return &types.StorageError{Op: "save place", Err: err}
	}

	return c.JSON(fiber.Map{})
}

// Search handles POST /api/v1/places_search
// Filters places by state, city and amenity id lists. State and city
// filters union; the amenity filter then keeps only places linked to
// every requested amenity. An empty filter returns all places.
// @Summary Search places by state, city and amenity ids
// @Tags Places
// @Accept json
// @Produce json
// @Param body body object true "Search filters"
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /places_search [post]
func (h *PlaceHandler) Search(c *fiber.Ctx) error {
	var body struct {
		States    types.FlexList[string] `json:"states"`
		Cities    types.FlexList[string] `json:"cities"`
		Amenities types.FlexList[string] `json:"amenities"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.NotJSON(c)
	}

	if len(body.States) == 0 && len(body.Cities) == 0 && len(body.Amenities) == 0 {
		return c.JSON(serializeAll(h.Store.All(models.KindPlace)))
	}

	selected := make(map[string]*models.Place)

	for _, stateID := range body.States.Slice() {
		if h.Store.Get(models.KindState, stateID) == nil {
			continue
		}
		for _, city := range storage.StateCities(h.Store, stateID) {
			for _, place := range storage.CityPlaces(h.Store, city.ID) {
				selected[place.ID] = place
			}
		}
	}

	for _, cityID := range body.Cities.Slice() {
		if h.Store.Get(models.KindCity, cityID) == nil {
			continue
		}
		for _, place := range storage.CityPlaces(h.Store, cityID) {
			selected[place.ID] = place
		}
	}

	if len(body.Amenities) > 0 {
		// Amenity-only searches start from every place.
		if len(body.States) == 0 && len(body.Cities) == 0 {
			for _, e := range h.Store.All(models.KindPlace) {
				p := e.(*models.Place)
				selected[p.ID] = p
			}
		}
		for id, place := range selected {
			for _, amenityID := range body.Amenities.Slice() {
				if !place.HasAmenity(amenityID) {
					delete(selected, id)
					break
				}
			}
		}
	}

	out := make([]map[string]interface{}, 0, len(selected))
	for _, place := range selected {
		out = append(out, place.ToMap(true))
	}
	return c.JSON(out)
}
