package handlers

import (
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/models"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/storage"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/types"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// PlaceAmenityHandler handles the Place-Amenity association routes
type PlaceAmenityHandler struct {
	Store storage.Engine
}

// List handles GET /api/v1/places/:place_id/amenities
// @Summary List the amenities linked to a place
// @Tags PlaceAmenities
// @Produce json
// @Param place_id path string true "Place ID"
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /places/{place_id}/amenities [get]
func (h *PlaceAmenityHandler) List(c *fiber.Ctx) error {
	place, ok := h.Store.Get(models.KindPlace, c.Params("place_id")).(*models.Place)
	if !ok {
		return utils.NotFound(c)
	}
	return c.JSON(serialize(storage.PlaceAmenities(h.Store, place)))
}

// Link handles POST /api/v1/places/:place_id/amenities/:amenity_id
// Linking an already linked amenity answers 200 with the amenity and
// leaves exactly one link in place.
// @Summary Link an amenity to a place
// @Tags PlaceAmenities
// @Produce json
// @Param place_id path string true "Place ID"
// @Param amenity_id path string true "Amenity ID"
// @Success 200 {object} map[string]interface{}
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /places/{place_id}/amenities/{amenity_id} [post]
func (h *PlaceAmenityHandler) Link(c *fiber.Ctx) error {
	place, ok := h.Store.Get(models.KindPlace, c.Params("place_id")).(*models.Place)
	if !ok {
		return utils.NotFound(c)
	}
	amenity := h.Store.Get(models.KindAmenity, c.Params("amenity_id"))
	if amenity == nil {
		return utils.NotFound(c)
	}

	if !place.AddAmenity(amenity.GetID()) {
		return c.JSON(amenity.ToMap(true))
	}
	if err := h.Store.Save(); err != nil {
		return &types.StorageError{Op: "save place amenity", Err: err}
	}

	return c.Status(fiber.StatusCreated).JSON(amenity.ToMap(true))
}

// Unlink handles DELETE /api/v1/places/:place_id/amenities/:amenity_id
// Removing a link that does not exist is 404, not an engine error.
// @Summary Unlink an amenity from a place
// @Tags PlaceAmenities
// @Produce json
// @Param place_id path string true "Place ID"
// @Param amenity_id path string true "Amenity ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /places/{place_id}/amenities/{amenity_id} [delete]
func (h *PlaceAmenityHandler) Unlink(c *fiber.Ctx) error {
	place, ok := h.Store.Get(models.KindPlace, c.Params("place_id")).(*models.Place)
	if !ok {
		return utils.NotFound(c)
	}
	amenity := h.Store.Get(models.KindAmenity, c.Params("amenity_id"))
	if amenity == nil {
		return utils.NotFound(c)
	}

	if !place.RemoveAmenity(amenity.GetID()) {
		return utils.NotFound(c)
	}
	if err := h.Store.Save(); err != nil {
		return &types.StorageError{Op: "save place amenity", Err: err}
	}

	return c.JSON(fiber.Map{})
}
