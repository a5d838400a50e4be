package handlers

import (
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/models"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/storage"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/types"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// AmenityHandler handles Amenity routes
type AmenityHandler struct {
	Store storage.Engine
}

// List handles GET /api/v1/amenities
// @Summary List all amenities
// @Tags Amenities
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /amenities [get]
func (h *AmenityHandler) List(c *fiber.Ctx) error {
	return c.JSON(serializeAll(h.Store.All(models.KindAmenity)))
}

// Get handles GET /api/v1/amenities/:amenity_id
// @Summary Get an amenity by id
// @Tags Amenities
// @Produce json
// @Param amenity_id path string true "Amenity ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /amenities/{amenity_id} [get]
func (h *AmenityHandler) Get(c *fiber.Ctx) error {
	amenity := h.Store.Get(models.KindAmenity, c.Params("amenity_id"))
	if amenity == nil {
		return utils.NotFound(c)
	}
	return c.JSON(amenity.ToMap(true))
}

// Create handles POST /api/v1/amenities
// @Summary Create an amenity
// @Tags Amenities
// @Accept json
// @Produce json
// @Param body body object true "Amenity attributes"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /amenities [post]
func (h *AmenityHandler) Create(c *fiber.Ctx) error {
	attrs, ok := parseBody(c)
	if !ok {
		return utils.NotJSON(c)
	}
	if _, ok := attrs["name"]; !ok {
		return utils.MissingField(c, "name")
	}

	amenity := models.New(models.KindAmenity, attrs)
	h.Store.New(amenity)
	if err := h.Store.Save(); err != nil {
		return &types.StorageError{Op: "save amenity", Err: err}
	}

	return c.Status(fiber.StatusCreated).JSON(amenity.ToMap(true))
}

// Update handles PUT /api/v1/amenities/:amenity_id
// @Summary Update an amenity
// @Tags Amenities
// @Accept json
// @Produce json
// @Param amenity_id path string true "Amenity ID"
// @Param body body object true "Mutable amenity attributes"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /amenities/{amenity_id} [put]
func (h *AmenityHandler) Update(c *fiber.Ctx) error {
	attrs, ok := parseBody(c)
	if !ok {
		return utils.NotJSON(c)
	}

	amenity := h.Store.Get(models.KindAmenity, c.Params("amenity_id"))
	if amenity == nil {
		return utils.NotFound(c)
	}

	models.Apply(amenity, attrs)
	if err := h.Store.Save(); err != nil {
		return &types.StorageError{Op: "save amenity", Err: err}
	}

	return c.JSON(amenity.ToMap(true))
}

// Delete handles DELETE /api/v1/amenities/:amenity_id
// Removing an amenity drops its place links before the amenity itself.
// @Summary Delete an amenity
// @Tags Amenities
// @Produce json
// @Param amenity_id path string true "Amenity ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /amenities/{amenity_id} [delete]
func (h *AmenityHandler) Delete(c *fiber.Ctx) error {
	amenity := h.Store.Get(models.KindAmenity, c.Params("amenity_id"))
	if amenity == nil {
		return utils.NotFound(c)
	}

	if err := h.Store.Delete(amenity); err != nil {
		return &types.StorageError{Op: "delete amenity", Err: err}
	}
	if err := h.Store.Save(); err != nil {
		return &types.StorageError{Op: "save amenity", Err: err}
	}

	return c.JSON(fiber.Map{})
}
