package handlers

import (
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/models"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/storage"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/types"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// CityHandler handles City routes
type CityHandler struct {
	Store storage.Engine
}

// ListByState handles GET /api/v1/states/:state_id/cities
// @Summary List the cities of a state
// @Tags Cities
// @Produce json
// @Param state_id path string true "State ID"
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /states/{state_id}/cities [get]
func (h *CityHandler) ListByState(c *fiber.Ctx) error {
	state := h.Store.Get(models.KindState, c.Params("state_id"))
	if state == nil {
		return utils.NotFound(c)
	}
	return c.JSON(serialize(storage.StateCities(h.Store, state.GetID())))
}

// Get handles GET /api/v1/cities/:city_id
// @Summary Get a city by id
// @Tags Cities
// @Produce json
// @Param city_id path string true "City ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /cities/{city_id} [get]
func (h *CityHandler) Get(c *fiber.Ctx) error {
	city := h.Store.Get(models.KindCity, c.Params("city_id"))
	if city == nil {
		return utils.NotFound(c)
	}
	return c.JSON(city.ToMap(true))
}

// Create handles POST /api/v1/states/:state_id/cities
// The state is resolved before the body is read: an unknown state is 404
// even when the body would not validate.
// @Summary Create a city under a state
// @Tags Cities
// @Accept json
// @Produce json
// @Param state_id path string true "State ID"
// @Param body body object true "City attributes"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /states/{state_id}/cities [post]
func (h *CityHandler) Create(c *fiber.Ctx) error {
	state := h.Store.Get(models.KindState, c.Params("state_id"))
	if state == nil {
		return utils.NotFound(c)
	}

	attrs, ok := parseBody(c)
	if !ok {
		return utils.NotJSON(c)
	}
	if _, ok := attrs["name"]; !ok {
		return utils.MissingField(c, "name")
	}
	attrs["state_id"] = state.GetID()

	city := models.New(models.KindCity, attrs)
	h.Store.New(city)
	if err := h.Store.Save(); err != nil {
		return &types.StorageError{Op: "save city", Err: err}
	}

	return c.Status(fiber.StatusCreated).JSON(city.ToMap(true))
}

// Update handles PUT /api/v1/cities/:city_id
// @Summary Update a city
// @Tags Cities
// @Accept json
// @Produce json
// @Param city_id path string true "City ID"
// @Param body body object true "Mutable city attributes"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cities/{city_id} [put]
func (h *CityHandler) Update(c *fiber.Ctx) error {
	attrs, ok := parseBody(c)
	if !ok {
		return utils.NotJSON(c)
	}

	city := h.Store.Get(models.KindCity, c.Params("city_id"))
	if city == nil {
		return utils.NotFound(c)
	}

	models.Apply(city, attrs)
	if err := h.Store.Save(); err != nil {
		return &types.StorageError{Op: "save city", Err: err}
	}

	return c.JSON(city.ToMap(true))
}

// Delete handles DELETE /api/v1/cities/:city_id
// @Summary Delete a city
// @Tags Cities
// @Produce json
// @Param city_id path string true "City ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /cities/{city_id} [delete]
func (h *CityHandler) Delete(c *fiber.Ctx) error {
	city := h.Store.Get(models.KindCity, c.Params("city_id"))
	if city == nil {
		return utils.NotFound(c)
	}

	if err := h.Store.Delete(city); err != nil {
		return &types.StorageError{Op: "delete city", Err: err}
	}
	if err := h.Store.Save(); err != nil {
		return &types.StorageError{Op: "save city", Err: err}
	}

	return c.JSON(fiber.Map{})
}
