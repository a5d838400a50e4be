package handlers

import (
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/models"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/storage"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/types"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// StateHandler handles State routes
type StateHandler struct {
	Store storage.Engine
}

// List handles GET /api/v1/states
// @Summary List all states
// @Tags States
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /states [get]
func (h *StateHandler) List(c *fiber.Ctx) error {
	return c.JSON(serializeAll(h.Store.All(models.KindState)))
}

// Get handles GET /api/v1/states/:state_id
// @Summary Get a state by id
// @Tags States
// @Produce json
// @Param state_id path string true "State ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /states/{state_id} [get]
func (h *StateHandler) Get(c *fiber.Ctx) error {
	state := h.Store.Get(models.KindState, c.Params("state_id"))
	if state == nil {
		return utils.NotFound(c)
	}
	return c.JSON(state.ToMap(true))
}

// Create handles POST /api/v1/states
// @Summary Create a state
// @Tags States
// @Accept json
// @Produce json
// @Param body body object true "State attributes"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /states [post]
func (h *StateHandler) Create(c *fiber.Ctx) error {
	attrs, ok := parseBody(c)
	if !ok {
		return utils.NotJSON(c)
	}
	if _, ok := attrs["name"]; !ok {
		return utils.MissingField(c, "name")
	}

	state := models.New(models.KindState, attrs)
	h.Store.New(state)
	if err := h.Store.Save(); err != nil {
		return &types.StorageError{Op: "save state", Err: err}
	}

	return c.Status(fiber.StatusCreated).JSON(state.ToMap(true))
}

// Update handles PUT /api/v1/states/:state_id
// @Summary Update a state
// @Tags States
// @Accept json
// @Produce json
// @Param state_id path string true "State ID"
// @Param body body object true "Mutable state attributes"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /states/{state_id} [put]
func (h *StateHandler) Update(c *fiber.Ctx) error {
	attrs, ok := parseBody(c)
	if !ok {
		return utils.NotJSON(c)
	}

	state := h.Store.Get(models.KindState, c.Params("state_id"))
	if state == nil {
		return utils.NotFound(c)
	}

	models.Apply(state, attrs)
	if err := h.Store.Save(); err != nil {
		return &types.StorageError{Op: "save state", Err: err}
	}

	return c.JSON(state.ToMap(true))
}

// Delete handles DELETE /api/v1/states/:state_id
// @Summary Delete a state
// @Tags States
// @Produce json
// @Param state_id path string true "State ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /states/{state_id} [delete]
func (h *StateHandler) Delete(c *fiber.Ctx) error {
	state := h.Store.Get(models.KindState, c.Params("state_id"))
	if state == nil {
		return utils.NotFound(c)
	}

	if err := h.Store.Delete(state); err != nil {
		return &types.StorageError{Op: "delete state", Err: err}
	}
	if err := h.Store.Save(); err != nil {
		return &types.StorageError{Op: "save state", Err: err}
	}

	return c.JSON(fiber.Map{})
}
