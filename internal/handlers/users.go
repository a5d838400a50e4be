package handlers

import (
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/models"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/storage"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/types"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles User routes. Serialization always masks the
// password; it never leaves the process.
type UserHandler struct {
	Store storage.Engine
}

// List handles GET /api/v1/users
// @Summary List all users
// @Tags Users
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	return c.JSON(serializeAll(h.Store.All(models.KindUser)))
}

// Get handles GET /api/v1/users/:user_id
// @Summary Get a user by id
// @Tags Users
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /users/{user_id} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	user := h.Store.Get(models.KindUser, c.Params("user_id"))
	if user == nil {
		return utils.NotFound(c)
	}
	return c.JSON(user.ToMap(true))
}

// Create handles POST /api/v1/users
// @Summary Create a user
// @Tags Users
// @Accept json
// @Produce json
// @Param body body object true "User attributes"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	attrs, ok := parseBody(c)
	if !ok {
		return utils.NotJSON(c)
	}
	if _, ok := attrs["email"]; !ok {
		return utils.MissingField(c, "email")
	}
	if _, ok := attrs["password"]; !ok {
		return utils.MissingField(c, "password")
	}

	user := models.New(models.KindUser, attrs)
	h.Store.New(user)
	if err := h.Store.Save(); err != nil {
		return &types.StorageError{Op: "save user", Err: err}
	}

	return c.Status(fiber.StatusCreated).JSON(user.ToMap(true))
}

// Update handles PUT /api/v1/users/:user_id
// Email is fixed at signup; only password and names are mutable.
// @Summary Update a user
// @Tags Users
// @Accept json
// @Produce json
// @Param user_id path string true "User ID"
// @Param body body object true "Mutable user attributes"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{user_id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	attrs, ok := parseBody(c)
	if !ok {
		return utils.NotJSON(c)
	}

	user := h.Store.Get(models.KindUser, c.Params("user_id"))
	if user == nil {
		return utils.NotFound(c)
	}

	models.Apply(user, attrs)
	if err := h.Store.Save(); err != nil {
		return &types.StorageError{Op: "save user", Err: err}
	}

	return c.JSON(user.ToMap(true))
}

// Delete handles DELETE /api/v1/users/:user_id
// @Summary Delete a user
// @Tags Users
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /users/{user_id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	user := h.Store.Get(models.KindUser, c.Params("user_id"))
	if user == nil {
		return utils.NotFound(c)
	}

	if err := h.Store.Delete(user); err != nil {
		return &types.StorageError{Op: "delete user", Err: err}
	}
	if err := h.Store.Save(); err != nil {
		return &types.StorageError{Op: "save user", Err: err}
	}

	return c.JSON(fiber.Map{})
}
