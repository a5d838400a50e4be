package handlers

import (
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/models"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/storage"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/types"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles Review routes
type ReviewHandler struct {
	Store storage.Engine
}

// ListByPlace handles GET /api/v1/places/:place_id/reviews
// @Summary List the reviews of a place
// @Tags Reviews
// @Produce json
// @Param place_id path string true "Place ID"
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /places/{place_id}/reviews [get]
func (h *ReviewHandler) ListByPlace(c *fiber.Ctx) error {
	place := h.Store.Get(models.KindPlace, c.Params("place_id"))
	if place == nil {
		return utils.NotFound(c)
	}
	return c.JSON(serialize(storage.PlaceReviews(h.Store, place.GetID())))
}

// Get handles GET /api/v1/reviews/:review_id
// @Summary Get a review by id
// @Tags Reviews
// @Produce json
// @Param review_id path string true "Review ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /reviews/{review_id} [get]
func (h *ReviewHandler) Get(c *fiber.Ctx) error {
	review := h.Store.Get(models.KindReview, c.Params("review_id"))
	if review == nil {
		return utils.NotFound(c)
	}
	return c.JSON(review.ToMap(true))
}

// Create handles POST /api/v1/places/:place_id/reviews
// @Summary Create a review under a place
// @Tags Reviews
// @Accept json
// @Produce json
// @Param place_id path string true "Place ID"
// @Param body body object true "Review attributes"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /places/{place_id}/reviews [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	place := h.Store.Get(models.KindPlace, c.Params("place_id"))
	if place == nil {
		return utils.NotFound(c)
	}

	attrs, ok := parseBody(c)
	if !ok {
		return utils.NotJSON(c)
	}
	if _, ok := attrs["user_id"]; !ok {
		return utils.MissingField(c, "user_id")
	}
	if _, ok := attrs["text"]; !ok {
		return utils.MissingField(c, "text")
	}
	attrs["place_id"] = place.GetID()

	userID, _ := attrs["user_id"].(string)
	if h.Store.Get(models.KindUser, userID) == nil {
		return utils.NotFound(c)
	}

	review := models.New(models.KindReview, attrs)
	h.Store.New(review)
	if err := h.Store.Save(); err != nil {
		return &types.StorageError{Op: "save review", Err: err}
	}

	return c.Status(fiber.StatusCreated).JSON(review.ToMap(true))
}

// Update handles PUT /api/v1/reviews/:review_id
// @Summary Update a review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param review_id path string true "Review ID"
// @Param body body object true "Mutable review attributes"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reviews/{review_id} [put]
func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	attrs, ok := parseBody(c)
	if !ok {
		return utils.NotJSON(c)
	}

	review := h.Store.Get(models.KindReview, c.Params("review_id"))
	if review == nil {
		return utils.NotFound(c)
	}

	models.Apply(review, attrs)
	if err := h.Store.Save(); err != nil {
		return &types.StorageError{Op: "save review", Err: err}
	}

	return c.JSON(review.ToMap(true))
}

// Delete handles DELETE /api/v1/reviews/:review_id
// @Summary Delete a review
// @Tags Reviews
// @Produce json
// @Param review_id path string true "Review ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /reviews/{review_id} [delete]
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	review := h.Store.Get(models.KindReview, c.Params("review_id"))
	if review == nil {
		return utils.NotFound(c)
	}

	if err := h.Store.Delete(review); err != nil {
		return &types.StorageError{Op: "delete review", Err: err}
	}
	if err := h.Store.Save(); err != nil {
		return &types.StorageError{Op: "save review", Err: err}
	}

	return c.JSON(fiber.Map{})
}
