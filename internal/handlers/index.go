package handlers

import (
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/models"
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/storage"
	"github.com/gofiber/fiber/v2"
)

// IndexHandler handles the service status routes
type IndexHandler struct {
	Store storage.Engine
}

// Status handles GET /api/v1/status
// @Summary Service status
// @Tags Index
// @Produce json
// @Success 200 {object} map[string]string
// @Router /status [get]
func (h *IndexHandler) Status(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "OK"})
}

// Stats handles GET /api/v1/stats
// @Summary Object counts per entity kind
// @Tags Index
// @Produce json
// @Success 200 {object} map[string]int
// @Router /stats [get]
func (h *IndexHandler) Stats(c *fiber.Ctx) error {
	stats := make(map[string]int, len(models.Kinds))
	for _, kind := range models.Kinds {
		stats[models.Plurals[kind]] = h.Store.Count(kind)
	}
	return c.JSON(stats)
}
