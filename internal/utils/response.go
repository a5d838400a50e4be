package utils

import (
	"github.com/gofiber/fiber/v2"
)

// Error bodies on this API are a single "error" field; callers translate
// storage absence into NotFound and validation failures into BadRequest.

// NotFound sends the canonical 404 response
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Not found",
	})
}

// BadRequest sends a 400 response with a structured message
func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}

// MissingField sends the 400 response naming a missing required field
func MissingField(c *fiber.Ctx, field string) error {
	return BadRequest(c, "Missing "+field)
}

// NotJSON sends the 400 response for an unparseable request body
func NotJSON(c *fiber.Ctx) error {
	return BadRequest(c, "Not a JSON")
}
