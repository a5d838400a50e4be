package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// APIVersion parses the X-Api-Version request header, stores the
// negotiated version in context and echoes it on the response.
func APIVersion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		version := c.Get("X-Api-Version", "1.0.0")

		// Support version aliases
		if version == "1.0" {
			version = "1.0.0"
		}

		c.Locals("apiVersion", version)
		c.Set("X-Api-Version", version)

		return c.Next()
	}
}
