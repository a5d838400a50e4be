package handlers

import (
	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/models"
	"github.com/gofiber/fiber/v2"
)

// parseBody decodes the JSON request body into an attribute map. A body
// that does not parse, or that decodes to an empty object, reports
// ok=false and the route answers "Not a JSON".
func parseBody(c *fiber.Ctx) (map[string]interface{}, bool) {
	var attrs map[string]interface{}
	if err := c.BodyParser(&attrs); err != nil || len(attrs) == 0 {
		return nil, false
	}
	return attrs, true
}

// serialize renders a slice of entities for the wire, secrets masked.
func serialize[T models.Entity](entities []T) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(entities))
	for _, e := range entities {
		out = append(out, e.ToMap(true))
	}
	return out
}

// serializeAll renders an identity-map view for the wire, secrets masked.
// Order is unspecified, like the map it comes from.
func serializeAll(objects map[string]models.Entity) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(objects))
	for _, e := range objects {
		out = append(out, e.ToMap(true))
	}
	return out
}
