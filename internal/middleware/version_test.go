package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/MosabAboidrees/AirBnB-clone-v3/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

// TestAPIVersionDefault tests the default version echo
func TestAPIVersionDefault(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.APIVersion())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if got := resp.Header.Get("X-Api-Version"); got != "1.0.0" {
		t.Errorf("Expected default version 1.0.0, got %q", got)
	}
}

// TestAPIVersionAlias tests the short version alias
func TestAPIVersionAlias(t *testing.T) {
	app := fiber.New()
	app.Use(middleware.APIVersion())
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Api-Version", "1.0")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	if got := resp.Header.Get("X-Api-Version"); got != "1.0.0" {
		t.Errorf("Expected alias expanded to 1.0.0, got %q", got)
	}
}
