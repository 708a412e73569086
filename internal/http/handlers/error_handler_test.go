package handlers_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"lifelink/internal/http/handlers"
)

// internal errors surface as a generic message, never the cause
func TestErrorHandlerHidesInternals(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	app.Use(requestid.New())
	app.Get("/err", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusInternalServerError, "db timeout: secret trace")
	})
	app.Get("/teapot", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusTeapot, "short and stout")
	})

	var body string
	entries := captureLogs(t, func() {
		resp, err := app.Test(httptest.NewRequest("GET", "/err", nil))
		if err != nil {
			t.Fatalf("test request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", resp.StatusCode)
		}
		b, _ := io.ReadAll(resp.Body)
		body = string(b)
	})
	if !strings.Contains(body, "Something went wrong") {
		t.Fatalf("friendly message missing; body=%s", body)
	}
	if strings.Contains(body, "db timeout") || strings.Contains(body, "secret") {
		t.Fatalf("internal details leaked to user; body=%s", body)
	}
	if e, ok := findAction(entries, "server.error"); !ok || !strings.Contains(e.Err, "db timeout") {
		t.Fatalf("cause should be logged server-side: %+v", entries)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/teapot", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusTeapot {
		t.Fatalf("client errors keep their status, got %d", resp.StatusCode)
	}
}
