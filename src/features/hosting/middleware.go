package hosting

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HTMXMiddleware logs HTMX-specific request details at debug level.
func HTMXMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		isHTMX := c.Get("HX-Request") == "true"

		err := c.Next()

		if isHTMX {
			slog.Debug("HTMX request",
				"method", c.Method(),
				"path", c.Path(),
				"status", c.Response().StatusCode(),
				"hx_trigger", c.Get("HX-Trigger"),
				"hx_target", c.Get("HX-Target"),
			)
		}

		return err
	}
}

// LogAllRequestsMiddleware logs every request with its duration; failed
// requests are logged at error level.
func LogAllRequestsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestType := "normal"
		if c.Get("HX-Request") == "true" {
			requestType = "htmx"
		}

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		if status >= 400 {
			slog.Error("HTTP request",
				"type", requestType,
				"method", c.Method(),
				"path", c.Path(),
				"status", status,
				"duration", duration.String(),
				"error", err,
			)
		} else {
			slog.Debug("HTTP request",
				"type", requestType,
				"method", c.Method(),
				"path", c.Path(),
				"status", status,
				"duration", duration.String(),
			)
		}
		return err
	}
}
