package search

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the routes for the search feature.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Post("/search", handler.Search)

	api := app.Group("/api")
	api.Get("/search", handler.SearchAPI)
}
