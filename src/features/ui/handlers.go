package ui

import (
	"log/slog"

	"github.com/Daniel-Faria-Filho/Lyric-Finder/src/features/config"
	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the UI feature.
type Handler struct {
	configManager *config.Manager
}

// NewHandler creates a new handler for the UI feature.
func NewHandler(configManager *config.Manager) *Handler {
	return &Handler{
		configManager: configManager,
	}
}

// RenderSearch renders the search page.
func (h *Handler) RenderSearch(c *fiber.Ctx) error {
	slog.Debug("RenderSearch handler called")
	data := fiber.Map{
		"Title": "Search",
	}
	if c.Get("HX-Request") != "true" {
		data["Section"] = "search"
		return c.Render("main", data)
	}
	return c.Render("sections/search", data)
}
