package search

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Handler handles lyrics search requests.
type Handler struct {
	service *Service
}

// NewHandler creates a new search handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Search handles the HTMX search form and renders a result partial.
func (h *Handler) Search(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.FormValue("query"))
	if query == "" {
		return c.Status(fiber.StatusBadRequest).Render("partials/error", fiber.Map{
			"Message": "Please enter a song to search for.",
		})
	}

	result, err := h.service.Find(c.Context(), query)
	if err != nil {
		slog.Error("Search failed", "query", query, "error", err)
		return c.Status(fiber.StatusInternalServerError).Render("partials/error", fiber.Map{
			"Message": "Something went wrong. Please try again.",
		})
	}

	if !result.Found() {
		return c.Render("partials/not_found", fiber.Map{
			"Query": query,
		})
	}

	return c.Render("partials/result", fiber.Map{
		"Query":      query,
		"Lyrics":     result.Text,
		"Provenance": result.Provenance,
	})
}

// SearchAPI returns the lyrics result as JSON.
func (h *Handler) SearchAPI(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "query parameter 'q' is required",
		})
	}

	result, err := h.service.Find(c.Context(), query)
	if err != nil {
		slog.Error("Search failed", "query", query, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "something went wrong",
		})
	}

	if !result.Found() {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no lyrics found",
			"query": query,
		})
	}

	return c.JSON(result)
}
