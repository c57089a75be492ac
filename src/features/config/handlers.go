package config

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the config feature.
type Handler struct {
	configManager *Manager
}

// NewHandler creates a new handler for the config feature.
func NewHandler(configManager *Manager) *Handler {
	return &Handler{
		configManager: configManager,
	}
}

// GetConfig returns the current configuration as JSON, with secrets redacted.
func (h *Handler) GetConfig(c *fiber.Ctx) error {
	slog.Debug("GetConfig handler called")

	cfg := *h.configManager.Get()
	if cfg.Telegram.Token != "" {
		cfg.Telegram.Token = "<redacted>"
	}
	return c.JSON(cfg)
}
