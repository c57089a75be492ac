package config

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Manager holds the application configuration and provides thread-safe
// access to it.
type Manager struct {
	mu     sync.RWMutex
	config *Config
}

// NewManager creates a new Manager.
func NewManager(config *Config) *Manager {
	return &Manager{config: config}
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

// Update replaces the configuration.
func (m *Manager) Update(config *Config) {
	m.mu.Lock()
	defer m.mu.Unlock()

	oldConfig := m.config
	m.config = config

	if oldConfig != nil {
		slog.Debug("Configuration updated",
			"logger_level_changed", oldConfig.Logger.Level != config.Logger.Level,
			"telegram_enabled_changed", oldConfig.Telegram.Enabled != config.Telegram.Enabled,
			"lrclib_enabled_changed", oldConfig.Providers.LRCLib.Enabled != config.Providers.LRCLib.Enabled,
			"genius_enabled_changed", oldConfig.Providers.Genius.Enabled != config.Providers.Genius.Enabled,
		)
	}
}

// Save writes the current configuration to the specified file path.
func (m *Manager) Save(path string) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if err := saveConfig(path, m.config); err != nil {
		slog.Error("failed to save config", "path", path, "error", err)
		return err
	}
	slog.Info("Configuration saved successfully", "path", path)
	return nil
}

// GetJSON returns the configuration as a JSON string, for debugging.
func (m *Manager) GetJSON() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}
