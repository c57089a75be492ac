package config

// Config holds the application configuration.
type Config struct {
	Logger    Logger    `yaml:"logger"`
	Server    Server    `yaml:"server"`
	Telegram  Telegram  `yaml:"telegram"`
	Providers Providers `yaml:"providers"`
}

// Server holds the configuration for the Fiber server.
type Server struct {
	PrintRoutes bool   `yaml:"show_routes"`
	Port        uint32 `yaml:"port" validate:"required"`
}

// Logger holds the configuration for the app logging.
type Logger struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
}

// Telegram holds the configuration for the optional Telegram bot.
type Telegram struct {
	Enabled      bool     `yaml:"enabled"`
	Token        string   `yaml:"token"`
	AllowedUsers []string `yaml:"allowedUsers"` // No @
}

// Providers holds the configuration for the lyrics providers, in chain order.
type Providers struct {
	LRCLib Provider `yaml:"lrclib"`
	Genius Provider `yaml:"genius"`
}

// Provider holds configuration for an individual lyrics provider.
type Provider struct {
	Enabled bool   `yaml:"enabled"`
	BaseURL string `yaml:"base_url" validate:"omitempty,url"`
}
