package config

var defaultConfig = Config{
	Logger: Logger{
		Enabled: true,
		Level:   "info",
		Format:  "text",
	},
	Server: Server{
		PrintRoutes: false,
		Port:        3000,
	},
	Telegram: Telegram{
		Enabled:      false,
		Token:        "",                                   // Can be obtained with https://t.me/BotFather
		AllowedUsers: []string{"<your_telegram_username>"}, // No @
	},
	Providers: Providers{
		LRCLib: Provider{
			Enabled: true,
			BaseURL: "https://lrclib.net",
		},
		Genius: Provider{
			Enabled: true,
			BaseURL: "https://genius.com",
		},
	},
}
