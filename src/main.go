package main

import (
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/Daniel-Faria-Filho/Lyric-Finder/src/features/config"
	"github.com/Daniel-Faria-Filho/Lyric-Finder/src/features/hosting"
	"github.com/Daniel-Faria-Filho/Lyric-Finder/src/features/logging"
	"github.com/Daniel-Faria-Filho/Lyric-Finder/src/features/metrics"
	"github.com/Daniel-Faria-Filho/Lyric-Finder/src/features/search"
	"github.com/Daniel-Faria-Filho/Lyric-Finder/src/infra/providers"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	// Load configuration
	cfgManager, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Setup default logger with slog
	logger := logging.SetupLogger(cfgManager)
	slog.SetDefault(logger)

	// Reload configuration on file changes
	cfgWatcher, err := config.NewWatcher(cfgManager, "config.yaml")
	if err != nil {
		slog.Error("Failed to create config watcher", "error", err)
	} else if err := cfgWatcher.Start(); err != nil {
		slog.Error("Failed to start config watcher", "error", err)
	} else {
		defer cfgWatcher.Stop()
	}

	// Create the metrics recorder
	recorder := metrics.NewRecorder(prometheus.DefaultRegisterer)

	// Create the lyrics providers and the search service
	primary := providers.NewLRCLib(cfgManager)
	secondary := providers.NewGenius(cfgManager)
	searchService := search.NewService(primary, secondary, recorder)

	// Create and start the Telegram bot if enabled
	var telegramBot *hosting.TelegramBot
	if cfgManager.Get().Telegram.Enabled {
		var err error
		telegramBot, err = hosting.NewTelegramBot(cfgManager, searchService)
		if err != nil {
			slog.Error("Failed to initialize Telegram bot", "error", err)
		} else {
			go telegramBot.Start()
			slog.Info("Telegram bot started")
		}
	}

	// Create and start the HTTP server
	server := hosting.NewServer(cfgManager, searchService)
	go func() {
		if err := server.Start(); err != nil {
			slog.Error("server stopped", "error", err)
		}
	}()
	slog.Info("Server started. Press Ctrl+C to shut down.", "port", cfgManager.Get().Server.Port)

	// Wait for a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	slog.Info("Shutting down server...")

	if telegramBot != nil {
		telegramBot.Stop()
		slog.Info("Telegram bot stopped")
	}

	if err := server.Shutdown(); err != nil {
		log.Fatalf("failed to shutdown server: %v", err)
	}
	slog.Info("Server gracefully shut down.")
}
