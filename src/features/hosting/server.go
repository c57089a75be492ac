package hosting

import (
	"fmt"
	"log/slog"

	"github.com/Daniel-Faria-Filho/Lyric-Finder/src/features/config"
	"github.com/Daniel-Faria-Filho/Lyric-Finder/src/features/metrics"
	"github.com/Daniel-Faria-Filho/Lyric-Finder/src/features/search"
	"github.com/Daniel-Faria-Filho/Lyric-Finder/src/features/ui"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
)

// Server is the HTTP server for the application.
type Server struct {
	app  *fiber.App
	port uint32
}

// NewServer creates a new HTTP server.
func NewServer(cfg *config.Manager, searchService *search.Service) *Server {
	engine := html.New("./views", ".html")
	engine.Debug(cfg.Get().Logger.Level == "debug")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Callers never see the raw fault.
			slog.Error("Internal Server Error", "path", c.Path(), "error", err)
			return c.Status(fiber.StatusInternalServerError).SendString("Something went wrong")
		},
		AppName:               "LyricFinder",
		DisableStartupMessage: true,
		EnablePrintRoutes:     cfg.Get().Server.PrintRoutes,
	})

	app.Use(HTMXMiddleware())
	app.Use(LogAllRequestsMiddleware())

	app.Static("/", "./public")
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	uiHandler := ui.NewHandler(cfg)
	searchHandler := search.NewHandler(searchService)

	ui.RegisterRoutes(app, uiHandler)
	search.RegisterRoutes(app, searchHandler)
	config.RegisterRoutes(app, cfg)
	metrics.RegisterRoutes(app)

	return &Server{app: app, port: cfg.Get().Server.Port}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.app.Listen(":" + fmt.Sprint(s.port))
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
