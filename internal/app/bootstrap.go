package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"resume-insight/internal/config"
	"resume-insight/internal/delivery/http/handler"
	"resume-insight/internal/delivery/http/middleware"
	"resume-insight/internal/delivery/http/routes"
	"resume-insight/internal/logger"
	"resume-insight/internal/ws"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container, wires the HTTP surface, and starts the
// websocket hub. The returned cleanup closes every long-lived resource.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	log, err := logger.New(cfg.App.LogJSON, cfg.App.LogDebug)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	container, err := NewContainer(cfg, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, err
	}

	go container.Hub.Run()

	f := fiber.New(fiber.Config{
		AppName:   cfg.App.AppName,
		BodyLimit: 12 << 20,
	})

	registerGlobalMiddleware(f, log)
	registerRoutes(f, container, log)

	cleanup := func() error {
		err := container.Close()
		_ = log.Sync()
		return err
	}
	return &App{Fiber: f, Container: container}, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, log *zap.Logger) {
	app.Use(middleware.NewErrorMiddleware(log).Middleware())
	app.Use(middleware.NewAccessLogMiddleware(log).Middleware())
}

func registerRoutes(app *fiber.App, c *Container, log *zap.Logger) {
	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB),
		handler.NewAuthHandler(c.Auth),
		handler.NewResumeHandler(c.Ingest, c.Resumes),
		handler.NewAnalysisHandler(c.Analysis),
		handler.NewSuggestionHandler(c.Suggestions),
		handler.NewJobHandler(c.Jobs),
		handler.NewMatchHandler(c.Matches),
		handler.NewAnalyticsHandler(c.Analytics),
		middleware.NewAuthMiddleware(c.JWT),
	)
	registry.Register(app)

	ws.NewHandler(c.Hub, log).RegisterRoutes(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
