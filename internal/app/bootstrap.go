package app

import (
	"fmt"
	"strings"

	"skill-gap/internal/config"
	"skill-gap/internal/delivery/http/handler"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/delivery/http/routes"
	"skill-gap/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container and the HTTP surface on top of it. The
// returned cleanup closes the database pool and the cache client.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	f.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	f.Use(middleware.NewErrorMiddleware().Middleware())

	registry := &routes.Registry{
		Health:   handler.NewHealthHandler(c.DB),
		Auth:     handler.NewAuthHandler(c.Auth),
		Match:    handler.NewMatchHandler(c.Matcher),
		Training: handler.NewTrainingHandler(c.Training),
		Position: handler.NewPositionHandler(c.Positions),
		Advisor:  handler.NewAdvisorHandler(c.Advisor),
		Pipeline: handler.NewPipelineHandler(c.Refresh, 0),

		AuthMw: middleware.NewAuthMiddleware(c.JWT),
		WS:     ws.NewHandler(c.Hub, c.Logger),
	}
	registry.Register(f)

	app := &App{Fiber: f, Container: c}
	return app, c.Close, nil
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
