package routes

import (
	"skill-gap/internal/delivery/http/handler"
	"skill-gap/internal/delivery/http/middleware"
	"skill-gap/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Registry owns the full route table. Handlers left nil are skipped, which
// keeps partial wiring usable in tests.
type Registry struct {
	Health   *handler.HealthHandler
	Auth     *handler.AuthHandler
	Match    *handler.MatchHandler
	Training *handler.TrainingHandler
	Position *handler.PositionHandler
	Advisor  *handler.AdvisorHandler
	Pipeline *handler.PipelineHandler

	AuthMw *middleware.AuthMiddleware
	WS     *ws.Handler
}

func (r *Registry) Register(app *fiber.App) {
	if r == nil || app == nil {
		return
	}

	if r.Health != nil {
		r.Health.RegisterRoutes(app)
	}
	if r.WS != nil {
		app.Get("/ws/positions", r.WS.HandlePositionsWS)
	}

	api := app.Group("/api/v1")

	if r.Auth != nil {
		r.Auth.RegisterRoutes(api.Group("/auth"))
	}

	protected := api
	if r.AuthMw != nil {
		protected = api.Group("", r.AuthMw.Middleware())
	}

	employees := protected.Group("/employees")
	if r.Match != nil {
		r.Match.RegisterRoutes(employees)
	}
	if r.Training != nil {
		r.Training.RegisterRoutes(employees)
	}
	if r.Advisor != nil {
		r.Advisor.RegisterRoutes(employees)
	}
	if r.Position != nil {
		r.Position.RegisterRoutes(protected.Group("/positions"))
	}
	if r.Pipeline != nil {
		r.Pipeline.RegisterRoutes(protected.Group("/pipeline"))
	}
}
