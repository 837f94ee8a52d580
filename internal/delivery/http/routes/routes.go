package routes

import (
	"github.com/gofiber/fiber/v3"

	"resume-insight/internal/delivery/http/handler"
	"resume-insight/internal/delivery/http/middleware"
)

// Registry wires every HTTP handler onto the fiber app. Auth endpoints and
// the health probe are public; the rest of the v1 surface requires a bearer
// token.
type Registry struct {
	health      *handler.HealthHandler
	auth        *handler.AuthHandler
	resumes     *handler.ResumeHandler
	analysis    *handler.AnalysisHandler
	suggestions *handler.SuggestionHandler
	jobs        *handler.JobHandler
	matches     *handler.MatchHandler
	analytics   *handler.AnalyticsHandler

	authMW *middleware.AuthMiddleware
}

func NewRegistry(
	health *handler.HealthHandler,
	auth *handler.AuthHandler,
	resumes *handler.ResumeHandler,
	analysis *handler.AnalysisHandler,
	suggestions *handler.SuggestionHandler,
	jobs *handler.JobHandler,
	matches *handler.MatchHandler,
	analytics *handler.AnalyticsHandler,
	authMW *middleware.AuthMiddleware,
) *Registry {
	return &Registry{
		health:      health,
		auth:        auth,
		resumes:     resumes,
		analysis:    analysis,
		suggestions: suggestions,
		jobs:        jobs,
		matches:     matches,
		analytics:   analytics,
		authMW:      authMW,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	r.registerV1(api.Group("/v1"))
}
