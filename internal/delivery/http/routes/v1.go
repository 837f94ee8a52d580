package routes

import (
	"github.com/gofiber/fiber/v3"
)

func (r *Registry) registerV1(v1 fiber.Router) {
	r.auth.RegisterRoutes(v1)

	protected := v1.Group("", r.authMW.Middleware())
	r.resumes.RegisterRoutes(protected)
	r.analysis.RegisterRoutes(protected)
	r.suggestions.RegisterRoutes(protected)
	r.jobs.RegisterRoutes(protected)
	r.matches.RegisterRoutes(protected)
	r.analytics.RegisterRoutes(protected)
}
