package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"resume-insight/internal/pkg/response"
)

// Pinger is the readiness surface of the database pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/health", h.HandleHealth)
}

func (h *HealthHandler) HandleHealth(c fiber.Ctx) error {
	status := map[string]string{"service": "ok", "database": "ok"}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			status["database"] = "unreachable"
			return response.Error(c, fiber.StatusServiceUnavailable, "degraded", status)
		}
	}
	return response.Success(c, fiber.StatusOK, "healthy", status)
}
