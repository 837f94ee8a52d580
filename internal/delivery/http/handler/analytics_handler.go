package handler

import (
	"github.com/gofiber/fiber/v3"

	"resume-insight/internal/delivery/http/middleware"
	"resume-insight/internal/pkg/response"
	"resume-insight/internal/usecase"
)

type AnalyticsHandler struct {
	uc *usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(uc *usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

func (h *AnalyticsHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/analytics/dashboard", h.HandleDashboard)
}

func (h *AnalyticsHandler) HandleDashboard(c fiber.Ctx) error {
	d, err := h.uc.Dashboard(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, "success", d)
}
