package handler

import (
	"github.com/gofiber/fiber/v3"

	"resume-insight/internal/pkg/response"
	"resume-insight/internal/usecase"
)

type SuggestionHandler struct {
	uc *usecase.SuggestionUsecase
}

func NewSuggestionHandler(uc *usecase.SuggestionUsecase) *SuggestionHandler {
	return &SuggestionHandler{uc: uc}
}

func (h *SuggestionHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/resumes/:id/suggestions", h.HandleSuggestions)
}

func (h *SuggestionHandler) HandleSuggestions(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	suggestions, err := h.uc.ForResume(c.Context(), id)
	if err != nil {
		return mapAnalysisUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", suggestions)
}
