package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"resume-insight/internal/delivery/http/middleware"
	"resume-insight/internal/pkg/response"
	"resume-insight/internal/usecase"
)

type AnalysisHandler struct {
	uc *usecase.AnalysisUsecase
}

func NewAnalysisHandler(uc *usecase.AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

func (h *AnalysisHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/resumes/:id/analyze", h.HandleAnalyze)
	r.Get("/resumes/:id/score", h.HandleScore)
}

func (h *AnalysisHandler) HandleAnalyze(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	report, err := h.uc.Analyze(c.Context(), id)
	if err != nil {
		return mapAnalysisUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "analysis complete", report)
}

func (h *AnalysisHandler) HandleScore(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	rec, err := h.uc.LatestScore(c.Context(), id)
	if err != nil {
		return mapAnalysisUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", fiber.Map{
		"resume_id":         rec.ResumeID.String(),
		"overall_score":     rec.OverallScore,
		"skills_score":      rec.SkillsScore,
		"readability_score": rec.ReadabilityScore,
		"grammar_score":     rec.GrammarScore,
		"degraded":          rec.Degraded,
		"analyzed_at":       rec.AnalyzedAt.UTC().Format(time.RFC3339),
	})
}

func mapAnalysisUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrResumeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, err.Error(), nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
