package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"resume-insight/internal/delivery/http/middleware"
	"resume-insight/internal/pkg/response"
	"resume-insight/internal/usecase"
)

type MatchHandler struct {
	uc *usecase.MatchUsecase
}

func NewMatchHandler(uc *usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/resumes/:id/match/:job_id", h.HandleMatch)
	r.Get("/resumes/:id/matches", h.HandleHistory)
}

func (h *MatchHandler) HandleMatch(c fiber.Ctx) error {
	resumeID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	jobID, err := parseUUIDParam(c, "job_id")
	if err != nil {
		return err
	}

	report, err := h.uc.Match(c.Context(), resumeID, jobID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "match computed", report)
}

func (h *MatchHandler) HandleHistory(c fiber.Ctx) error {
	resumeID, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	history, err := h.uc.History(c.Context(), resumeID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	out := make([]fiber.Map, 0, len(history))
	for _, m := range history {
		matched := m.MatchedSkills
		if matched == nil {
			matched = []string{}
		}
		out = append(out, fiber.Map{
			"match_id":       m.ID.String(),
			"job_id":         m.JobID.String(),
			"match_score":    m.MatchScore,
			"matched_skills": matched,
			"created_at":     m.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return response.Success(c, fiber.StatusOK, "success", out)
}

func mapMatchUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrResumeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job posting not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
