package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"resume-insight/internal/delivery/http/dto"
	"resume-insight/internal/delivery/http/middleware"
	"resume-insight/internal/domain/job"
	"resume-insight/internal/pkg/response"
	"resume-insight/internal/usecase"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/jobs", h.HandleCreate)
	r.Post("/jobs/import", h.HandleImport)
	r.Get("/jobs", h.HandleList)
	r.Get("/jobs/:id", h.HandleGet)
}

func (h *JobHandler) HandleCreate(c fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), job.Posting{
		Title:          req.Title,
		Company:        req.Company,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "job created", dto.NewJobResponse(created))
}

func (h *JobHandler) HandleImport(c fiber.Ctx) error {
	var req dto.ImportJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	imported, err := h.uc.ImportFromURL(c.Context(), req.URL)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "job imported", dto.NewJobResponse(imported))
}

func (h *JobHandler) HandleList(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.NewJobListResponse(items))
}

func (h *JobHandler) HandleGet(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	p, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.NewJobResponse(p))
}

func mapJobUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job posting not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
