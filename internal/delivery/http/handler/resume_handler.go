package handler

import (
	"errors"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"resume-insight/internal/delivery/http/dto"
	"resume-insight/internal/delivery/http/middleware"
	"resume-insight/internal/pkg/response"
	"resume-insight/internal/usecase"
)

// Uploads above this size are rejected before extraction.
const maxUploadBytes = 10 << 20

type ResumeHandler struct {
	ingest *usecase.IngestUsecase
	uc     *usecase.ResumeUsecase
}

func NewResumeHandler(ingest *usecase.IngestUsecase, uc *usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{ingest: ingest, uc: uc}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/resumes", h.HandleUpload)
	r.Get("/resumes", h.HandleList)
	r.Get("/resumes/search", h.HandleSearch)
	r.Get("/resumes/:id", h.HandleGet)
	r.Delete("/resumes/:id", h.HandleDelete)
}

func (h *ResumeHandler) HandleUpload(c fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "A 'file' form field is required", nil, err)
	}
	if fileHeader.Size > maxUploadBytes {
		return middleware.NewAppError(fiber.StatusBadRequest, "File exceeds the 10MB limit", nil, nil)
	}

	data, err := readUpload(fileHeader)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Could not read uploaded file", nil, err)
	}

	contentType := fileHeader.Header.Get("Content-Type")
	stored, err := h.ingest.Upload(c.Context(), fileHeader.Filename, contentType, data)
	if err != nil {
		return mapResumeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "resume ingested", dto.NewResumeResponse(stored))
}

func (h *ResumeHandler) HandleList(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapResumeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.NewResumeListResponse(items))
}

func (h *ResumeHandler) HandleSearch(c fiber.Ctx) error {
	email := c.Query("email")
	r, err := h.uc.SearchByEmail(c.Context(), email)
	if err != nil {
		return mapResumeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.NewResumeResponse(r))
}

func (h *ResumeHandler) HandleGet(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	r, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapResumeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "success", dto.NewResumeResponse(r))
}

func (h *ResumeHandler) HandleDelete(c fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapResumeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "resume deleted", nil)
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
}

func parseUUIDParam(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+name, nil, err)
	}
	return id, nil
}

func mapResumeUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrUnsupportedFileType):
		return middleware.NewAppError(fiber.StatusBadRequest, "Only PDF and DOCX files are supported", nil, err)
	case errors.Is(err, usecase.ErrEmptyDocument):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "No text could be extracted from the document", nil, err)
	case errors.Is(err, usecase.ErrResumeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Resume not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
