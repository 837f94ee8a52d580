package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"resume-insight/internal/domain/resume"
	"resume-insight/internal/infrastructure/textextract"
	"resume-insight/internal/repository"
)

// ResumeExtractor produces a structured resume from raw document text.
type ResumeExtractor interface {
	ExtractResume(ctx context.Context, rawText string) (resume.Resume, error)
}

// IngestUsecase turns an uploaded document into a stored resume: text
// extraction, AI structuring, then a create-or-replace save keyed on the
// candidate email.
type IngestUsecase struct {
	resumes    repository.ResumeRepository
	extractor  ResumeExtractor
	dashboards DashboardInvalidator
	logger     *zap.Logger
}

func NewIngestUsecase(resumes repository.ResumeRepository, extractor ResumeExtractor, dashboards DashboardInvalidator, logger *zap.Logger) *IngestUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IngestUsecase{resumes: resumes, extractor: extractor, dashboards: dashboards, logger: logger}
}

func (u *IngestUsecase) Upload(ctx context.Context, filename, contentType string, data []byte) (resume.Resume, error) {
	if len(data) == 0 {
		return resume.Resume{}, fmt.Errorf("%w: empty upload", ErrInvalidInput)
	}

	text, err := textextract.FromUpload(contentType, data)
	if err != nil {
		switch {
		case errors.Is(err, textextract.ErrUnsupportedType):
			return resume.Resume{}, fmt.Errorf("%w: %s", ErrUnsupportedFileType, contentType)
		case errors.Is(err, textextract.ErrEmptyDocument):
			return resume.Resume{}, ErrEmptyDocument
		default:
			u.logger.Error("text extraction failed", zap.String("filename", filename), zap.Error(err))
			return resume.Resume{}, ErrInternal
		}
	}

	parsed, err := u.extractor.ExtractResume(ctx, text)
	if err != nil {
		u.logger.Error("resume extraction failed", zap.String("filename", filename), zap.Error(err))
		return resume.Resume{}, ErrInternal
	}

	id, err := u.resumes.Save(ctx, parsed)
	if err != nil {
		u.logger.Error("resume save failed", zap.Error(err))
		return resume.Resume{}, ErrInternal
	}

	if u.dashboards != nil {
		u.dashboards.InvalidateDashboard(ctx)
	}

	stored, err := u.resumes.GetByID(ctx, id)
	if err != nil {
		u.logger.Error("resume reload failed", zap.String("resume_id", id.String()), zap.Error(err))
		return resume.Resume{}, ErrInternal
	}

	u.logger.Info("resume ingested",
		zap.String("resume_id", id.String()),
		zap.String("filename", filename),
		zap.Int("skills", len(stored.Skills)),
	)
	return stored, nil
}
