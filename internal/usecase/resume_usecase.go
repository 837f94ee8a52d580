package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resume-insight/internal/domain/resume"
	"resume-insight/internal/repository"
)

// ResumeUsecase covers the plain read and delete operations on stored resumes.
type ResumeUsecase struct {
	resumes    repository.ResumeRepository
	dashboards DashboardInvalidator
	logger     *zap.Logger
}

func NewResumeUsecase(resumes repository.ResumeRepository, dashboards DashboardInvalidator, logger *zap.Logger) *ResumeUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResumeUsecase{resumes: resumes, dashboards: dashboards, logger: logger}
}

func (u *ResumeUsecase) Get(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	r, err := u.resumes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return resume.Resume{}, fmt.Errorf("%w: %s", ErrResumeNotFound, id)
		}
		u.logger.Error("resume lookup failed", zap.String("resume_id", id.String()), zap.Error(err))
		return resume.Resume{}, ErrInternal
	}
	return r, nil
}

func (u *ResumeUsecase) List(ctx context.Context) ([]resume.Resume, error) {
	list, err := u.resumes.List(ctx)
	if err != nil {
		u.logger.Error("resume list failed", zap.Error(err))
		return nil, ErrInternal
	}
	return list, nil
}

func (u *ResumeUsecase) SearchByEmail(ctx context.Context, email string) (resume.Resume, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return resume.Resume{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	r, err := u.resumes.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return resume.Resume{}, ErrResumeNotFound
		}
		u.logger.Error("resume search failed", zap.Error(err))
		return resume.Resume{}, ErrInternal
	}
	return r, nil
}

func (u *ResumeUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.resumes.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrResumeNotFound, id)
		}
		u.logger.Error("resume delete failed", zap.String("resume_id", id.String()), zap.Error(err))
		return ErrInternal
	}
	if u.dashboards != nil {
		u.dashboards.InvalidateDashboard(ctx)
	}
	u.logger.Info("resume deleted", zap.String("resume_id", id.String()))
	return nil
}
