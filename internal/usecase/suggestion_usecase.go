package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resume-insight/internal/domain/scoring"
	"resume-insight/internal/repository"
)

// SuggestionGenerator produces tailored suggestions from a resume context
// string. Typically AI-backed.
type SuggestionGenerator interface {
	Suggest(ctx context.Context, resumeContext string) ([]scoring.Suggestion, error)
}

// SuggestionUsecase serves improvement suggestions for a stored resume. AI
// suggestions are preferred; when the generator fails the rule-based set
// derived from a fresh scoring pass is returned instead.
type SuggestionUsecase struct {
	resumes   repository.ResumeRepository
	engine    Scorer
	generator SuggestionGenerator
	logger    *zap.Logger
}

func NewSuggestionUsecase(
	resumes repository.ResumeRepository,
	engine Scorer,
	generator SuggestionGenerator,
	logger *zap.Logger,
) *SuggestionUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SuggestionUsecase{
		resumes:   resumes,
		engine:    engine,
		generator: generator,
		logger:    logger,
	}
}

func (u *SuggestionUsecase) ForResume(ctx context.Context, resumeID uuid.UUID) ([]scoring.Suggestion, error) {
	r, err := u.resumes.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrResumeNotFound, resumeID)
		}
		u.logger.Error("resume lookup failed", zap.String("resume_id", resumeID.String()), zap.Error(err))
		return nil, ErrInternal
	}

	snap := r.Snapshot()

	if u.generator != nil {
		suggestions, genErr := u.generator.Suggest(ctx, snap.RawText)
		if genErr == nil && len(suggestions) > 0 {
			return suggestions, nil
		}
		if genErr != nil {
			u.logger.Warn("ai suggestions unavailable, falling back to rule-based set",
				zap.String("resume_id", resumeID.String()),
				zap.Error(genErr),
			)
		}
	}

	result, err := u.engine.Score(ctx, snap)
	if err != nil {
		if errors.Is(err, scoring.ErrInvalidSnapshot) {
			return nil, fmt.Errorf("%w: resume has no scoreable content", ErrInvalidInput)
		}
		u.logger.Error("scoring failed", zap.String("resume_id", resumeID.String()), zap.Error(err))
		return nil, ErrInternal
	}
	return scoring.BuildSuggestions(result), nil
}
