package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resume-insight/internal/domain/scoring"
	"resume-insight/internal/repository"
)

// Scorer is the engine surface the analysis flow needs.
type Scorer interface {
	Score(ctx context.Context, snap scoring.ResumeSnapshot) (scoring.ScoreResult, error)
}

// AnalysisNotifier pushes an analysis-completed event to connected clients.
// Implementations must be non-blocking.
type AnalysisNotifier interface {
	AnalysisCompleted(resumeID uuid.UUID, overallScore int)
}

// AnalysisReport is the full outcome of analyzing one stored resume.
type AnalysisReport struct {
	ResumeID    uuid.UUID            `json:"resume_id"`
	Result      scoring.ScoreResult  `json:"result"`
	Suggestions []scoring.Suggestion `json:"suggestions"`
	AnalyzedAt  time.Time            `json:"analyzed_at"`
}

// AnalysisUsecase scores a stored resume, persists the score record, and
// notifies listeners.
type AnalysisUsecase struct {
	resumes    repository.ResumeRepository
	scores     repository.ScoreRepository
	engine     Scorer
	notifier   AnalysisNotifier
	dashboards DashboardInvalidator
	logger     *zap.Logger
}

func NewAnalysisUsecase(
	resumes repository.ResumeRepository,
	scores repository.ScoreRepository,
	engine Scorer,
	notifier AnalysisNotifier,
	dashboards DashboardInvalidator,
	logger *zap.Logger,
) *AnalysisUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisUsecase{
		resumes:    resumes,
		scores:     scores,
		engine:     engine,
		notifier:   notifier,
		dashboards: dashboards,
		logger:     logger,
	}
}

func (u *AnalysisUsecase) Analyze(ctx context.Context, resumeID uuid.UUID) (AnalysisReport, error) {
	r, err := u.resumes.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return AnalysisReport{}, fmt.Errorf("%w: %s", ErrResumeNotFound, resumeID)
		}
		u.logger.Error("resume lookup failed", zap.String("resume_id", resumeID.String()), zap.Error(err))
		return AnalysisReport{}, ErrInternal
	}

	result, err := u.engine.Score(ctx, r.Snapshot())
	if err != nil {
		if errors.Is(err, scoring.ErrInvalidSnapshot) {
			return AnalysisReport{}, fmt.Errorf("%w: resume has no scoreable content", ErrInvalidInput)
		}
		u.logger.Error("scoring failed", zap.String("resume_id", resumeID.String()), zap.Error(err))
		return AnalysisReport{}, ErrInternal
	}

	analyzedAt := time.Now().UTC()
	rec := repository.ScoreRecord{
		ResumeID:         resumeID,
		OverallScore:     result.OverallScore,
		SkillsScore:      result.SkillsScore,
		ReadabilityScore: result.ReadabilityScore,
		GrammarScore:     result.GrammarScore,
		Degraded:         result.Degraded,
		AnalyzedAt:       analyzedAt,
	}
	if err := u.scores.Upsert(ctx, rec); err != nil {
		u.logger.Error("score persist failed", zap.String("resume_id", resumeID.String()), zap.Error(err))
		return AnalysisReport{}, ErrInternal
	}

	if u.dashboards != nil {
		u.dashboards.InvalidateDashboard(ctx)
	}
	if u.notifier != nil {
		u.notifier.AnalysisCompleted(resumeID, result.OverallScore)
	}

	u.logger.Info("resume analyzed",
		zap.String("resume_id", resumeID.String()),
		zap.Int("overall_score", result.OverallScore),
		zap.Bool("degraded", result.Degraded),
	)

	return AnalysisReport{
		ResumeID:    resumeID,
		Result:      result,
		Suggestions: scoring.BuildSuggestions(result),
		AnalyzedAt:  analyzedAt,
	}, nil
}

// LatestScore returns the persisted score record for a resume, if any.
func (u *AnalysisUsecase) LatestScore(ctx context.Context, resumeID uuid.UUID) (repository.ScoreRecord, error) {
	rec, err := u.scores.GetByResumeID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return repository.ScoreRecord{}, fmt.Errorf("%w: no analysis for resume %s", ErrResumeNotFound, resumeID)
		}
		u.logger.Error("score lookup failed", zap.String("resume_id", resumeID.String()), zap.Error(err))
		return repository.ScoreRecord{}, ErrInternal
	}
	return rec, nil
}
