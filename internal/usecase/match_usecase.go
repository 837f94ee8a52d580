package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resume-insight/internal/domain/job"
	"resume-insight/internal/domain/scoring"
	"resume-insight/internal/repository"
)

// JobMatcher is the engine surface the matching flow needs.
type JobMatcher interface {
	MatchJob(resumeSkills []string, requiredSkills []string) scoring.JobMatch
}

// MatchReport pairs the match computation with its persisted identity.
type MatchReport struct {
	MatchID  uuid.UUID        `json:"match_id"`
	ResumeID uuid.UUID        `json:"resume_id"`
	JobID    uuid.UUID        `json:"job_id"`
	JobTitle string           `json:"job_title"`
	Match    scoring.JobMatch `json:"match"`
}

// MatchUsecase matches a stored resume against a stored job posting and
// persists the outcome.
type MatchUsecase struct {
	resumes repository.ResumeRepository
	jobs    repository.JobRepository
	matches repository.MatchRepository
	engine  JobMatcher
	logger  *zap.Logger
}

func NewMatchUsecase(
	resumes repository.ResumeRepository,
	jobs repository.JobRepository,
	matches repository.MatchRepository,
	engine JobMatcher,
	logger *zap.Logger,
) *MatchUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MatchUsecase{
		resumes: resumes,
		jobs:    jobs,
		matches: matches,
		engine:  engine,
		logger:  logger,
	}
}

func (u *MatchUsecase) Match(ctx context.Context, resumeID, jobID uuid.UUID) (MatchReport, error) {
	r, err := u.resumes.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return MatchReport{}, fmt.Errorf("%w: %s", ErrResumeNotFound, resumeID)
		}
		u.logger.Error("resume lookup failed", zap.String("resume_id", resumeID.String()), zap.Error(err))
		return MatchReport{}, ErrInternal
	}

	posting, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return MatchReport{}, fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
		}
		u.logger.Error("job lookup failed", zap.String("job_id", jobID.String()), zap.Error(err))
		return MatchReport{}, ErrInternal
	}

	match := u.engine.MatchJob(r.Skills, posting.RequiredSkills)

	matchID, err := u.matches.Create(ctx, job.Match{
		ResumeID:      resumeID,
		JobID:         jobID,
		MatchScore:    match.MatchPercentage,
		MatchedSkills: match.MatchedSkills,
	})
	if err != nil {
		u.logger.Error("match persist failed",
			zap.String("resume_id", resumeID.String()),
			zap.String("job_id", jobID.String()),
			zap.Error(err),
		)
		return MatchReport{}, ErrInternal
	}

	u.logger.Info("resume matched",
		zap.String("resume_id", resumeID.String()),
		zap.String("job_id", jobID.String()),
		zap.Int("match_percentage", match.MatchPercentage),
	)

	return MatchReport{
		MatchID:  matchID,
		ResumeID: resumeID,
		JobID:    jobID,
		JobTitle: posting.Title,
		Match:    match,
	}, nil
}

// History lists the persisted matches for one resume, newest first.
func (u *MatchUsecase) History(ctx context.Context, resumeID uuid.UUID) ([]job.Match, error) {
	list, err := u.matches.ListByResumeID(ctx, resumeID)
	if err != nil {
		u.logger.Error("match history failed", zap.String("resume_id", resumeID.String()), zap.Error(err))
		return nil, ErrInternal
	}
	return list, nil
}
