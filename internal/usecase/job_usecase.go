package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resume-insight/internal/domain/job"
	"resume-insight/internal/infrastructure/scraper"
	"resume-insight/internal/repository"
)

// JobPageFetcher pulls raw content from a job posting URL.
type JobPageFetcher interface {
	Fetch(rawURL string) (scraper.JobPage, error)
}

// JobSkillExtractor pulls required skills out of a free-text job description.
type JobSkillExtractor interface {
	ExtractJobSkills(ctx context.Context, description string) ([]string, error)
}

// JobUsecase manages job postings, created either from explicit payloads or
// imported from a posting URL with AI-extracted required skills.
type JobUsecase struct {
	jobs       repository.JobRepository
	fetcher    JobPageFetcher
	extractor  JobSkillExtractor
	dashboards DashboardInvalidator
	logger     *zap.Logger
}

func NewJobUsecase(
	jobs repository.JobRepository,
	fetcher JobPageFetcher,
	extractor JobSkillExtractor,
	dashboards DashboardInvalidator,
	logger *zap.Logger,
) *JobUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobUsecase{jobs: jobs, fetcher: fetcher, extractor: extractor, dashboards: dashboards, logger: logger}
}

func (u *JobUsecase) Create(ctx context.Context, p job.Posting) (job.Posting, error) {
	p.Title = strings.TrimSpace(p.Title)
	if p.Title == "" {
		return job.Posting{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(p.RequiredSkills) == 0 {
		return job.Posting{}, fmt.Errorf("%w: at least one required skill", ErrInvalidInput)
	}

	id, err := u.jobs.Create(ctx, p)
	if err != nil {
		u.logger.Error("job create failed", zap.Error(err))
		return job.Posting{}, ErrInternal
	}
	if u.dashboards != nil {
		u.dashboards.InvalidateDashboard(ctx)
	}
	return u.Get(ctx, id)
}

// ImportFromURL scrapes a posting page and asks the skill extractor for the
// required-skill list before storing the posting.
func (u *JobUsecase) ImportFromURL(ctx context.Context, rawURL string) (job.Posting, error) {
	if u.fetcher == nil || u.extractor == nil {
		return job.Posting{}, ErrInternal
	}
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return job.Posting{}, fmt.Errorf("%w: url is required", ErrInvalidInput)
	}

	page, err := u.fetcher.Fetch(rawURL)
	if err != nil {
		if errors.Is(err, scraper.ErrNoContent) {
			return job.Posting{}, fmt.Errorf("%w: page had no readable content", ErrInvalidInput)
		}
		u.logger.Warn("job page fetch failed", zap.String("url", rawURL), zap.Error(err))
		return job.Posting{}, fmt.Errorf("%w: could not fetch %s", ErrInvalidInput, rawURL)
	}

	skills, err := u.extractor.ExtractJobSkills(ctx, page.Description)
	if err != nil {
		u.logger.Error("job skill extraction failed", zap.String("url", rawURL), zap.Error(err))
		return job.Posting{}, ErrInternal
	}
	if len(skills) == 0 {
		return job.Posting{}, fmt.Errorf("%w: no skills found in posting", ErrInvalidInput)
	}

	title := page.Title
	if title == "" {
		title = rawURL
	}
	id, err := u.jobs.Create(ctx, job.Posting{
		Title:          title,
		Company:        page.Company,
		Description:    page.Description,
		RequiredSkills: skills,
		SourceURL:      page.URL,
	})
	if err != nil {
		u.logger.Error("job create failed", zap.String("url", rawURL), zap.Error(err))
		return job.Posting{}, ErrInternal
	}
	if u.dashboards != nil {
		u.dashboards.InvalidateDashboard(ctx)
	}

	u.logger.Info("job imported",
		zap.String("job_id", id.String()),
		zap.String("url", rawURL),
		zap.Int("required_skills", len(skills)),
	)
	return u.Get(ctx, id)
}

func (u *JobUsecase) Get(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	p, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return job.Posting{}, fmt.Errorf("%w: %s", ErrJobNotFound, id)
		}
		u.logger.Error("job lookup failed", zap.String("job_id", id.String()), zap.Error(err))
		return job.Posting{}, ErrInternal
	}
	return p, nil
}

func (u *JobUsecase) List(ctx context.Context) ([]job.Posting, error) {
	list, err := u.jobs.List(ctx)
	if err != nil {
		u.logger.Error("job list failed", zap.Error(err))
		return nil, ErrInternal
	}
	return list, nil
}
