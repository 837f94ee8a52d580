package usecase

import (
	"context"
	"math"

	"go.uber.org/zap"

	"resume-insight/internal/infrastructure/cache"
	"resume-insight/internal/repository"
)

const dashboardCacheKey = "analytics:dashboard"

// DashboardInvalidator drops cached analytics after a mutation. The
// analytics usecase implements it; mutating flows call it on success.
type DashboardInvalidator interface {
	InvalidateDashboard(ctx context.Context)
}

// Dashboard is the aggregate view served at /analytics/dashboard.
type Dashboard struct {
	TotalResumes  int64            `json:"total_resumes"`
	TotalJobs     int64            `json:"total_jobs"`
	AnalyzedCount int64            `json:"analyzed_count"`
	AverageScore  float64          `json:"average_score"`
	TopSkills     []DashboardSkill `json:"top_skills"`
}

type DashboardSkill struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// AnalyticsUsecase aggregates platform-wide counters. Results are cached in
// Redis for a short TTL; a cache outage degrades to direct queries.
type AnalyticsUsecase struct {
	resumes repository.ResumeRepository
	jobs    repository.JobRepository
	scores  repository.ScoreRepository
	skills  repository.SkillRepository
	cache   *cache.Redis
	logger  *zap.Logger
}

func NewAnalyticsUsecase(
	resumes repository.ResumeRepository,
	jobs repository.JobRepository,
	scores repository.ScoreRepository,
	skills repository.SkillRepository,
	redisCache *cache.Redis,
	logger *zap.Logger,
) *AnalyticsUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsUsecase{
		resumes: resumes,
		jobs:    jobs,
		scores:  scores,
		skills:  skills,
		cache:   redisCache,
		logger:  logger,
	}
}

func (u *AnalyticsUsecase) Dashboard(ctx context.Context) (Dashboard, error) {
	var cached Dashboard
	if hit, err := u.cache.GetJSON(ctx, dashboardCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	var d Dashboard
	var err error

	if d.TotalResumes, err = u.resumes.Count(ctx); err != nil {
		u.logger.Error("resume count failed", zap.Error(err))
		return Dashboard{}, ErrInternal
	}
	if d.TotalJobs, err = u.jobs.Count(ctx); err != nil {
		u.logger.Error("job count failed", zap.Error(err))
		return Dashboard{}, ErrInternal
	}

	avg, analyzed, err := u.scores.AverageOverall(ctx)
	if err != nil {
		u.logger.Error("score aggregate failed", zap.Error(err))
		return Dashboard{}, ErrInternal
	}
	d.AnalyzedCount = analyzed
	d.AverageScore = math.Round(avg*10) / 10

	top, err := u.skills.TopSkills(ctx, 10)
	if err != nil {
		u.logger.Error("top skills query failed", zap.Error(err))
		return Dashboard{}, ErrInternal
	}
	d.TopSkills = make([]DashboardSkill, 0, len(top))
	for _, sc := range top {
		d.TopSkills = append(d.TopSkills, DashboardSkill{Name: sc.Name, Count: sc.Count})
	}

	if err := u.cache.SetJSON(ctx, dashboardCacheKey, d, cache.DefaultTTL); err != nil {
		u.logger.Debug("dashboard cache write failed", zap.Error(err))
	}
	return d, nil
}

// InvalidateDashboard drops the cached dashboard after a mutation.
func (u *AnalyticsUsecase) InvalidateDashboard(ctx context.Context) {
	u.cache.Delete(ctx, dashboardCacheKey)
}
