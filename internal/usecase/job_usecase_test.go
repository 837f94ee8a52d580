package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-insight/internal/domain/job"
	"resume-insight/internal/infrastructure/scraper"
)

type stubFetcher struct {
	page scraper.JobPage
	err  error
}

func (s *stubFetcher) Fetch(string) (scraper.JobPage, error) {
	return s.page, s.err
}

type stubSkillExtractor struct {
	skills []string
	err    error
}

func (s *stubSkillExtractor) ExtractJobSkills(context.Context, string) ([]string, error) {
	return s.skills, s.err
}

func TestJobUsecase_Create(t *testing.T) {
	invalidator := &recordingInvalidator{}
	uc := NewJobUsecase(&stubJobRepo{}, nil, nil, invalidator, nil)

	created, err := uc.Create(context.Background(), job.Posting{
		Title:          "Backend Engineer",
		Company:        "Acme",
		RequiredSkills: []string{"go", "postgresql"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", created.Title)
	assert.Equal(t, []string{"go", "postgresql"}, created.RequiredSkills)
	assert.Equal(t, 1, invalidator.calls, "job count feeds the dashboard")

	_, err = uc.Create(context.Background(), job.Posting{RequiredSkills: []string{"go"}})
	assert.ErrorIs(t, err, ErrInvalidInput, "title required")

	_, err = uc.Create(context.Background(), job.Posting{Title: "No Skills"})
	assert.ErrorIs(t, err, ErrInvalidInput, "skills required")
	assert.Equal(t, 1, invalidator.calls, "rejected creates keep the cache")
}

func TestJobUsecase_ImportFromURL(t *testing.T) {
	fetcher := &stubFetcher{page: scraper.JobPage{
		URL:         "https://jobs.example.com/123",
		Title:       "Platform Engineer",
		Company:     "Example Corp",
		Description: "We need kubernetes and terraform experience.",
	}}
	extractor := &stubSkillExtractor{skills: []string{"kubernetes", "terraform"}}

	jobs := &stubJobRepo{}
	uc := NewJobUsecase(jobs, fetcher, extractor, nil, nil)

	imported, err := uc.ImportFromURL(context.Background(), "https://jobs.example.com/123")
	require.NoError(t, err)
	assert.Equal(t, "Platform Engineer", imported.Title)
	assert.Equal(t, "Example Corp", imported.Company)
	assert.Equal(t, []string{"kubernetes", "terraform"}, imported.RequiredSkills)
	assert.Equal(t, "https://jobs.example.com/123", imported.SourceURL)
}

func TestJobUsecase_ImportFromURL_Failures(t *testing.T) {
	ctx := context.Background()

	uc := NewJobUsecase(&stubJobRepo{}, &stubFetcher{err: scraper.ErrNoContent}, &stubSkillExtractor{}, nil, nil)
	_, err := uc.ImportFromURL(ctx, "https://jobs.example.com/empty")
	assert.ErrorIs(t, err, ErrInvalidInput)

	uc = NewJobUsecase(&stubJobRepo{},
		&stubFetcher{page: scraper.JobPage{Title: "X", Description: "y"}},
		&stubSkillExtractor{err: errors.New("model overloaded")}, nil, nil)
	_, err = uc.ImportFromURL(ctx, "https://jobs.example.com/123")
	assert.ErrorIs(t, err, ErrInternal)

	uc = NewJobUsecase(&stubJobRepo{},
		&stubFetcher{page: scraper.JobPage{Title: "X", Description: "y"}},
		&stubSkillExtractor{skills: nil}, nil, nil)
	_, err = uc.ImportFromURL(ctx, "https://jobs.example.com/123")
	assert.ErrorIs(t, err, ErrInvalidInput, "no skills extracted")
}
