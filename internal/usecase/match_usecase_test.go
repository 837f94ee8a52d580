package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-insight/internal/domain/job"
	"resume-insight/internal/domain/resume"
	"resume-insight/internal/domain/scoring"
	"resume-insight/internal/repository"
)

type stubJobRepo struct {
	byID map[uuid.UUID]job.Posting
}

func (s *stubJobRepo) Create(_ context.Context, p job.Posting) (uuid.UUID, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if s.byID == nil {
		s.byID = map[uuid.UUID]job.Posting{}
	}
	s.byID[p.ID] = p
	return p.ID, nil
}

func (s *stubJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Posting, error) {
	p, ok := s.byID[id]
	if !ok {
		return job.Posting{}, repository.ErrNotFound
	}
	return p, nil
}

func (s *stubJobRepo) List(_ context.Context) ([]job.Posting, error) {
	out := make([]job.Posting, 0, len(s.byID))
	for _, p := range s.byID {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubJobRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.byID)), nil
}

type stubMatchRepo struct {
	created []job.Match
}

func (s *stubMatchRepo) Create(_ context.Context, m job.Match) (uuid.UUID, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	s.created = append(s.created, m)
	return m.ID, nil
}

func (s *stubMatchRepo) ListByResumeID(_ context.Context, resumeID uuid.UUID) ([]job.Match, error) {
	var out []job.Match
	for _, m := range s.created {
		if m.ResumeID == resumeID {
			out = append(out, m)
		}
	}
	return out, nil
}

func newMatchFixture(t *testing.T) (*MatchUsecase, uuid.UUID, uuid.UUID, *stubMatchRepo) {
	t.Helper()

	resumes := &stubResumeRepo{}
	resumeID, err := resumes.Save(context.Background(), resume.Resume{
		Skills:  []string{"Python", "SQL", "Git"},
		RawText: "data engineer",
	})
	require.NoError(t, err)

	jobs := &stubJobRepo{}
	jobID, err := jobs.Create(context.Background(), job.Posting{
		Title:          "Data Engineer",
		RequiredSkills: []string{"python", "sql", "docker", "kubernetes"},
	})
	require.NoError(t, err)

	matches := &stubMatchRepo{}
	engine, err := scoring.NewEngine(scoring.DefaultWeights(), nil, nil, nil)
	require.NoError(t, err)

	return NewMatchUsecase(resumes, jobs, matches, engine, nil), resumeID, jobID, matches
}

func TestMatchUsecase_Match(t *testing.T) {
	uc, resumeID, jobID, matches := newMatchFixture(t)

	report, err := uc.Match(context.Background(), resumeID, jobID)
	require.NoError(t, err)

	assert.Equal(t, 50, report.Match.MatchPercentage, "2 of 4 required skills")
	assert.Equal(t, []string{"python", "sql"}, report.Match.MatchedSkills)
	assert.Equal(t, []string{"docker", "kubernetes"}, report.Match.MissingSkills)
	assert.Equal(t, "Data Engineer", report.JobTitle)
	assert.NotEqual(t, uuid.Nil, report.MatchID)

	require.Len(t, matches.created, 1)
	assert.Equal(t, 50, matches.created[0].MatchScore)
	assert.Equal(t, resumeID, matches.created[0].ResumeID)
	assert.Equal(t, jobID, matches.created[0].JobID)
}

func TestMatchUsecase_Match_UnknownResume(t *testing.T) {
	uc, _, jobID, _ := newMatchFixture(t)

	_, err := uc.Match(context.Background(), uuid.New(), jobID)
	assert.ErrorIs(t, err, ErrResumeNotFound)
}

func TestMatchUsecase_Match_UnknownJob(t *testing.T) {
	uc, resumeID, _, _ := newMatchFixture(t)

	_, err := uc.Match(context.Background(), resumeID, uuid.New())
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestMatchUsecase_History(t *testing.T) {
	uc, resumeID, jobID, _ := newMatchFixture(t)

	_, err := uc.Match(context.Background(), resumeID, jobID)
	require.NoError(t, err)

	history, err := uc.History(context.Background(), resumeID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, jobID, history[0].JobID)

	other, err := uc.History(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other)
}
