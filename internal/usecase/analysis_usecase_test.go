package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-insight/internal/domain/resume"
	"resume-insight/internal/domain/scoring"
	"resume-insight/internal/repository"
)

type stubResumeRepo struct {
	byID    map[uuid.UUID]resume.Resume
	saveErr error
	getErr  error
}

func (s *stubResumeRepo) Save(_ context.Context, r resume.Resume) (uuid.UUID, error) {
	if s.saveErr != nil {
		return uuid.Nil, s.saveErr
	}
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if s.byID == nil {
		s.byID = map[uuid.UUID]resume.Resume{}
	}
	s.byID[r.ID] = r
	return r.ID, nil
}

func (s *stubResumeRepo) GetByID(_ context.Context, id uuid.UUID) (resume.Resume, error) {
	if s.getErr != nil {
		return resume.Resume{}, s.getErr
	}
	r, ok := s.byID[id]
	if !ok {
		return resume.Resume{}, repository.ErrNotFound
	}
	return r, nil
}

func (s *stubResumeRepo) GetByEmail(_ context.Context, email string) (resume.Resume, error) {
	for _, r := range s.byID {
		if r.PersonalInfo.Email == email {
			return r, nil
		}
	}
	return resume.Resume{}, repository.ErrNotFound
}

func (s *stubResumeRepo) List(_ context.Context) ([]resume.Resume, error) {
	out := make([]resume.Resume, 0, len(s.byID))
	for _, r := range s.byID {
		out = append(out, r)
	}
	return out, nil
}

func (s *stubResumeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

func (s *stubResumeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(s.byID)), nil
}

type stubScoreRepo struct {
	upserted  []repository.ScoreRecord
	upsertErr error
}

func (s *stubScoreRepo) Upsert(_ context.Context, rec repository.ScoreRecord) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.upserted = append(s.upserted, rec)
	return nil
}

func (s *stubScoreRepo) GetByResumeID(_ context.Context, resumeID uuid.UUID) (repository.ScoreRecord, error) {
	for _, rec := range s.upserted {
		if rec.ResumeID == resumeID {
			return rec, nil
		}
	}
	return repository.ScoreRecord{}, repository.ErrNotFound
}

func (s *stubScoreRepo) AverageOverall(_ context.Context) (float64, int64, error) {
	return 0, int64(len(s.upserted)), nil
}

type stubScorer struct {
	result scoring.ScoreResult
	err    error
}

func (s *stubScorer) Score(_ context.Context, _ scoring.ResumeSnapshot) (scoring.ScoreResult, error) {
	return s.result, s.err
}

type recordingInvalidator struct {
	calls int
}

func (r *recordingInvalidator) InvalidateDashboard(context.Context) {
	r.calls++
}

type recordingNotifier struct {
	resumeID uuid.UUID
	overall  int
	called   bool
}

func (n *recordingNotifier) AnalysisCompleted(resumeID uuid.UUID, overallScore int) {
	n.called = true
	n.resumeID = resumeID
	n.overall = overallScore
}

func seededResume(t *testing.T, repo *stubResumeRepo) uuid.UUID {
	t.Helper()
	id, err := repo.Save(context.Background(), resume.Resume{
		Skills:  []string{"python", "sql"},
		RawText: "Built data pipelines. Shipped dashboards.",
	})
	require.NoError(t, err)
	return id
}

func TestAnalysisUsecase_Analyze(t *testing.T) {
	resumes := &stubResumeRepo{}
	id := seededResume(t, resumes)

	scores := &stubScoreRepo{}
	notifier := &recordingNotifier{}
	invalidator := &recordingInvalidator{}
	engine := &stubScorer{result: scoring.ScoreResult{
		SkillsScore:      20,
		ReadabilityScore: 90,
		GrammarScore:     100,
		OverallScore:     65,
		MatchedSkills:    []string{"python", "sql"},
		MissingSkills:    []string{"docker"},
	}}

	uc := NewAnalysisUsecase(resumes, scores, engine, notifier, invalidator, nil)
	report, err := uc.Analyze(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id, report.ResumeID)
	assert.Equal(t, 65, report.Result.OverallScore)
	assert.NotEmpty(t, report.Suggestions)
	assert.False(t, report.AnalyzedAt.IsZero())

	require.Len(t, scores.upserted, 1)
	assert.Equal(t, 65, scores.upserted[0].OverallScore)
	assert.Equal(t, id, scores.upserted[0].ResumeID)

	assert.True(t, notifier.called)
	assert.Equal(t, id, notifier.resumeID)
	assert.Equal(t, 65, notifier.overall)
	assert.Equal(t, 1, invalidator.calls, "cached dashboard dropped after a new score")
}

func TestAnalysisUsecase_Analyze_ResumeMissing(t *testing.T) {
	uc := NewAnalysisUsecase(&stubResumeRepo{}, &stubScoreRepo{}, &stubScorer{}, nil, nil, nil)

	_, err := uc.Analyze(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrResumeNotFound)
}

func TestAnalysisUsecase_Analyze_EmptySnapshot(t *testing.T) {
	resumes := &stubResumeRepo{}
	id := seededResume(t, resumes)

	engine := &stubScorer{err: scoring.ErrInvalidSnapshot}
	uc := NewAnalysisUsecase(resumes, &stubScoreRepo{}, engine, nil, nil, nil)

	_, err := uc.Analyze(context.Background(), id)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAnalysisUsecase_Analyze_PersistFailure(t *testing.T) {
	resumes := &stubResumeRepo{}
	id := seededResume(t, resumes)

	scores := &stubScoreRepo{upsertErr: errors.New("connection reset")}
	notifier := &recordingNotifier{}
	invalidator := &recordingInvalidator{}
	uc := NewAnalysisUsecase(resumes, scores, &stubScorer{}, notifier, invalidator, nil)

	_, err := uc.Analyze(context.Background(), id)
	assert.ErrorIs(t, err, ErrInternal)
	assert.False(t, notifier.called, "no notification on failed persist")
	assert.Zero(t, invalidator.calls, "cache kept when nothing changed")
}

func TestAnalysisUsecase_LatestScore(t *testing.T) {
	resumes := &stubResumeRepo{}
	id := seededResume(t, resumes)

	scores := &stubScoreRepo{}
	uc := NewAnalysisUsecase(resumes, scores, &stubScorer{result: scoring.ScoreResult{OverallScore: 72}}, nil, nil, nil)

	_, err := uc.LatestScore(context.Background(), id)
	assert.ErrorIs(t, err, ErrResumeNotFound, "no record before first analysis")

	_, err = uc.Analyze(context.Background(), id)
	require.NoError(t, err)

	rec, err := uc.LatestScore(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 72, rec.OverallScore)
}
