package scoring

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChecker struct {
	issues []Issue
	err    error
	calls  int
}

func (f *fakeChecker) Check(ctx context.Context, text string) ([]Issue, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.issues, nil
}

func referenceSet30(t *testing.T) []string {
	t.Helper()
	ref := []string{"python", "react", "docker"}
	for i := 0; i < 27; i++ {
		ref = append(ref, fmt.Sprintf("skill-%02d", i))
	}
	require.Len(t, ref, 30)
	return ref
}

func TestNewEngine_RejectsBadWeights(t *testing.T) {
	cases := []struct {
		name string
		w    Weights
	}{
		{"sum above one", Weights{Skills: 0.5, Readability: 0.5, Grammar: 0.5}},
		{"sum below one", Weights{Skills: 0.2, Readability: 0.2, Grammar: 0.2}},
		{"negative weight", Weights{Skills: 1.4, Readability: -0.2, Grammar: -0.2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewEngine(tc.w, nil, nil, nil)
			require.ErrorIs(t, err, ErrInvalidWeights)
		})
	}
}

func TestNewEngine_AcceptsDefaultWeights(t *testing.T) {
	eng, err := NewEngine(DefaultWeights(), []string{"Go", "go ", "SQL"}, nil, nil)
	require.NoError(t, err)
	// Reference set is normalized and deduplicated, order preserved.
	assert.Equal(t, []string{"go", "sql"}, eng.ReferenceSkills())
}

func TestEngine_Score_EmptySnapshot(t *testing.T) {
	eng, err := NewEngine(DefaultWeights(), []string{"go"}, nil, nil)
	require.NoError(t, err)

	_, err = eng.Score(context.Background(), ResumeSnapshot{})
	require.ErrorIs(t, err, ErrInvalidSnapshot)
}

func TestEngine_Score_EmptyTextWithSkills(t *testing.T) {
	checker := &fakeChecker{issues: []Issue{{Message: "x"}}}
	eng, err := NewEngine(DefaultWeights(), []string{"python", "go"}, checker, nil)
	require.NoError(t, err)

	res, err := eng.Score(context.Background(), ResumeSnapshot{Skills: []string{"Python"}})
	require.NoError(t, err)

	assert.Equal(t, 0, res.ReadabilityScore)
	assert.Equal(t, 100, res.GrammarScore)
	assert.False(t, res.Degraded)
	assert.Equal(t, 0, checker.calls, "checker must not run on empty text")
	assert.Equal(t, 10, res.SkillsScore)
	// 0.4*10 + 0.3*0 + 0.3*100 = 34
	assert.Equal(t, 34, res.OverallScore)
}

func TestEngine_Score_GrammarPenalty(t *testing.T) {
	issues := []Issue{{Message: "a"}, {Message: "b"}, {Message: "c"}}
	eng, err := NewEngine(DefaultWeights(), []string{"go"}, &fakeChecker{issues: issues}, nil)
	require.NoError(t, err)

	res, err := eng.Score(context.Background(), ResumeSnapshot{
		Skills:  []string{"go"},
		RawText: "Built services in Go. Shipped them on time.",
	})
	require.NoError(t, err)

	assert.Equal(t, 85, res.GrammarScore)
	assert.Equal(t, 3, res.GrammarIssueCount)
	assert.Len(t, res.GrammarIssues, 3)
	assert.False(t, res.Degraded)
}

func TestEngine_Score_GrammarIssuesCappedAtTen(t *testing.T) {
	issues := make([]Issue, 25)
	for i := range issues {
		issues[i] = Issue{Message: fmt.Sprintf("issue %d", i)}
	}
	eng, err := NewEngine(DefaultWeights(), nil, &fakeChecker{issues: issues}, nil)
	require.NoError(t, err)

	res, err := eng.Score(context.Background(), ResumeSnapshot{RawText: "Some resume text here."})
	require.NoError(t, err)

	assert.Equal(t, 0, res.GrammarScore, "25 issues floor the score at 0")
	assert.Equal(t, 25, res.GrammarIssueCount)
	assert.Len(t, res.GrammarIssues, 10)
}

func TestEngine_Score_DegradedGrammarChecker(t *testing.T) {
	eng, err := NewEngine(DefaultWeights(), []string{"go"}, &fakeChecker{err: errors.New("connection refused")}, nil)
	require.NoError(t, err)

	res, err := eng.Score(context.Background(), ResumeSnapshot{
		Skills:  []string{"go"},
		RawText: "Wrote backend services. Led a small team.",
	})
	require.NoError(t, err, "checker failure must not fail the scoring call")

	assert.True(t, res.Degraded)
	assert.Equal(t, 100, res.GrammarScore)
	assert.GreaterOrEqual(t, res.OverallScore, 0)
	assert.LessOrEqual(t, res.OverallScore, 100)
}

func TestEngine_Score_ReferenceScenario(t *testing.T) {
	eng, err := NewEngine(DefaultWeights(), referenceSet30(t), &fakeChecker{}, nil)
	require.NoError(t, err)

	res, err := eng.Score(context.Background(), ResumeSnapshot{
		Skills:  []string{"Python", "React", "Docker"},
		RawText: "Delivered three products. Mentored junior engineers.",
	})
	require.NoError(t, err)

	assert.Equal(t, 30, res.SkillsScore)
	assert.Len(t, res.MatchedSkills, 3)
	assert.Len(t, res.MissingSkills, 27)

	// matched and missing partition the reference set.
	union := map[string]struct{}{}
	for _, s := range res.MatchedSkills {
		union[s] = struct{}{}
	}
	for _, s := range res.MissingSkills {
		_, overlap := union[s]
		assert.False(t, overlap, "matched and missing must be disjoint")
		union[s] = struct{}{}
	}
	assert.Len(t, union, 30)
}

func TestEngine_Score_Deterministic(t *testing.T) {
	snap := ResumeSnapshot{
		Skills:     []string{"Go", "SQL", "Docker"},
		Experience: []string{"Built APIs."},
		RawText:    "Built APIs in Go. Managed PostgreSQL databases. Deployed with Docker.",
	}
	eng, err := NewEngine(DefaultWeights(), []string{"go", "sql", "docker", "kubernetes"},
		&fakeChecker{issues: []Issue{{Message: "dup word"}}}, nil)
	require.NoError(t, err)

	first, err := eng.Score(context.Background(), snap)
	require.NoError(t, err)
	second, err := eng.Score(context.Background(), snap)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, BuildSuggestions(first), BuildSuggestions(second))
}

func TestEngine_MatchJob(t *testing.T) {
	eng, err := NewEngine(DefaultWeights(), nil, nil, nil)
	require.NoError(t, err)

	m := eng.MatchJob(
		[]string{"Go", "PostgreSQL", "Terraform"},
		[]string{"go", "postgresql", "kubernetes", "aws"},
	)

	assert.Equal(t, 50, m.MatchPercentage)
	assert.Equal(t, 20, m.SkillsScore)
	assert.Equal(t, []string{"go", "postgresql"}, m.MatchedSkills)
	assert.Equal(t, []string{"kubernetes", "aws"}, m.MissingSkills)
	assert.Equal(t, 4, m.TotalRequired)
	assert.Equal(t, 2, m.TotalMatched)
}

func TestEngine_MatchJob_EmptyTarget(t *testing.T) {
	eng, err := NewEngine(DefaultWeights(), nil, nil, nil)
	require.NoError(t, err)

	m := eng.MatchJob([]string{"go"}, nil)
	assert.Equal(t, 0, m.MatchPercentage)
	assert.Empty(t, m.MatchedSkills)
	assert.Empty(t, m.MissingSkills)
}

func TestEngine_OverallAlwaysInRange(t *testing.T) {
	eng, err := NewEngine(DefaultWeights(), nil, nil, nil)
	require.NoError(t, err)

	for _, s := range []int{0, 30, 100} {
		for _, r := range []int{0, 55, 100} {
			for _, g := range []int{0, 85, 100} {
				got := eng.aggregate(s, r, g)
				assert.GreaterOrEqual(t, got, 0)
				assert.LessOrEqual(t, got, 100)
			}
		}
	}
}
