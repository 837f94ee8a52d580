package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSuggestions_OrderAndCategories(t *testing.T) {
	res := ScoreResult{
		SkillsScore:       20,
		ReadabilityScore:  45,
		GrammarScore:      90,
		GrammarIssueCount: 2,
		MissingSkills:     []string{"kubernetes", "aws"},
	}

	got := BuildSuggestions(res)
	require.Len(t, got, 6)

	assert.Equal(t, CategorySkillsGap, got[0].Category)
	assert.Contains(t, got[0].Text, "kubernetes")
	assert.Equal(t, CategorySkillsGap, got[1].Category)
	assert.Contains(t, got[1].Text, "aws")

	assert.Equal(t, CategoryContent, got[2].Category)
	assert.Contains(t, got[2].Text, "Simplify")

	assert.Equal(t, CategoryContent, got[3].Category)
	assert.Contains(t, got[3].Text, "2 grammar/style issues")

	assert.Equal(t, CategoryFormatting, got[4].Category)
	assert.Equal(t, CategoryATS, got[5].Category)
}

func TestBuildSuggestions_CleanResume(t *testing.T) {
	res := ScoreResult{
		SkillsScore:      100,
		ReadabilityScore: 100,
		GrammarScore:     100,
	}

	got := BuildSuggestions(res)
	require.Len(t, got, 2, "only the unconditional entries remain")
	assert.Equal(t, CategoryFormatting, got[0].Category)
	assert.Equal(t, CategoryATS, got[1].Category)
}

func TestBuildSuggestions_DegradedSkipsGrammarEntry(t *testing.T) {
	res := ScoreResult{
		ReadabilityScore: 80,
		GrammarScore:     100,
		Degraded:         true,
	}

	for _, s := range BuildSuggestions(res) {
		assert.NotContains(t, s.Text, "grammar/style issues")
	}
}

func TestBuildSuggestions_Deterministic(t *testing.T) {
	res := ScoreResult{
		ReadabilityScore:  30,
		GrammarScore:      85,
		GrammarIssueCount: 3,
		MissingSkills:     []string{"go", "sql", "docker"},
	}
	assert.Equal(t, BuildSuggestions(res), BuildSuggestions(res))
}
