package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchSkills_PartitionsTarget(t *testing.T) {
	cases := []struct {
		name   string
		have   []string
		target []string
	}{
		{"some overlap", []string{"Go", "SQL"}, []string{"go", "sql", "docker", "aws"}},
		{"no overlap", []string{"cobol"}, []string{"go", "rust"}},
		{"full overlap", []string{"go", "rust"}, []string{"Go", "Rust"}},
		{"empty have", nil, []string{"go"}},
		{"empty target", []string{"go"}, nil},
		{"whitespace noise", []string{"  Go  ", ""}, []string{" go", "sql ", "  "}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			matched, missing := MatchSkills(tc.have, tc.target)

			seen := map[string]struct{}{}
			for _, s := range matched {
				seen[s] = struct{}{}
			}
			for _, s := range missing {
				_, overlap := seen[s]
				assert.False(t, overlap, "matched and missing overlap on %q", s)
				seen[s] = struct{}{}
			}

			want := map[string]struct{}{}
			for _, s := range tc.target {
				if n := normalizeSkill(s); n != "" {
					want[n] = struct{}{}
				}
			}
			assert.Equal(t, want, seen, "union must equal the target set")
		})
	}
}

func TestMatchSkills_CaseInsensitiveTrimmed(t *testing.T) {
	matched, missing := MatchSkills([]string{"  PYTHON  ", "machine learning"}, []string{"Python", "Machine Learning", "nlp"})
	assert.Equal(t, []string{"python", "machine learning"}, matched)
	assert.Equal(t, []string{"nlp"}, missing)
}

func TestMatchSkills_TargetOrderPreserved(t *testing.T) {
	_, missing := MatchSkills(nil, []string{"c", "a", "b"})
	assert.Equal(t, []string{"c", "a", "b"}, missing)
}

func TestSkillsScore(t *testing.T) {
	assert.Equal(t, 0, SkillsScore(0))
	assert.Equal(t, 0, SkillsScore(-1))
	assert.Equal(t, 30, SkillsScore(3))
	assert.Equal(t, 100, SkillsScore(10))
	assert.Equal(t, 100, SkillsScore(25), "score is capped at 100")
}

func TestSkillsScore_Monotonic(t *testing.T) {
	prev := 0
	for n := 0; n <= 20; n++ {
		got := SkillsScore(n)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestMatchPercentage(t *testing.T) {
	assert.Equal(t, 0, MatchPercentage(0, 10))
	assert.Equal(t, 0, MatchPercentage(3, 0), "empty target set is defined as 0")
	assert.Equal(t, 50, MatchPercentage(2, 4))
	assert.Equal(t, 100, MatchPercentage(4, 4))
}
