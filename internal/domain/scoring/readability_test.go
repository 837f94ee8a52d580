package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadabilityScore_EmptyText(t *testing.T) {
	assert.Equal(t, 0, ReadabilityScore(""))
	assert.Equal(t, 0, ReadabilityScore("   \n\t "))
}

func TestReadabilityScore_NoSentences(t *testing.T) {
	// Punctuation-only input has words (by whitespace split) but no sentence
	// containing letters or digits, so the defined floor applies.
	assert.Equal(t, 0, ReadabilityScore("--- *** ..."))
}

func TestReadabilityScore_SimpleText(t *testing.T) {
	got := ReadabilityScore("I write code. I ship it fast. The team likes it.")
	assert.Greater(t, got, 0)
	assert.LessOrEqual(t, got, 100)
}

func TestQualityFromFlesch_BandMapping(t *testing.T) {
	// Inside the target band the quality score is full marks.
	assert.Equal(t, 100.0, qualityFromFlesch(60))
	assert.Equal(t, 100.0, qualityFromFlesch(70))
	assert.Equal(t, 100.0, qualityFromFlesch(80))

	// Outside the band the penalty grows with distance.
	assert.Equal(t, 75.0, qualityFromFlesch(40))
	assert.Equal(t, 75.0, qualityFromFlesch(100))
	assert.Equal(t, 0.0, qualityFromFlesch(-20))
}

func TestQualityFromFlesch_MonotonicBelowBand(t *testing.T) {
	prev := -1.0
	for raw := -40.0; raw <= 60; raw += 5 {
		q := qualityFromFlesch(raw)
		assert.GreaterOrEqual(t, q, prev, "quality must not decrease as raw approaches the band (raw=%v)", raw)
		prev = q
	}
}

func TestQualityFromFlesch_MonotonicAboveBand(t *testing.T) {
	prev := 101.0
	for raw := 80.0; raw <= 180; raw += 5 {
		q := qualityFromFlesch(raw)
		assert.LessOrEqual(t, q, prev, "quality must not increase as raw moves past the band (raw=%v)", raw)
		prev = q
	}
}

func TestCountSentences(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"", 0},
		{"...", 0},
		{"One sentence.", 1},
		{"One. Two! Three?", 3},
		{"Trailing text without a period", 1},
		{"Ellipsis... still one", 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, countSentences(tc.text), "text=%q", tc.text)
	}
}

func TestCountSyllables(t *testing.T) {
	cases := []struct {
		word string
		want int
	}{
		{"code", 1},
		{"data", 2},
		{"engineer", 3},
		{"table", 2},
		{"a", 1},
		{"rhythm", 1},
		{"", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, countSyllables(tc.word), "word=%q", tc.word)
	}
}
