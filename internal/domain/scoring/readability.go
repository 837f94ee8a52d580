package scoring

import (
	"math"
	"strings"
	"unicode"
)

// Flesch Reading Ease band considered appropriate for professional
// documents. Raw scores inside the band map to full marks; outside it the
// quality score drops linearly with distance to the nearest band edge.
const (
	targetBandLow  = 60.0
	targetBandHigh = 80.0

	// Points lost per unit of distance from the target band. At 1.25 the
	// quality score reaches 0 once the raw index is 80 points outside the
	// band, which keeps the mapping monotonic on each side.
	bandPenaltyPerPoint = 1.25
)

// ReadabilityScore maps resume text onto the 0-100 quality scale via the
// Flesch Reading Ease index. Text with no words or no sentences scores a
// defined floor of 0 instead of evaluating the formula.
func ReadabilityScore(text string) int {
	words := countWords(text)
	sentences := countSentences(text)
	if words == 0 || sentences == 0 {
		return 0
	}

	syllables := countSyllablesInText(text)

	raw := 206.835 -
		1.015*(float64(words)/float64(sentences)) -
		84.6*(float64(syllables)/float64(words))

	return clampScore(int(math.Round(qualityFromFlesch(raw))))
}

func qualityFromFlesch(raw float64) float64 {
	var dist float64
	switch {
	case raw < targetBandLow:
		dist = targetBandLow - raw
	case raw > targetBandHigh:
		dist = raw - targetBandHigh
	default:
		return 100
	}
	q := 100 - bandPenaltyPerPoint*dist
	if q < 0 {
		return 0
	}
	return q
}

func countWords(text string) int {
	return len(strings.Fields(text))
}

func countSentences(text string) int {
	n := 0
	inSentence := false
	for _, r := range text {
		switch {
		case r == '.' || r == '!' || r == '?':
			if inSentence {
				n++
				inSentence = false
			}
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			inSentence = true
		}
	}
	// Trailing text without terminal punctuation still counts.
	if inSentence {
		n++
	}
	return n
}

func countSyllablesInText(text string) int {
	total := 0
	for _, w := range strings.Fields(text) {
		total += countSyllables(w)
	}
	return total
}

// countSyllables estimates syllables by counting vowel groups, with the
// usual silent-e adjustment. Every word counts as at least one syllable.
func countSyllables(word string) int {
	word = strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r)
	}))
	if word == "" {
		return 0
	}

	groups := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			groups++
		}
		prevVowel = v
	}

	if strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") && groups > 1 {
		groups--
	}
	if groups < 1 {
		groups = 1
	}
	return groups
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
