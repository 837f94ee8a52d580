package scoring

import "fmt"

type SuggestionCategory string

const (
	CategorySkillsGap  SuggestionCategory = "skills-gap"
	CategoryContent    SuggestionCategory = "content"
	CategoryFormatting SuggestionCategory = "formatting"
	CategoryATS        SuggestionCategory = "ats-optimization"
)

// Suggestion is one categorized improvement recommendation.
type Suggestion struct {
	Category SuggestionCategory `json:"category"`
	Text     string             `json:"text"`
}

// BuildSuggestions derives the ordered suggestion list from a score result.
// Ordering is stable: skills-gap entries first (in reference-set order),
// then content, then the unconditional formatting and ATS entries. Two calls
// with the same result produce identical sequences.
func BuildSuggestions(res ScoreResult) []Suggestion {
	out := make([]Suggestion, 0, len(res.MissingSkills)+4)

	for _, skill := range res.MissingSkills {
		out = append(out, Suggestion{
			Category: CategorySkillsGap,
			Text:     fmt.Sprintf("Consider adding experience with %s, a commonly requested industry skill.", skill),
		})
	}

	if res.ReadabilityScore < int(targetBandLow) {
		out = append(out, Suggestion{
			Category: CategoryContent,
			Text:     "Simplify sentence structure: use shorter sentences and plainer wording.",
		})
	}
	if !res.Degraded && res.GrammarScore < 100 {
		out = append(out, Suggestion{
			Category: CategoryContent,
			Text:     fmt.Sprintf("Found %d grammar/style issues; review and correct them.", res.GrammarIssueCount),
		})
	}

	out = append(out,
		Suggestion{
			Category: CategoryFormatting,
			Text:     "Use consistent section headings, bullet points, and date formats throughout.",
		},
		Suggestion{
			Category: CategoryATS,
			Text:     "Mirror keywords from target job descriptions so applicant tracking systems rank the resume higher.",
		},
	)

	return out
}
