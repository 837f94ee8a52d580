package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"resume-insight/internal/domain/scoring"
)

// Suggester asks the model for tailored resume improvement suggestions.
type Suggester struct {
	generator contentGenerator
}

func NewSuggester(generator contentGenerator) *Suggester {
	return &Suggester{generator: generator}
}

const suggestPromptTemplate = `Analyze this resume and provide 5-7 specific, actionable suggestions to improve it:
%s

Focus on:
1. Missing important sections
2. Skill gaps for the current market
3. How to better highlight achievements
4. Formatting and structure improvements
5. Keywords to add for applicant tracking systems

Answer with a single JSON array of objects with "category" and "text" fields, where category is one of "skills-gap", "content", "formatting", "ats-optimization". No commentary.`

func (s *Suggester) Suggest(ctx context.Context, resumeContext string) ([]scoring.Suggestion, error) {
	resumeContext = strings.TrimSpace(resumeContext)
	if resumeContext == "" {
		return nil, fmt.Errorf("empty resume context")
	}

	out, err := s.generator.GenerateContent(ctx, fmt.Sprintf(suggestPromptTemplate, resumeContext))
	if err != nil {
		return nil, fmt.Errorf("generate suggestions: %w", err)
	}

	var suggestions []scoring.Suggestion
	if err := json.Unmarshal([]byte(StripJSONFence(out)), &suggestions); err != nil {
		return nil, fmt.Errorf("decode suggestions response: %w", err)
	}
	return suggestions, nil
}
