package scoring

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
)

const (
	// Grammar issues cost 5 points each, floored at 0.
	pointsPerIssue = 5

	// When the grammar checker is unavailable the sub-score falls back to
	// this neutral value so the overall score can still be computed.
	grammarNeutralScore = 100

	maxReportedIssues = 10

	weightTolerance = 1e-6
)

var (
	// ErrInvalidSnapshot rejects snapshots with nothing to score.
	ErrInvalidSnapshot = errors.New("resume snapshot is empty")

	// ErrInvalidWeights rejects weight sets that do not sum to 1.0. Raised
	// at engine construction, never at scoring time.
	ErrInvalidWeights = errors.New("invalid scoring weights")
)

// Issue is a single problem flagged by the grammar checker.
type Issue struct {
	Message string `json:"message"`
	Context string `json:"context"`
	Offset  int    `json:"offset"`
	Length  int    `json:"length"`
}

// GrammarChecker flags grammar and style issues in free text. Implementations
// must honor the context deadline; the engine treats any error as a degraded
// checker and falls back to a neutral sub-score.
type GrammarChecker interface {
	Check(ctx context.Context, text string) ([]Issue, error)
}

// Weights is the fixed aggregation policy for the overall score.
type Weights struct {
	Skills      float64
	Readability float64
	Grammar     float64
}

// DefaultWeights mirrors the platform policy: skills dominate slightly over
// readability and grammar.
func DefaultWeights() Weights {
	return Weights{Skills: 0.4, Readability: 0.3, Grammar: 0.3}
}

func (w Weights) Validate() error {
	sum := w.Skills + w.Readability + w.Grammar
	if math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("%w: sum %.4f, want 1.0", ErrInvalidWeights, sum)
	}
	if w.Skills < 0 || w.Readability < 0 || w.Grammar < 0 {
		return fmt.Errorf("%w: negative weight", ErrInvalidWeights)
	}
	return nil
}

// ScoreResult is the outcome of one scoring invocation. All sub-scores and
// the overall score are clamped to [0,100]. MatchedSkills and MissingSkills
// are disjoint and together cover the reference skill set.
type ScoreResult struct {
	SkillsScore      int `json:"skills_score"`
	ReadabilityScore int `json:"readability_score"`
	GrammarScore     int `json:"grammar_score"`
	OverallScore     int `json:"overall_score"`

	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`

	GrammarIssues     []Issue `json:"grammar_issues"`
	GrammarIssueCount int     `json:"grammar_issue_count"`

	// Degraded is set when the grammar checker was unavailable and the
	// grammar sub-score is the documented neutral fallback.
	Degraded bool `json:"degraded"`
}

// JobMatch is the result of matching a resume's skills against one job's
// required skills. Both the coverage percentage and the generic skills score
// are reported; callers pick whichever fits their surface.
type JobMatch struct {
	MatchPercentage int      `json:"match_percentage"`
	SkillsScore     int      `json:"skills_score"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	TotalRequired   int      `json:"total_required"`
	TotalMatched    int      `json:"total_matched"`
}

// Engine scores resume snapshots. It is stateless apart from its immutable
// configuration and may be shared across goroutines as long as the grammar
// checker is re-entrant.
type Engine struct {
	weights   Weights
	reference []string
	grammar   GrammarChecker
	logger    *zap.Logger
}

// NewEngine builds a scoring engine. The reference skill set is copied and
// normalized once here; weight validation fails fast so a misconfigured
// engine is never constructed.
func NewEngine(weights Weights, referenceSkills []string, grammar GrammarChecker, logger *zap.Logger) (*Engine, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ref := make([]string, 0, len(referenceSkills))
	seen := make(map[string]struct{}, len(referenceSkills))
	for _, s := range referenceSkills {
		n := normalizeSkill(s)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		ref = append(ref, n)
	}

	return &Engine{
		weights:   weights,
		reference: ref,
		grammar:   grammar,
		logger:    logger,
	}, nil
}

// ReferenceSkills returns a copy of the engine's matching universe.
func (e *Engine) ReferenceSkills() []string {
	out := make([]string, len(e.reference))
	copy(out, e.reference)
	return out
}

// Score computes all sub-scores and the weighted overall score for one
// snapshot. The only blocking step is the grammar check, which is bounded by
// the caller's context; a checker failure degrades to the neutral sub-score
// instead of failing the call.
func (e *Engine) Score(ctx context.Context, snap ResumeSnapshot) (ScoreResult, error) {
	if snap.IsEmpty() {
		return ScoreResult{}, ErrInvalidSnapshot
	}

	matched, missing := MatchSkills(snap.Skills, e.reference)

	res := ScoreResult{
		SkillsScore:   SkillsScore(len(matched)),
		MatchedSkills: matched,
		MissingSkills: missing,
		GrammarIssues: []Issue{},
	}

	text := snap.RawText
	res.ReadabilityScore = ReadabilityScore(text)

	res.GrammarScore = grammarNeutralScore
	if strings.TrimSpace(text) != "" && e.grammar != nil {
		issues, err := e.grammar.Check(ctx, text)
		if err != nil {
			res.Degraded = true
			e.logger.Warn("grammar checker unavailable, using neutral score",
				zap.Int("fallback_score", grammarNeutralScore),
				zap.Error(err),
			)
		} else {
			res.GrammarIssueCount = len(issues)
			res.GrammarScore = clampScore(100 - pointsPerIssue*len(issues))
			if len(issues) > maxReportedIssues {
				issues = issues[:maxReportedIssues]
			}
			res.GrammarIssues = issues
		}
	}

	res.OverallScore = e.aggregate(res.SkillsScore, res.ReadabilityScore, res.GrammarScore)
	return res, nil
}

// MatchJob matches resume skills against a job's required skill set. Pure
// function of its inputs; an empty required set yields a zero match.
func (e *Engine) MatchJob(resumeSkills []string, requiredSkills []string) JobMatch {
	matched, missing := MatchSkills(resumeSkills, requiredSkills)
	total := len(matched) + len(missing)

	return JobMatch{
		MatchPercentage: MatchPercentage(len(matched), total),
		SkillsScore:     SkillsScore(len(matched)),
		MatchedSkills:   matched,
		MissingSkills:   missing,
		TotalRequired:   total,
		TotalMatched:    len(matched),
	}
}

func (e *Engine) aggregate(skills, readability, grammar int) int {
	overall := e.weights.Skills*float64(skills) +
		e.weights.Readability*float64(readability) +
		e.weights.Grammar*float64(grammar)
	return clampScore(int(math.Round(overall)))
}
