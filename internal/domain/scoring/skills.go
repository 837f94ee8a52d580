package scoring

import "strings"

const pointsPerSkill = 10

// MatchSkills intersects the resume's skill list with a target skill set.
// Comparison is case-insensitive on trimmed strings. Matched and missing are
// returned in target-set order so results are stable across calls; together
// they always partition the target set.
func MatchSkills(have []string, target []string) (matched []string, missing []string) {
	haveSet := make(map[string]struct{}, len(have))
	for _, s := range have {
		n := normalizeSkill(s)
		if n == "" {
			continue
		}
		haveSet[n] = struct{}{}
	}

	matched = make([]string, 0, len(target))
	missing = make([]string, 0, len(target))
	seen := make(map[string]struct{}, len(target))

	for _, t := range target {
		n := normalizeSkill(t)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}

		if _, ok := haveSet[n]; ok {
			matched = append(matched, n)
		} else {
			missing = append(missing, n)
		}
	}
	return matched, missing
}

// SkillsScore awards 10 points per matched skill, capped at 100.
func SkillsScore(matchedCount int) int {
	if matchedCount <= 0 {
		return 0
	}
	return clampScore(matchedCount * pointsPerSkill)
}

// MatchPercentage reports matched coverage of the target set. An empty
// target yields 0 rather than dividing by zero.
func MatchPercentage(matchedCount, targetCount int) int {
	if targetCount <= 0 || matchedCount <= 0 {
		return 0
	}
	return clampScore(matchedCount * 100 / targetCount)
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
