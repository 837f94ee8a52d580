package scoring

import "strings"

// ResumeSnapshot is the read-only view of a resume that the engine scores.
// It is assembled by the caller from the stored resume record and must not
// be mutated for the duration of a scoring call.
type ResumeSnapshot struct {
	Skills     []string
	Experience []string
	Education  []string
	RawText    string
}

// IsEmpty reports whether the snapshot carries nothing scoreable.
func (s ResumeSnapshot) IsEmpty() bool {
	if strings.TrimSpace(s.RawText) != "" {
		return false
	}
	for _, sk := range s.Skills {
		if strings.TrimSpace(sk) != "" {
			return false
		}
	}
	for _, ex := range s.Experience {
		if strings.TrimSpace(ex) != "" {
			return false
		}
	}
	return true
}
