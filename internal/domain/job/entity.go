package job

import (
	"time"

	"github.com/google/uuid"
)

// Posting is a job opening that resumes can be matched against.
type Posting struct {
	ID             uuid.UUID
	Title          string
	Company        string
	Description    string
	RequiredSkills []string
	SourceURL      string
	CreatedAt      time.Time
}

// Match is one persisted resume-to-job match outcome.
type Match struct {
	ID            uuid.UUID
	ResumeID      uuid.UUID
	JobID         uuid.UUID
	MatchScore    int
	MatchedSkills []string
	CreatedAt     time.Time
}
