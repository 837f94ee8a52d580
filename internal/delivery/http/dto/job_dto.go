package dto

import (
	"time"

	"resume-insight/internal/domain/job"
)

type CreateJobRequest struct {
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
}

type ImportJobRequest struct {
	URL string `json:"url"`
}

type JobResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	SourceURL      string   `json:"source_url,omitempty"`
	CreatedAt      string   `json:"created_at"`
}

func NewJobResponse(p job.Posting) JobResponse {
	skills := p.RequiredSkills
	if skills == nil {
		skills = []string{}
	}
	return JobResponse{
		ID:             p.ID.String(),
		Title:          p.Title,
		Company:        p.Company,
		Description:    p.Description,
		RequiredSkills: skills,
		SourceURL:      p.SourceURL,
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func NewJobListResponse(items []job.Posting) []JobResponse {
	out := make([]JobResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewJobResponse(p))
	}
	return out
}
