package resume

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-insight/internal/domain/scoring"
)

// Resume is the stored aggregate produced by the AI extraction step.
type Resume struct {
	ID              uuid.UUID
	Summary         string
	PersonalInfo    PersonalInfo
	Skills          []string
	WorkExperiences []WorkExperience
	Projects        []Project
	Educations      []Education
	RawText         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type PersonalInfo struct {
	Name        string
	Email       string
	Phone       string
	Location    string
	LinkedInURL string
}

type WorkExperience struct {
	Company     string
	JobTitle    string
	StartDate   string
	EndDate     string
	Description string
}

type Project struct {
	Name         string
	Description  string
	Technologies string
}

type Education struct {
	Institution string
	Degree      string
	EndDate     string
}

// Snapshot assembles the read-only view the scoring engine consumes. The raw
// text prefers the originally extracted document text; when that is absent it
// is recomposed from the stored sections, in a fixed order so scoring stays
// deterministic.
func (r Resume) Snapshot() scoring.ResumeSnapshot {
	experiences := make([]string, 0, len(r.WorkExperiences))
	for _, we := range r.WorkExperiences {
		if d := strings.TrimSpace(we.Description); d != "" {
			experiences = append(experiences, d)
		}
	}

	educations := make([]string, 0, len(r.Educations))
	for _, e := range r.Educations {
		parts := make([]string, 0, 2)
		if e.Degree != "" {
			parts = append(parts, e.Degree)
		}
		if e.Institution != "" {
			parts = append(parts, e.Institution)
		}
		if len(parts) > 0 {
			educations = append(educations, strings.Join(parts, " at "))
		}
	}

	text := strings.TrimSpace(r.RawText)
	if text == "" {
		sections := make([]string, 0, 4)
		if s := strings.TrimSpace(r.Summary); s != "" {
			sections = append(sections, s)
		}
		if len(experiences) > 0 {
			sections = append(sections, strings.Join(experiences, "\n"))
		}
		for _, p := range r.Projects {
			if d := strings.TrimSpace(p.Description); d != "" {
				sections = append(sections, d)
			}
		}
		if len(educations) > 0 {
			sections = append(sections, strings.Join(educations, "\n"))
		}
		text = strings.Join(sections, "\n")
	}

	return scoring.ResumeSnapshot{
		Skills:     append([]string(nil), r.Skills...),
		Experience: experiences,
		Education:  educations,
		RawText:    text,
	}
}
