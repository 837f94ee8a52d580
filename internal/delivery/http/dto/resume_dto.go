package dto

import (
	"time"

	"resume-insight/internal/domain/resume"
)

type PersonalInfoResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	LinkedInURL string `json:"linkedin_url"`
}

type WorkExperienceResponse struct {
	Company     string `json:"company"`
	JobTitle    string `json:"job_title"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

type ProjectResponse struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
}

type EducationResponse struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	EndDate     string `json:"end_date"`
}

type ResumeResponse struct {
	ID             string                   `json:"id"`
	Summary        string                   `json:"summary"`
	PersonalInfo   PersonalInfoResponse     `json:"personal_info"`
	Skills         []string                 `json:"skills"`
	WorkExperience []WorkExperienceResponse `json:"work_experience"`
	Projects       []ProjectResponse        `json:"projects"`
	Education      []EducationResponse      `json:"education"`
	CreatedAt      string                   `json:"created_at"`
	UpdatedAt      string                   `json:"updated_at"`
}

func NewResumeResponse(r resume.Resume) ResumeResponse {
	out := ResumeResponse{
		ID:      r.ID.String(),
		Summary: r.Summary,
		PersonalInfo: PersonalInfoResponse{
			Name:        r.PersonalInfo.Name,
			Email:       r.PersonalInfo.Email,
			Phone:       r.PersonalInfo.Phone,
			Location:    r.PersonalInfo.Location,
			LinkedInURL: r.PersonalInfo.LinkedInURL,
		},
		Skills:         r.Skills,
		WorkExperience: make([]WorkExperienceResponse, 0, len(r.WorkExperiences)),
		Projects:       make([]ProjectResponse, 0, len(r.Projects)),
		Education:      make([]EducationResponse, 0, len(r.Educations)),
		CreatedAt:      r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      r.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if out.Skills == nil {
		out.Skills = []string{}
	}

	for _, we := range r.WorkExperiences {
		out.WorkExperience = append(out.WorkExperience, WorkExperienceResponse{
			Company:     we.Company,
			JobTitle:    we.JobTitle,
			StartDate:   we.StartDate,
			EndDate:     we.EndDate,
			Description: we.Description,
		})
	}
	for _, p := range r.Projects {
		out.Projects = append(out.Projects, ProjectResponse{
			Name:         p.Name,
			Description:  p.Description,
			Technologies: p.Technologies,
		})
	}
	for _, e := range r.Educations {
		out.Education = append(out.Education, EducationResponse{
			Institution: e.Institution,
			Degree:      e.Degree,
			EndDate:     e.EndDate,
		})
	}
	return out
}

func NewResumeListResponse(items []resume.Resume) []ResumeResponse {
	out := make([]ResumeResponse, 0, len(items))
	for _, r := range items {
		out = append(out, NewResumeResponse(r))
	}
	return out
}
