package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"resume-insight/internal/domain/resume"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Extractor turns raw resume text into the structured resume record via a
// schema-constrained Gemini prompt.
type Extractor struct {
	generator contentGenerator
}

func NewExtractor(generator contentGenerator) *Extractor {
	return &Extractor{generator: generator}
}

// parsedResume mirrors the JSON schema the prompt asks the model to follow.
type parsedResume struct {
	PersonalInfo struct {
		Name        string `json:"name"`
		Email       string `json:"email"`
		Phone       string `json:"phone"`
		Location    string `json:"location"`
		LinkedInURL string `json:"linkedin_url"`
	} `json:"personal_info"`
	Summary        string   `json:"summary"`
	Skills         []string `json:"skills"`
	WorkExperience []struct {
		Company     string `json:"company"`
		JobTitle    string `json:"job_title"`
		StartDate   string `json:"start_date"`
		EndDate     string `json:"end_date"`
		Description string `json:"description"`
	} `json:"work_experience"`
	Projects []struct {
		Name         string `json:"name"`
		Description  string `json:"description"`
		Technologies string `json:"technologies"`
	} `json:"projects"`
	Education []struct {
		Institution string `json:"institution"`
		Degree      string `json:"degree"`
		EndDate     string `json:"end_date"`
	} `json:"education"`
}

const extractPromptTemplate = `You are an expert resume parsing AI. Extract key information from the resume text below and answer with a single JSON object only, no commentary.

The JSON object must have exactly this shape:
{
  "personal_info": {"name": "", "email": "", "phone": "", "location": "", "linkedin_url": ""},
  "summary": "",
  "skills": [""],
  "work_experience": [{"company": "", "job_title": "", "start_date": "", "end_date": "", "description": ""}],
  "projects": [{"name": "", "description": "", "technologies": ""}],
  "education": [{"institution": "", "degree": "", "end_date": ""}]
}

Resume text:
%s`

// ExtractResume asks the model for structured data and maps it onto the
// domain record. The model's markdown fences are tolerated and stripped.
func (e *Extractor) ExtractResume(ctx context.Context, rawText string) (resume.Resume, error) {
	rawText = strings.TrimSpace(rawText)
	if rawText == "" {
		return resume.Resume{}, fmt.Errorf("empty resume text")
	}

	out, err := e.generator.GenerateContent(ctx, fmt.Sprintf(extractPromptTemplate, rawText))
	if err != nil {
		return resume.Resume{}, fmt.Errorf("extract resume: %w", err)
	}

	var parsed parsedResume
	if err := json.Unmarshal([]byte(StripJSONFence(out)), &parsed); err != nil {
		return resume.Resume{}, fmt.Errorf("decode extraction response: %w", err)
	}

	r := resume.Resume{
		Summary: parsed.Summary,
		PersonalInfo: resume.PersonalInfo{
			Name:        parsed.PersonalInfo.Name,
			Email:       parsed.PersonalInfo.Email,
			Phone:       parsed.PersonalInfo.Phone,
			Location:    parsed.PersonalInfo.Location,
			LinkedInURL: parsed.PersonalInfo.LinkedInURL,
		},
		Skills:  parsed.Skills,
		RawText: rawText,
	}
	for _, we := range parsed.WorkExperience {
		r.WorkExperiences = append(r.WorkExperiences, resume.WorkExperience{
			Company:     we.Company,
			JobTitle:    we.JobTitle,
			StartDate:   we.StartDate,
			EndDate:     we.EndDate,
			Description: we.Description,
		})
	}
	for _, p := range parsed.Projects {
		r.Projects = append(r.Projects, resume.Project{
			Name:         p.Name,
			Description:  p.Description,
			Technologies: p.Technologies,
		})
	}
	for _, ed := range parsed.Education {
		r.Educations = append(r.Educations, resume.Education{
			Institution: ed.Institution,
			Degree:      ed.Degree,
			EndDate:     ed.EndDate,
		})
	}
	return r, nil
}

const jobSkillsPromptTemplate = `Extract the technical skills explicitly required by the job description below. Answer with a single JSON array of lowercase skill names only, no commentary.

Job description:
%s`

// ExtractJobSkills pulls the required-skill list out of a job description.
func (e *Extractor) ExtractJobSkills(ctx context.Context, description string) ([]string, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("empty job description")
	}

	out, err := e.generator.GenerateContent(ctx, fmt.Sprintf(jobSkillsPromptTemplate, description))
	if err != nil {
		return nil, fmt.Errorf("extract job skills: %w", err)
	}

	var skills []string
	if err := json.Unmarshal([]byte(StripJSONFence(out)), &skills); err != nil {
		return nil, fmt.Errorf("decode skills response: %w", err)
	}
	return skills, nil
}
