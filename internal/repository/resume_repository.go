package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-insight/internal/database"
	"resume-insight/internal/domain/resume"
)

type ResumeRepository interface {
	// Save inserts the resume, or replaces the stored one when a resume
	// with the same candidate email already exists. Returns the stored id.
	Save(ctx context.Context, r resume.Resume) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error)
	GetByEmail(ctx context.Context, email string) (resume.Resume, error)
	List(ctx context.Context) ([]resume.Resume, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type PostgresResumeRepository struct {
	db database.DB
}

func NewPostgresResumeRepository(db database.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

func (r *PostgresResumeRepository) Save(ctx context.Context, in resume.Resume) (uuid.UUID, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	id := in.ID
	email := strings.TrimSpace(strings.ToLower(in.PersonalInfo.Email))

	if id == uuid.Nil && email != "" {
		row := tx.QueryRow(ctx, `SELECT resume_id FROM personal_info WHERE email = $1`, email)
		var existing uuid.UUID
		if err := row.Scan(&existing); err == nil {
			id = existing
		}
	}

	now := time.Now().UTC()
	if id == uuid.Nil {
		id = uuid.New()
		if _, err := tx.Exec(ctx,
			`INSERT INTO resumes (id, summary, raw_text, created_at, updated_at) VALUES ($1,$2,$3,$4,$4)`,
			id, in.Summary, in.RawText, now,
		); err != nil {
			return uuid.Nil, err
		}
	} else {
		if _, err := tx.Exec(ctx,
			`UPDATE resumes SET summary=$2, raw_text=$3, updated_at=$4 WHERE id=$1`,
			id, in.Summary, in.RawText, now,
		); err != nil {
			return uuid.Nil, err
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM personal_info WHERE resume_id=$1`, id); err != nil {
		return uuid.Nil, err
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO personal_info (id, resume_id, name, email, phone, location, linkedin_url) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		uuid.New(), id, in.PersonalInfo.Name, nullableText(email), nullableText(in.PersonalInfo.Phone),
		in.PersonalInfo.Location, in.PersonalInfo.LinkedInURL,
	); err != nil {
		return uuid.Nil, err
	}

	if err := r.replaceSkills(ctx, tx, id, in.Skills); err != nil {
		return uuid.Nil, err
	}
	if err := r.replaceSections(ctx, tx, id, in); err != nil {
		return uuid.Nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *PostgresResumeRepository) replaceSkills(ctx context.Context, tx database.Tx, resumeID uuid.UUID, skills []string) error {
	if _, err := tx.Exec(ctx, `DELETE FROM resume_skills WHERE resume_id=$1`, resumeID); err != nil {
		return err
	}
	seen := map[string]struct{}{}
	for _, s := range skills {
		name := strings.TrimSpace(strings.ToLower(s))
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		if _, err := tx.Exec(ctx,
			`INSERT INTO skills (id, name) VALUES (gen_random_uuid(), $1) ON CONFLICT (name) DO NOTHING`,
			name,
		); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO resume_skills (resume_id, skill_id) SELECT $1, id FROM skills WHERE name=$2`,
			resumeID, name,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresResumeRepository) replaceSections(ctx context.Context, tx database.Tx, resumeID uuid.UUID, in resume.Resume) error {
	for _, table := range []string{"work_experience", "projects", "education"} {
		if _, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE resume_id=$1`, resumeID); err != nil {
			return err
		}
	}

	for i, we := range in.WorkExperiences {
		if _, err := tx.Exec(ctx,
			`INSERT INTO work_experience (id, resume_id, company, job_title, start_date, end_date, description, position)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			uuid.New(), resumeID, we.Company, we.JobTitle, we.StartDate, we.EndDate, we.Description, i,
		); err != nil {
			return err
		}
	}
	for i, p := range in.Projects {
		if _, err := tx.Exec(ctx,
			`INSERT INTO projects (id, resume_id, name, description, technologies, position) VALUES ($1,$2,$3,$4,$5,$6)`,
			uuid.New(), resumeID, p.Name, p.Description, p.Technologies, i,
		); err != nil {
			return err
		}
	}
	for i, e := range in.Educations {
		if _, err := tx.Exec(ctx,
			`INSERT INTO education (id, resume_id, institution, degree, end_date, position) VALUES ($1,$2,$3,$4,$5,$6)`,
			uuid.New(), resumeID, e.Institution, e.Degree, e.EndDate, i,
		); err != nil {
			return err
		}
	}
	return nil
}

func (r *PostgresResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, COALESCE(summary,''), COALESCE(raw_text,''), created_at, updated_at FROM resumes WHERE id=$1`, id)

	var out resume.Resume
	if err := row.Scan(&out.ID, &out.Summary, &out.RawText, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return resume.Resume{}, mapScanError(err)
	}
	if err := r.loadSections(ctx, &out); err != nil {
		return resume.Resume{}, err
	}
	return out, nil
}

func (r *PostgresResumeRepository) GetByEmail(ctx context.Context, email string) (resume.Resume, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	row := r.db.QueryRow(ctx, `SELECT resume_id FROM personal_info WHERE email=$1`, email)

	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		return resume.Resume{}, mapScanError(err)
	}
	return r.GetByID(ctx, id)
}

func (r *PostgresResumeRepository) List(ctx context.Context) ([]resume.Resume, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, COALESCE(summary,''), COALESCE(raw_text,''), created_at, updated_at FROM resumes ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]resume.Resume, 0)
	for rows.Next() {
		var item resume.Resume
		if err := rows.Scan(&item.ID, &item.Summary, &item.RawText, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		if err := r.loadSections(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *PostgresResumeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresResumeRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM resumes`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresResumeRepository) loadSections(ctx context.Context, out *resume.Resume) error {
	row := r.db.QueryRow(ctx,
		`SELECT COALESCE(name,''), COALESCE(email,''), COALESCE(phone,''), COALESCE(location,''), COALESCE(linkedin_url,'')
		 FROM personal_info WHERE resume_id=$1`, out.ID)
	if err := row.Scan(
		&out.PersonalInfo.Name, &out.PersonalInfo.Email, &out.PersonalInfo.Phone,
		&out.PersonalInfo.Location, &out.PersonalInfo.LinkedInURL,
	); err != nil && mapScanError(err) != ErrNotFound {
		return err
	}

	skillRows, err := r.db.Query(ctx,
		`SELECT s.name FROM skills s JOIN resume_skills rs ON rs.skill_id = s.id WHERE rs.resume_id=$1 ORDER BY s.name`,
		out.ID)
	if err != nil {
		return err
	}
	defer skillRows.Close()
	for skillRows.Next() {
		var name string
		if err := skillRows.Scan(&name); err != nil {
			return err
		}
		out.Skills = append(out.Skills, name)
	}
	if err := skillRows.Err(); err != nil {
		return err
	}

	weRows, err := r.db.Query(ctx,
		`SELECT COALESCE(company,''), COALESCE(job_title,''), COALESCE(start_date,''), COALESCE(end_date,''), COALESCE(description,'')
		 FROM work_experience WHERE resume_id=$1 ORDER BY position`, out.ID)
	if err != nil {
		return err
	}
	defer weRows.Close()
	for weRows.Next() {
		var we resume.WorkExperience
		if err := weRows.Scan(&we.Company, &we.JobTitle, &we.StartDate, &we.EndDate, &we.Description); err != nil {
			return err
		}
		out.WorkExperiences = append(out.WorkExperiences, we)
	}
	if err := weRows.Err(); err != nil {
		return err
	}

	projRows, err := r.db.Query(ctx,
		`SELECT COALESCE(name,''), COALESCE(description,''), COALESCE(technologies,'')
		 FROM projects WHERE resume_id=$1 ORDER BY position`, out.ID)
	if err != nil {
		return err
	}
	defer projRows.Close()
	for projRows.Next() {
		var p resume.Project
		if err := projRows.Scan(&p.Name, &p.Description, &p.Technologies); err != nil {
			return err
		}
		out.Projects = append(out.Projects, p)
	}
	if err := projRows.Err(); err != nil {
		return err
	}

	eduRows, err := r.db.Query(ctx,
		`SELECT COALESCE(institution,''), COALESCE(degree,''), COALESCE(end_date,'')
		 FROM education WHERE resume_id=$1 ORDER BY position`, out.ID)
	if err != nil {
		return err
	}
	defer eduRows.Close()
	for eduRows.Next() {
		var e resume.Education
		if err := eduRows.Scan(&e.Institution, &e.Degree, &e.EndDate); err != nil {
			return err
		}
		out.Educations = append(out.Educations, e)
	}
	return eduRows.Err()
}

func nullableText(s string) any {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}
