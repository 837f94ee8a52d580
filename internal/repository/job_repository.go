package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"resume-insight/internal/database"
	"resume-insight/internal/domain/job"
)

type JobRepository interface {
	Create(ctx context.Context, p job.Posting) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error)
	List(ctx context.Context) ([]job.Posting, error)
	Count(ctx context.Context) (int64, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, p job.Posting) (uuid.UUID, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	skills, err := json.Marshal(p.RequiredSkills)
	if err != nil {
		return uuid.Nil, err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO job_postings (id, title, company, description, required_skills, source_url, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.Title, p.Company, p.Description, skills, nullableText(p.SourceURL), p.CreatedAt,
	)
	if err != nil {
		return uuid.Nil, err
	}
	return p.ID, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Posting, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, COALESCE(company,''), COALESCE(description,''), required_skills, COALESCE(source_url,''), created_at
		 FROM job_postings WHERE id = $1`, id)
	return scanPosting(row)
}

func (r *PostgresJobRepository) List(ctx context.Context) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, COALESCE(company,''), COALESCE(description,''), required_skills, COALESCE(source_url,''), created_at
		 FROM job_postings ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresJobRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_postings`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPosting(row rowScanner) (job.Posting, error) {
	var p job.Posting
	var skills []byte
	if err := row.Scan(&p.ID, &p.Title, &p.Company, &p.Description, &skills, &p.SourceURL, &p.CreatedAt); err != nil {
		return job.Posting{}, mapScanError(err)
	}
	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &p.RequiredSkills); err != nil {
			return job.Posting{}, err
		}
	}
	return p, nil
}
