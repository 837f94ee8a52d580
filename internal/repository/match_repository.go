package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"resume-insight/internal/database"
	"resume-insight/internal/domain/job"
)

type MatchRepository interface {
	Create(ctx context.Context, m job.Match) (uuid.UUID, error)
	ListByResumeID(ctx context.Context, resumeID uuid.UUID) ([]job.Match, error)
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

func (r *PostgresMatchRepository) Create(ctx context.Context, m job.Match) (uuid.UUID, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	matched, err := json.Marshal(m.MatchedSkills)
	if err != nil {
		return uuid.Nil, err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO resume_job_matches (id, resume_id, job_id, match_score, matched_skills, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		m.ID, m.ResumeID, m.JobID, m.MatchScore, matched, m.CreatedAt,
	)
	if err != nil {
		return uuid.Nil, err
	}
	return m.ID, nil
}

func (r *PostgresMatchRepository) ListByResumeID(ctx context.Context, resumeID uuid.UUID) ([]job.Match, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, resume_id, job_id, match_score, matched_skills, created_at
		 FROM resume_job_matches WHERE resume_id = $1 ORDER BY created_at DESC`, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Match, 0)
	for rows.Next() {
		var m job.Match
		var matched []byte
		if err := rows.Scan(&m.ID, &m.ResumeID, &m.JobID, &m.MatchScore, &matched, &m.CreatedAt); err != nil {
			return nil, err
		}
		if len(matched) > 0 {
			if err := json.Unmarshal(matched, &m.MatchedSkills); err != nil {
				return nil, err
			}
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
