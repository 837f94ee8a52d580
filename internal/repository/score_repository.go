package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"resume-insight/internal/database"
)

// ScoreRecord is the persisted outcome of a resume analysis. One row per
// resume; re-analysis overwrites the previous record.
type ScoreRecord struct {
	ResumeID         uuid.UUID
	OverallScore     int
	SkillsScore      int
	ReadabilityScore int
	GrammarScore     int
	Degraded         bool
	AnalyzedAt       time.Time
}

type ScoreRepository interface {
	Upsert(ctx context.Context, rec ScoreRecord) error
	GetByResumeID(ctx context.Context, resumeID uuid.UUID) (ScoreRecord, error)
	AverageOverall(ctx context.Context) (float64, int64, error)
}

type PostgresScoreRepository struct {
	db database.DB
}

func NewPostgresScoreRepository(db database.DB) *PostgresScoreRepository {
	return &PostgresScoreRepository{db: db}
}

func (r *PostgresScoreRepository) Upsert(ctx context.Context, rec ScoreRecord) error {
	if rec.AnalyzedAt.IsZero() {
		rec.AnalyzedAt = time.Now().UTC()
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO resume_scores (id, resume_id, overall_score, skills_score, readability_score, grammar_score, degraded, analyzed_at)
		 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (resume_id) DO UPDATE SET
		   overall_score = EXCLUDED.overall_score,
		   skills_score = EXCLUDED.skills_score,
		   readability_score = EXCLUDED.readability_score,
		   grammar_score = EXCLUDED.grammar_score,
		   degraded = EXCLUDED.degraded,
		   analyzed_at = EXCLUDED.analyzed_at`,
		rec.ResumeID, rec.OverallScore, rec.SkillsScore, rec.ReadabilityScore,
		rec.GrammarScore, rec.Degraded, rec.AnalyzedAt,
	)
	return err
}

func (r *PostgresScoreRepository) GetByResumeID(ctx context.Context, resumeID uuid.UUID) (ScoreRecord, error) {
	row := r.db.QueryRow(ctx,
		`SELECT resume_id, overall_score, skills_score, readability_score, grammar_score, degraded, analyzed_at
		 FROM resume_scores WHERE resume_id = $1`, resumeID)

	var rec ScoreRecord
	if err := row.Scan(
		&rec.ResumeID, &rec.OverallScore, &rec.SkillsScore, &rec.ReadabilityScore,
		&rec.GrammarScore, &rec.Degraded, &rec.AnalyzedAt,
	); err != nil {
		return ScoreRecord{}, mapScanError(err)
	}
	return rec, nil
}

func (r *PostgresScoreRepository) AverageOverall(ctx context.Context) (float64, int64, error) {
	var avg float64
	var count int64
	row := r.db.QueryRow(ctx, `SELECT COALESCE(AVG(overall_score), 0), COUNT(*) FROM resume_scores`)
	if err := row.Scan(&avg, &count); err != nil {
		return 0, 0, err
	}
	return avg, count, nil
}
