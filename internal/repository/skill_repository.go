package repository

import (
	"context"

	"resume-insight/internal/database"
)

// SkillCount pairs a catalog skill with how many resumes list it.
type SkillCount struct {
	Name  string
	Count int64
}

type SkillRepository interface {
	// ReferenceNames returns the seeded catalog skill names, ordered
	// alphabetically. The scoring engine uses this list as its fixed
	// matching universe.
	ReferenceNames(ctx context.Context) ([]string, error)
	TopSkills(ctx context.Context, limit int) ([]SkillCount, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

// Only the seeder writes a category. Resume ingestion inserts extracted
// skills without one, so the filter keeps user-supplied skills out of the
// catalog.
func (r *PostgresSkillRepository) ReferenceNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT name FROM skills WHERE category IS NOT NULL ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (r *PostgresSkillRepository) TopSkills(ctx context.Context, limit int) ([]SkillCount, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := r.db.Query(ctx,
		`SELECT s.name, COUNT(rs.resume_id) AS cnt
		 FROM skills s
		 JOIN resume_skills rs ON rs.skill_id = s.id
		 GROUP BY s.name
		 ORDER BY cnt DESC, s.name
		 LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SkillCount, 0, limit)
	for rows.Next() {
		var sc SkillCount
		if err := rows.Scan(&sc.Name, &sc.Count); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}
