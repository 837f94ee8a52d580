package seeder

import (
	"context"
	"fmt"

	"resume-insight/internal/database"
)

// SkillsSeeder installs the canonical reference skill catalog used as the
// matching universe when no job-specific skill list is supplied.
type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, it := range referenceSkills {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, name, category) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.Category,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

var referenceSkills = []struct {
	Name     string
	Category string
}{
	{"python", "Programming Language"},
	{"java", "Programming Language"},
	{"c++", "Programming Language"},
	{"javascript", "Programming Language"},
	{"sql", "Programming Language"},
	{"html", "Web"},
	{"css", "Web"},
	{"react", "Web Framework"},
	{"angular", "Web Framework"},
	{"vue", "Web Framework"},
	{"nodejs", "Runtime"},
	{"django", "Web Framework"},
	{"flask", "Web Framework"},
	{"git", "Tooling"},
	{"docker", "DevOps"},
	{"kubernetes", "DevOps"},
	{"aws", "Cloud"},
	{"azure", "Cloud"},
	{"gcp", "Cloud"},
	{"machine learning", "Data Science"},
	{"deep learning", "Data Science"},
	{"nlp", "Data Science"},
	{"data analysis", "Data Science"},
	{"pandas", "Data Science"},
	{"numpy", "Data Science"},
	{"scikit-learn", "Data Science"},
	{"tensorflow", "Data Science"},
	{"pytorch", "Data Science"},
	{"api", "Architecture"},
	{"rest", "Architecture"},
	{"mongodb", "Database"},
	{"postgresql", "Database"},
	{"mysql", "Database"},
}
