package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-insight/internal/database"
)

type skillRow struct {
	name     string
	category *string
}

// fakeSkillDB serves the skills table from memory. Rows without a category
// model skills inserted by resume ingestion rather than the seeder; they are
// only returned when the query does not restrict to categorized rows.
type fakeSkillDB struct {
	rows []skillRow
}

func (f *fakeSkillDB) Exec(context.Context, string, ...any) (int64, error) {
	return 0, errors.New("not supported")
}

func (f *fakeSkillDB) Query(_ context.Context, query string, _ ...any) (database.Rows, error) {
	catalogOnly := strings.Contains(query, "category IS NOT NULL")

	names := make([]string, 0, len(f.rows))
	for _, r := range f.rows {
		if catalogOnly && r.category == nil {
			continue
		}
		names = append(names, r.name)
	}
	return &fakeNameRows{names: names}, nil
}

func (f *fakeSkillDB) QueryRow(context.Context, string, ...any) database.Row {
	return nil
}

func (f *fakeSkillDB) Ping(context.Context) error      { return nil }
func (f *fakeSkillDB) Close() error                    { return nil }
func (f *fakeSkillDB) Begin(context.Context) (database.Tx, error) {
	return nil, errors.New("not supported")
}
func (f *fakeSkillDB) SQLDB() *sql.DB { return nil }

type fakeNameRows struct {
	names []string
	pos   int
}

func (r *fakeNameRows) Close()     {}
func (r *fakeNameRows) Err() error { return nil }

func (r *fakeNameRows) Next() bool {
	return r.pos < len(r.names)
}

func (r *fakeNameRows) Scan(dest ...any) error {
	if len(dest) != 1 {
		return errors.New("unexpected scan arity")
	}
	p, ok := dest[0].(*string)
	if !ok {
		return errors.New("unexpected scan target")
	}
	*p = r.names[r.pos]
	r.pos++
	return nil
}

func category(s string) *string { return &s }

func TestReferenceNamesExcludesIngestedSkills(t *testing.T) {
	db := &fakeSkillDB{rows: []skillRow{
		{name: "docker", category: category("DevOps")},
		{name: "python", category: category("Programming Language")},
		{name: "sql", category: category("Programming Language")},
		// Inserted by a resume upload, not the seeder.
		{name: "basket weaving", category: nil},
		{name: "cobol", category: nil},
	}}

	repo := NewPostgresSkillRepository(db)
	names, err := repo.ReferenceNames(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"docker", "python", "sql"}, names)
	assert.NotContains(t, names, "basket weaving")
	assert.NotContains(t, names, "cobol")
}

func TestReferenceNamesEmptyCatalog(t *testing.T) {
	db := &fakeSkillDB{rows: []skillRow{
		{name: "basket weaving", category: nil},
	}}

	repo := NewPostgresSkillRepository(db)
	names, err := repo.ReferenceNames(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}
