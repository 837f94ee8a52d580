package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-insight/internal/database"
	"resume-insight/internal/domain/user"
)

type UserRepository interface {
	Create(ctx context.Context, u user.User) (uuid.UUID, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (user.User, error)
}

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) (uuid.UUID, error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	now := time.Now().UTC()

	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, created_at, updated_at) VALUES ($1,$2,$3,$4,$4)`,
		u.ID, strings.TrimSpace(strings.ToLower(u.Email)), u.PasswordHash, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, ErrDuplicate
		}
		return uuid.Nil, err
	}
	return u.ID, nil
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at, updated_at FROM users WHERE email = $1`,
		strings.TrimSpace(strings.ToLower(email)))

	var u user.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return user.User{}, mapScanError(err)
	}
	return u, nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at, updated_at FROM users WHERE id = $1`, id)

	var u user.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return user.User{}, mapScanError(err)
	}
	return u, nil
}
