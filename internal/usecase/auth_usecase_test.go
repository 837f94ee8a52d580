package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-insight/internal/domain/user"
	"resume-insight/internal/pkg/jwt"
	"resume-insight/internal/repository"
)

type stubUserRepo struct {
	byID map[uuid.UUID]user.User
}

func (s *stubUserRepo) Create(_ context.Context, u user.User) (uuid.UUID, error) {
	for _, existing := range s.byID {
		if existing.Email == u.Email {
			return uuid.Nil, repository.ErrDuplicate
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if s.byID == nil {
		s.byID = map[uuid.UUID]user.User{}
	}
	s.byID[u.ID] = u
	return u.ID, nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range s.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, repository.ErrNotFound
}

func (s *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return user.User{}, repository.ErrNotFound
	}
	return u, nil
}

func newAuthFixture() *AuthUsecase {
	tokens := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	return NewAuthUsecase(&stubUserRepo{}, tokens, nil)
}

func TestAuthUsecase_RegisterAndLogin(t *testing.T) {
	uc := newAuthFixture()
	ctx := context.Background()

	created, err := uc.Register(ctx, "Dev@Example.com", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", created.Email)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.NotEqual(t, "correct horse battery", created.PasswordHash)

	pair, err := uc.Login(ctx, "dev@example.com", "correct horse battery")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
}

func TestAuthUsecase_Register_Validation(t *testing.T) {
	uc := newAuthFixture()
	ctx := context.Background()

	_, err := uc.Register(ctx, "not-an-email", "long enough password")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Register(ctx, "dev@example.com", "short")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAuthUsecase_Register_DuplicateEmail(t *testing.T) {
	uc := newAuthFixture()
	ctx := context.Background()

	_, err := uc.Register(ctx, "dev@example.com", "correct horse battery")
	require.NoError(t, err)

	_, err = uc.Register(ctx, "dev@example.com", "another password here")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthUsecase_Login_WrongPassword(t *testing.T) {
	uc := newAuthFixture()
	ctx := context.Background()

	_, err := uc.Register(ctx, "dev@example.com", "correct horse battery")
	require.NoError(t, err)

	_, err = uc.Login(ctx, "dev@example.com", "wrong password entirely")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = uc.Login(ctx, "nobody@example.com", "correct horse battery")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthUsecase_Refresh(t *testing.T) {
	uc := newAuthFixture()
	ctx := context.Background()

	_, err := uc.Register(ctx, "dev@example.com", "correct horse battery")
	require.NoError(t, err)

	pair, err := uc.Login(ctx, "dev@example.com", "correct horse battery")
	require.NoError(t, err)

	refreshed, err := uc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// Access tokens are not accepted on the refresh path.
	_, err = uc.Refresh(ctx, pair.AccessToken)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = uc.Refresh(ctx, "garbage.token.value")
	assert.ErrorIs(t, err, ErrUnauthorized)
}
