package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"resume-insight/internal/domain/user"
	"resume-insight/internal/pkg/jwt"
	"resume-insight/internal/repository"
)

const minPasswordLength = 8

// TokenPair is what a successful login or refresh returns.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthUsecase struct {
	users  repository.UserRepository
	tokens jwt.Service
	logger *zap.Logger
}

func NewAuthUsecase(users repository.UserRepository, tokens jwt.Service, logger *zap.Logger) *AuthUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthUsecase{users: users, tokens: tokens, logger: logger}
}

func (u *AuthUsecase) Register(ctx context.Context, email, password string) (user.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return user.User{}, fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return user.User{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		u.logger.Error("password hash failed", zap.Error(err))
		return user.User{}, ErrInternal
	}

	id, err := u.users.Create(ctx, user.User{Email: email, PasswordHash: string(hash)})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return user.User{}, ErrEmailTaken
		}
		u.logger.Error("user create failed", zap.Error(err))
		return user.User{}, ErrInternal
	}

	created, err := u.users.GetByID(ctx, id)
	if err != nil {
		u.logger.Error("user reload failed", zap.Error(err))
		return user.User{}, ErrInternal
	}

	u.logger.Info("user registered", zap.String("user_id", id.String()))
	return created, nil
}

func (u *AuthUsecase) Login(ctx context.Context, email, password string) (TokenPair, error) {
	account, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return TokenPair{}, ErrUnauthorized
		}
		u.logger.Error("user lookup failed", zap.Error(err))
		return TokenPair{}, ErrInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return TokenPair{}, ErrUnauthorized
	}

	return u.issueTokens(account)
}

func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := u.tokens.ValidateToken(refreshToken)
	if err != nil || claims.TokenType != jwt.TokenTypeRefresh {
		return TokenPair{}, ErrUnauthorized
	}

	account, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return TokenPair{}, ErrUnauthorized
		}
		u.logger.Error("user lookup failed", zap.Error(err))
		return TokenPair{}, ErrInternal
	}

	return u.issueTokens(account)
}

func (u *AuthUsecase) issueTokens(account user.User) (TokenPair, error) {
	access, err := u.tokens.GenerateAccessToken(account.ID, account.Email)
	if err != nil {
		u.logger.Error("access token sign failed", zap.Error(err))
		return TokenPair{}, ErrInternal
	}
	refresh, err := u.tokens.GenerateRefreshToken(account.ID)
	if err != nil {
		u.logger.Error("refresh token sign failed", zap.Error(err))
		return TokenPair{}, ErrInternal
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
