package usecase

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrResumeNotFound      = errors.New("resume not found")
	ErrJobNotFound         = errors.New("job posting not found")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptyDocument       = errors.New("document contains no readable text")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInternal            = errors.New("internal error")
)
