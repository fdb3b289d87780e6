package user

import "errors"

var (
	ErrDuplicateEmail       = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidInput         = errors.New("email and password are required")
	ErrMissingClientID      = errors.New("client id is required")
	ErrFailedLoadRegistry   = errors.New("failed to load user registry")
	ErrFailedSaveRegistry   = errors.New("failed to save user registry")
	ErrFailedPersistSession = errors.New("failed to persist session")
)
