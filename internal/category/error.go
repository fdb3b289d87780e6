package category

import "errors"

var (
	ErrEmptyName = errors.New("category name cannot be empty")
	ErrEmptySlug = errors.New("category slug cannot be empty")

	ErrFailedListCategories = errors.New("failed to list categories")
	ErrFailedCreateCategory = errors.New("failed to create category")
	ErrDuplicateSlug        = errors.New("category slug already exists")

	PgUniqueViolation = "23505"
)
