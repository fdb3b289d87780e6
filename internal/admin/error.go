package admin

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrMissingImage = errors.New("product image is required")
	ErrUploadFailed = errors.New("failed to upload image")
	ErrWriteFailure = errors.New("failed to write record")
)

// ValidationError lists every rejected field with a reason.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
