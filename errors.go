package devserve

import "errors"

var (
	// ErrNotFound is returned when neither the requested file nor the
	// fallback document exists
	ErrNotFound = errors.New("not found")
	// ErrInternal is returned when an internal error occurs
	ErrInternal = errors.New("internal error")
	// ErrInvalidPath is returned when a request path fails validation
	ErrInvalidPath = errors.New("invalid path")
)
