package domain

import "errors"

var (
	// ErrValidation marks malformed caller input.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound marks an unknown SKU, venue or cart line.
	ErrNotFound = errors.New("not found")

	// ErrUnauthenticated marks a session-gated operation invoked
	// without a live session.
	ErrUnauthenticated = errors.New("unauthenticated")
)
