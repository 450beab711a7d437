package session

import "errors"

// Domain-specific errors for the session package.
var (
	// ErrNotFound is returned when no session exists for the given id.
	ErrNotFound = errors.New("session not found")

	// ErrCorruptState is returned when persisted state fails validation
	// on load. Corrupt state is never repaired automatically.
	ErrCorruptState = errors.New("persisted session state is corrupt")

	// ErrInvalidProfile is returned when a dataset profile fails schema
	// validation.
	ErrInvalidProfile = errors.New("invalid dataset profile")
)
