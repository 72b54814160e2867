package session

import "errors"

var (
	// ErrInvalidProfile reports a profile that fails validation.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrSessionNotFound reports an unknown or evicted session id.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionEnded reports an answer submitted to an ended session.
	ErrSessionEnded = errors.New("session already ended")
)
