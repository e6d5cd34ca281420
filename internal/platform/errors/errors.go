package apperrors

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrNoActiveSession     = errors.New("no active session")
	ErrActiveSessionExists = errors.New("active session already exists")
	ErrMinimumTimeNotMet   = errors.New("minimum session time not met")
	ErrInsufficientGold    = errors.New("insufficient gold")
	ErrEvidenceRequired    = errors.New("photo evidence required")
	ErrAffirmationLimit    = errors.New("weekly affirmation limit reached")
)
