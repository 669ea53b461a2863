package entity

import (
	"errors"
	"fmt"
)

// Field length limits enforced at the domain boundary. Summaries target
// roughly 180 characters; anything near these limits indicates a misbehaving
// summarization backend or a malformed submission.
const (
	// MaxSummaryTextLength bounds the stored summary text.
	MaxSummaryTextLength = 1000

	// MaxURLLength bounds the stored tweet URL.
	MaxURLLength = 2048
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptySummaryText indicates a summary with no text reached the
	// persistence boundary
	ErrEmptySummaryText = errors.New("summary text is required")

	// ErrSummaryTextTooLong indicates the summary exceeds MaxSummaryTextLength
	ErrSummaryTextTooLong = errors.New("summary text is too long")

	// ErrURLTooLong indicates the tweet URL exceeds MaxURLLength
	ErrURLTooLong = errors.New("tweet url is too long")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
