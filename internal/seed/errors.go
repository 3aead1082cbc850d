package seed

import (
	"errors"
	"fmt"
)

// GenerationError represents an invalid input detected during seed
// generation. All failures are synchronous at the point of the bad input;
// this is a pure computation module with no transient failure modes, so
// nothing here is retryable.
type GenerationError struct {
	// Code identifies the error category.
	Code GenerationErrorCode

	// Message is a human-readable description.
	Message string

	// Details contains additional context.
	Details map[string]string
}

// GenerationErrorCode categorizes generation errors.
type GenerationErrorCode string

const (
	// ErrCodeInvalidIndex indicates a negative agent index.
	ErrCodeInvalidIndex GenerationErrorCode = "INVALID_INDEX"

	// ErrCodeEmptyPairSet indicates batch building over zero pairs.
	ErrCodeEmptyPairSet GenerationErrorCode = "EMPTY_PAIR_SET"

	// ErrCodeInvalidAgentCount indicates a non-positive agent count.
	ErrCodeInvalidAgentCount GenerationErrorCode = "INVALID_AGENT_COUNT"

	// ErrCodeInvalidAmplification indicates a non-positive chaos amplification.
	ErrCodeInvalidAmplification GenerationErrorCode = "INVALID_AMPLIFICATION"

	// ErrCodeInvalidWeights indicates sub-score weights outside [0,1] or not
	// summing to 1.
	ErrCodeInvalidWeights GenerationErrorCode = "INVALID_WEIGHTS"
)

// Error implements the error interface.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidIndex returns true if the error is an invalid-index error.
// Uses errors.As to handle wrapped errors.
func IsInvalidIndex(err error) bool {
	return hasCode(err, ErrCodeInvalidIndex)
}

// IsEmptyPairSet returns true if the error is an empty-pair-set error.
// Uses errors.As to handle wrapped errors.
func IsEmptyPairSet(err error) bool {
	return hasCode(err, ErrCodeEmptyPairSet)
}

func hasCode(err error, code GenerationErrorCode) bool {
	var ge *GenerationError
	if errors.As(err, &ge) {
		return ge.Code == code
	}
	return false
}

// NewInvalidIndexError creates a GenerationError for a negative agent index.
func NewInvalidIndexError(index int) *GenerationError {
	return &GenerationError{
		Code:    ErrCodeInvalidIndex,
		Message: fmt.Sprintf("agent index %d is negative", index),
		Details: map[string]string{"index": fmt.Sprintf("%d", index)},
	}
}

// NewEmptyPairSetError creates a GenerationError for an empty pair sequence.
func NewEmptyPairSetError() *GenerationError {
	return &GenerationError{
		Code:    ErrCodeEmptyPairSet,
		Message: "no twin-prime pairs supplied; need a bound of at least 5 to find (3,5)",
	}
}
