package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input errors
	ErrInvalidSampleSize = errors.New("invalid sample size")
	ErrInvalidAlpha      = errors.New("alpha outside (0,1)")
	ErrDegenerateInput   = errors.New("degenerate input")

	// Computation errors
	ErrDomain = errors.New("invalid distribution parameter")

	// Series/column errors
	ErrValidation = errors.New("validation failed")
)

// Error constructors with context
func NewInvalidSampleSizeError(op string, need, got int) error {
	return fmt.Errorf("%w: %s requires at least %d observations, got %d", ErrInvalidSampleSize, op, need, got)
}

func NewInvalidAlphaError(alpha float64) error {
	return fmt.Errorf("%w: got %v, must be strictly between 0 and 1", ErrInvalidAlpha, alpha)
}

func NewDegenerateInputError(reason string) error {
	return fmt.Errorf("%w: %s", ErrDegenerateInput, reason)
}

func NewDomainError(param string, value float64) error {
	return fmt.Errorf("%w: %s = %v", ErrDomain, param, value)
}

func NewValidationError(subject string, reason string) error {
	return fmt.Errorf("%w for %s: %s", ErrValidation, subject, reason)
}

// Error checking helpers
func IsInputError(err error) bool {
	return errors.Is(err, ErrInvalidSampleSize) ||
		errors.Is(err, ErrInvalidAlpha) ||
		errors.Is(err, ErrDegenerateInput)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
