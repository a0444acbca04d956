package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound       = errors.New("resource not found")
	ErrResultNotFound = fmt.Errorf("%w: result", ErrNotFound)

	// Structural validation errors
	ErrMalformedPartition = errors.New("purview groups do not partition the index set")
	ErrInvalidRepertoire  = errors.New("repertoire shape does not match its data")
	ErrNegativePhi        = errors.New("phi must be non-negative")
	ErrInvalidDirection   = errors.New("direction must be cause or effect")
	ErrNilCollaborator    = errors.New("required collaborator is nil")

	// Search errors
	ErrEmptySubsystem = errors.New("subsystem has no node indices")
	ErrNoPurviews     = errors.New("no candidate purviews for mechanism")
)

// Error constructors with context
func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

func NewPartitionError(detail string) error {
	return fmt.Errorf("%w: %s", ErrMalformedPartition, detail)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrMalformedPartition) ||
		errors.Is(err, ErrInvalidRepertoire) ||
		errors.Is(err, ErrNegativePhi) ||
		errors.Is(err, ErrInvalidDirection)
}
