package core

import (
	"errors"
	"fmt"
	"testing"
)

// TestIsNotFoundError tests not-found classification across wrapping
func TestIsNotFoundError(t *testing.T) {
	if !IsNotFoundError(ErrNotFound) {
		t.Error("Expected ErrNotFound to classify as not-found")
	}
	if !IsNotFoundError(ErrResultNotFound) {
		t.Error("Expected ErrResultNotFound to classify as not-found")
	}

	wrapped := fmt.Errorf("%w: abc-123", ErrResultNotFound)
	if !IsNotFoundError(wrapped) {
		t.Error("Expected wrapped result error to classify as not-found")
	}

	if IsNotFoundError(errors.New("something else")) {
		t.Error("Expected unrelated error to not classify as not-found")
	}
	if IsNotFoundError(nil) {
		t.Error("Expected nil to not classify as not-found")
	}
}

// TestIsValidationError tests validation classification over the sentinels
func TestIsValidationError(t *testing.T) {
	validation := []error{
		ErrMalformedPartition,
		ErrInvalidRepertoire,
		ErrNegativePhi,
		ErrInvalidDirection,
		NewPartitionError("overlap at index 2"),
	}
	for _, err := range validation {
		if !IsValidationError(err) {
			t.Errorf("Expected %v to classify as validation", err)
		}
	}

	if IsValidationError(ErrNotFound) {
		t.Error("Expected ErrNotFound to not classify as validation")
	}
	if IsValidationError(nil) {
		t.Error("Expected nil to not classify as validation")
	}
}

// TestNewPartitionError tests sentinel wrapping with detail
func TestNewPartitionError(t *testing.T) {
	err := NewPartitionError("purviews cover 1 of 2 indices")
	if !errors.Is(err, ErrMalformedPartition) {
		t.Error("Expected partition error to wrap ErrMalformedPartition")
	}
}

// TestNewValidationError tests field-scoped validation messages
func TestNewValidationError(t *testing.T) {
	err := NewValidationError("precision", "must be positive")
	expected := "validation failed for precision: must be positive"
	if err.Error() != expected {
		t.Errorf("Expected '%s', got '%s'", expected, err.Error())
	}
}
