package phi

import (
	"fmt"

	"gophi/domain/core"
)

// Direction selects whether a repertoire looks backward (cause) or forward
// (effect) in time.
type Direction int

const (
	DirectionCause Direction = iota
	DirectionEffect
)

// String returns the wire name of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionCause:
		return "cause"
	case DirectionEffect:
		return "effect"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Valid reports whether d is one of the two known directions.
func (d Direction) Valid() bool {
	return d == DirectionCause || d == DirectionEffect
}

// ParseDirection parses the wire name of a direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "cause":
		return DirectionCause, nil
	case "effect":
		return DirectionEffect, nil
	}
	return 0, fmt.Errorf("%w: %q", core.ErrInvalidDirection, s)
}
