// Package phi holds the container types for integrated-information
// results: partitions and cuts of node indices, minimum information
// partitions (Mip), maximally irreducible causes and effects (Mice),
// concepts, constellations, and whole-subsystem results (BigMip),
// together with their ordering, equality, and cut-application rules.
package phi

import (
	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultPrecision is the absolute tolerance used for phi comparisons.
// Repertoire-distance computations accumulate rounding error, so plain
// floating equality would make the exclusion principle irreproducible.
const DefaultPrecision = 1e-6

var precision = DefaultPrecision

// Precision returns the process-wide phi comparison tolerance.
func Precision() float64 {
	return precision
}

// SetPrecision sets the process-wide phi comparison tolerance. It is meant
// to be called once at startup, before any containers are compared.
func SetPrecision(p float64) {
	if p > 0 {
		precision = p
	}
}

// PhiEq reports whether two phi values are equal within the configured
// precision. Every equality and ordering decision that touches a phi value
// must go through this predicate.
func PhiEq(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, precision)
}
