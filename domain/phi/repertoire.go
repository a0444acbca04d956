package phi

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"gophi/domain/core"
)

// Repertoire is a probability distribution over the states of a purview,
// conditioned on a mechanism's current state. The shape records the
// per-node state counts of the purview; data is stored flattened in
// row-major order. Repertoires are immutable once constructed.
type Repertoire struct {
	shape []int
	data  []float64
}

// NewRepertoire builds a repertoire, copying its inputs. The product of
// shape must equal the length of data.
func NewRepertoire(shape []int, data []float64) (*Repertoire, error) {
	want := 1
	for _, s := range shape {
		if s <= 0 {
			return nil, fmt.Errorf("%w: dimension %d", core.ErrInvalidRepertoire, s)
		}
		want *= s
	}
	if want != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d values, got %d",
			core.ErrInvalidRepertoire, shape, want, len(data))
	}
	r := &Repertoire{
		shape: make([]int, len(shape)),
		data:  make([]float64, len(data)),
	}
	copy(r.shape, shape)
	copy(r.data, data)
	return r, nil
}

// MustRepertoire builds a repertoire and panics on malformed input. Use
// only in tests and fixtures.
func MustRepertoire(shape []int, data []float64) *Repertoire {
	r, err := NewRepertoire(shape, data)
	if err != nil {
		panic(err)
	}
	return r
}

// Shape returns a copy of the per-dimension state counts.
func (r *Repertoire) Shape() []int {
	out := make([]int, len(r.shape))
	copy(out, r.shape)
	return out
}

// Flatten returns a copy of the distribution in row-major order. This is
// the one-dimensional form used on structural export.
func (r *Repertoire) Flatten() []float64 {
	out := make([]float64, len(r.data))
	copy(out, r.data)
	return out
}

// Len returns the number of states in the distribution.
func (r *Repertoire) Len() int {
	return len(r.data)
}

// Equal reports exact elementwise equality. Two nil repertoires are equal;
// a nil repertoire never equals a non-nil one.
func (r *Repertoire) Equal(other *Repertoire) bool {
	if r == nil || other == nil {
		return r == nil && other == nil
	}
	if len(r.shape) != len(other.shape) {
		return false
	}
	for i := range r.shape {
		if r.shape[i] != other.shape[i] {
			return false
		}
	}
	return floats.Equal(r.data, other.data)
}

// Hash returns a deterministic fingerprint of the distribution.
func (r *Repertoire) Hash() core.Hash {
	if r == nil {
		return core.NewHash(nil)
	}
	return core.CombineHashes(core.NewHashInts(r.shape), core.NewHashFloats(r.data))
}
