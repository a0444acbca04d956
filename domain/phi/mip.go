package phi

import (
	"fmt"

	"gophi/domain/core"
)

// Mip is the minimum information partition for a single mechanism,
// direction, and purview: the partition making the least difference
// between the mechanism's unpartitioned and partitioned repertoires.
// Mips are immutable value objects produced by the search driver.
//
// Ordering compares phi first; if the phi values are equal within the
// configured precision, mechanism size and then purview size break the
// tie (exclusion principle).
type Mip struct {
	phi                     float64
	direction               Direction
	mechanism               []int
	purview                 []int
	partition               *Bipartition
	unpartitionedRepertoire *Repertoire
	partitionedRepertoire   *Repertoire
}

// NewMip builds a Mip, copying the index sequences. Phi must be
// non-negative and the direction valid.
func NewMip(
	phi float64,
	direction Direction,
	mechanism, purview []int,
	partition *Bipartition,
	unpartitioned, partitioned *Repertoire,
) (*Mip, error) {
	if phi < 0 {
		return nil, fmt.Errorf("%w: %f", core.ErrNegativePhi, phi)
	}
	if !direction.Valid() {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidDirection, direction)
	}
	var part *Bipartition
	if partition != nil {
		p := *partition
		part = &p
	}
	return &Mip{
		phi:                     phi,
		direction:               direction,
		mechanism:               copyIndices(mechanism),
		purview:                 copyIndices(purview),
		partition:               part,
		unpartitionedRepertoire: unpartitioned,
		partitionedRepertoire:   partitioned,
	}, nil
}

// NewNullMip is the Mip of a trivially reducible mechanism: zero phi, no
// partition, no repertoires.
func NewNullMip(direction Direction, mechanism, purview []int) *Mip {
	return &Mip{
		phi:       0,
		direction: direction,
		mechanism: copyIndices(mechanism),
		purview:   copyIndices(purview),
	}
}

// Phi is the repertoire distance between the unpartitioned and
// partitioned repertoires.
func (m *Mip) Phi() float64 { return m.phi }

// Direction reports whether this is a cause or effect MIP.
func (m *Mip) Direction() Direction { return m.direction }

// Mechanism returns a copy of the mechanism's node indices.
func (m *Mip) Mechanism() []int { return copyIndices(m.mechanism) }

// Purview returns a copy of the purview's node indices.
func (m *Mip) Purview() []int { return copyIndices(m.purview) }

// Partition returns the minimal partition, or nil for a null Mip.
func (m *Mip) Partition() *Bipartition {
	if m.partition == nil {
		return nil
	}
	p := *m.partition
	return &p
}

// UnpartitionedRepertoire returns the whole mechanism's repertoire, or
// nil for a null Mip.
func (m *Mip) UnpartitionedRepertoire() *Repertoire { return m.unpartitionedRepertoire }

// PartitionedRepertoire returns the product repertoire of the minimal
// partition, or nil for a null Mip.
func (m *Mip) PartitionedRepertoire() *Repertoire { return m.partitionedRepertoire }

// IsReducible reports whether phi is zero within the configured
// precision.
func (m *Mip) IsReducible() bool {
	return PhiEq(m.phi, 0)
}

// Equal compares phi (within precision), direction, mechanism (as a
// set), and the unpartitioned repertoire (bit-exact). When both sides
// carry a non-empty purview, the purview sizes must also match. The
// partition, partitioned repertoire, and purview identity are
// deliberately excluded: they are not canonical across equivalent
// minimal partitions.
func (m *Mip) Equal(other *Mip) bool {
	if m == nil || other == nil {
		return m == nil && other == nil
	}
	if !PhiEq(m.phi, other.phi) ||
		m.direction != other.direction ||
		!sameIndexSet(m.mechanism, other.mechanism) ||
		!m.unpartitionedRepertoire.Equal(other.unpartitionedRepertoire) {
		return false
	}
	if len(m.purview) > 0 && len(other.purview) > 0 {
		return len(m.purview) == len(other.purview)
	}
	return true
}

// Hash returns a deterministic fingerprint over the identity attributes.
func (m *Mip) Hash() core.Hash {
	return core.CombineHashes(
		core.NewHashFloats([]float64{m.phi, float64(m.direction)}),
		core.NewHashInts(m.mechanism),
		core.NewHashInts(m.purview),
		m.unpartitionedRepertoire.Hash(),
	)
}

func (m *Mip) orderKey() []float64 {
	return []float64{m.phi, float64(len(m.mechanism)), float64(len(m.purview))}
}

// Less reports strict ordering by (phi, |mechanism|, |purview|).
func (m *Mip) Less(other *Mip) bool {
	return lessKey(m.orderKey(), other.orderKey())
}

// LessEq reports Less, or phi equality within precision.
func (m *Mip) LessEq(other *Mip) bool {
	return lessEqKey(m.orderKey(), other.orderKey())
}

// Greater is the reflection of Less.
func (m *Mip) Greater(other *Mip) bool {
	return other.Less(m)
}

// GreaterEq reports Greater, or phi equality within precision.
func (m *Mip) GreaterEq(other *Mip) bool {
	return other.Less(m) || PhiEq(m.phi, other.phi)
}
