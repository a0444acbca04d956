package phi

import (
	"fmt"

	"gophi/domain/core"
)

// SingleNodeSelfLoopPhi is the fixed phi assigned to a single-node
// subsystem with a self-loop when that policy is enabled.
const SingleNodeSelfLoopPhi = 0.5

// BigMip is the whole-subsystem result: the unpartitioned constellation
// compared against the constellation under the minimal system cut.
//
// Ordering compares phi first; if the phi values are equal within the
// configured precision, subsystem size breaks the tie (exclusion
// principle).
type BigMip struct {
	phi                        float64
	unpartitionedConstellation Constellation
	partitionedConstellation   Constellation
	subsystem                  Subsystem
	cutSubsystem               Subsystem
}

// NewBigMip builds a BigMip. Both subsystem references are required; phi
// must be non-negative.
func NewBigMip(
	phi float64,
	unpartitioned, partitioned Constellation,
	subsystem, cutSubsystem Subsystem,
) (*BigMip, error) {
	if phi < 0 {
		return nil, fmt.Errorf("%w: %f", core.ErrNegativePhi, phi)
	}
	if subsystem == nil || cutSubsystem == nil {
		return nil, core.ErrNilCollaborator
	}
	return &BigMip{
		phi:                        phi,
		unpartitionedConstellation: unpartitioned,
		partitionedConstellation:   partitioned,
		subsystem:                  subsystem,
		cutSubsystem:               cutSubsystem,
	}, nil
}

// NewNullBigMip is the BigMip of a reducible subsystem: zero phi, empty
// constellations, and no cut applied (the cut subsystem is the subsystem
// itself).
func NewNullBigMip(subsystem Subsystem) *BigMip {
	return &BigMip{
		phi:                        0,
		unpartitionedConstellation: Constellation{},
		partitionedConstellation:   Constellation{},
		subsystem:                  subsystem,
		cutSubsystem:               subsystem,
	}
}

// NewSingleNodeBigMip is the BigMip of a single node with a self-loop.
// Whether it carries phi is a configuration policy, not a computation:
// when allow is false this is just the null BigMip.
func NewSingleNodeBigMip(subsystem Subsystem, allow bool) *BigMip {
	if !allow {
		return NewNullBigMip(subsystem)
	}
	return &BigMip{
		phi:                        SingleNodeSelfLoopPhi,
		unpartitionedConstellation: Constellation{},
		partitionedConstellation:   Constellation{},
		subsystem:                  subsystem,
		cutSubsystem:               subsystem,
	}
}

// Phi is the distance between the unpartitioned and partitioned
// constellations under the minimal system cut.
func (b *BigMip) Phi() float64 { return b.phi }

// UnpartitionedConstellation is the constellation of the whole
// subsystem.
func (b *BigMip) UnpartitionedConstellation() Constellation {
	return b.unpartitionedConstellation
}

// PartitionedConstellation is the constellation under the minimal cut.
func (b *BigMip) PartitionedConstellation() Constellation {
	return b.partitionedConstellation
}

// Subsystem is the subsystem this BigMip was calculated for.
func (b *BigMip) Subsystem() Subsystem { return b.subsystem }

// CutSubsystem is the subsystem with the minimal cut applied.
func (b *BigMip) CutSubsystem() Subsystem { return b.cutSubsystem }

// Cut is the system cut that makes the least difference to the
// subsystem.
func (b *BigMip) Cut() SystemCut { return b.cutSubsystem.Cut() }

// IsReducible reports whether phi is zero within the configured
// precision.
func (b *BigMip) IsReducible() bool { return PhiEq(b.phi, 0) }

// Equal compares phi (within precision), both constellations, and both
// subsystem references by value.
func (b *BigMip) Equal(other *BigMip) bool {
	if b == nil || other == nil {
		return b == nil && other == nil
	}
	if b.subsystem == nil || other.subsystem == nil ||
		b.cutSubsystem == nil || other.cutSubsystem == nil {
		return false
	}
	return PhiEq(b.phi, other.phi) &&
		b.unpartitionedConstellation.Equal(other.unpartitionedConstellation) &&
		b.partitionedConstellation.Equal(other.partitionedConstellation) &&
		b.subsystem.Equal(other.subsystem) &&
		b.cutSubsystem.Equal(other.cutSubsystem)
}

func (b *BigMip) orderKey() []float64 {
	return []float64{b.phi, float64(len(b.subsystem.NodeIndices()))}
}

// Less reports strict ordering by (phi, |subsystem|).
func (b *BigMip) Less(other *BigMip) bool {
	return lessKey(b.orderKey(), other.orderKey())
}

// LessEq reports Less, or phi equality within precision.
func (b *BigMip) LessEq(other *BigMip) bool {
	return lessEqKey(b.orderKey(), other.orderKey())
}

// Greater is the reflection of Less.
func (b *BigMip) Greater(other *BigMip) bool {
	return other.Less(b)
}

// GreaterEq reports Greater, or phi equality within precision.
func (b *BigMip) GreaterEq(other *BigMip) bool {
	return other.Less(b) || PhiEq(b.phi, other.phi)
}
