package phi

import (
	"gophi/domain/core"
)

// Concept is a mechanism's paired core cause and core effect, the basic
// unit of existence in the theory. Phi is the minimum of the cause and
// effect phi values; the search driver is responsible for that invariant,
// the container only assumes it for ordering and reducibility.
type Concept struct {
	phi        float64
	mechanism  []int
	cause      *Mice
	effect     *Mice
	subsystem  Subsystem
	normalized bool
}

// NewConcept assembles a concept from its core cause and effect.
func NewConcept(phi float64, mechanism []int, cause, effect *Mice, subsystem Subsystem, normalized bool) *Concept {
	return &Concept{
		phi:        phi,
		mechanism:  copyIndices(mechanism),
		cause:      cause,
		effect:     effect,
		subsystem:  subsystem,
		normalized: normalized,
	}
}

// Phi is the concept's small-phi-max value.
func (c *Concept) Phi() float64 { return c.phi }

// Mechanism returns a copy of the concept's mechanism indices.
func (c *Concept) Mechanism() []int { return copyIndices(c.mechanism) }

// Cause is the Mice for the core cause.
func (c *Concept) Cause() *Mice { return c.cause }

// Effect is the Mice for the core effect.
func (c *Concept) Effect() *Mice { return c.effect }

// Subsystem is the concept's parent subsystem.
func (c *Concept) Subsystem() Subsystem { return c.subsystem }

// Normalized reports whether the concept's repertoires were normalized.
func (c *Concept) Normalized() bool { return c.normalized }

// IsReducible reports whether phi is zero within the configured
// precision.
func (c *Concept) IsReducible() bool { return PhiEq(c.phi, 0) }

// causePurview is nil-safe access to the cause purview.
func (c *Concept) causePurview() []int {
	if c.cause == nil {
		return nil
	}
	return c.cause.mip.purview
}

func (c *Concept) effectPurview() []int {
	if c.effect == nil {
		return nil
	}
	return c.effect.mip.purview
}

func (c *Concept) causeRepertoire() *Repertoire {
	if c.cause == nil {
		return nil
	}
	return c.cause.mip.unpartitionedRepertoire
}

func (c *Concept) effectRepertoire() *Repertoire {
	if c.effect == nil {
		return nil
	}
	return c.effect.mip.unpartitionedRepertoire
}

// Equal compares phi (within precision), mechanism, the mechanism-state
// projection under each side's subsystem state, cause and effect
// purviews, cause and effect repertoires (bit-exact), and the parent
// networks. The subsystems' cut state is deliberately ignored. A concept
// with missing collaborators compares not-equal rather than faulting.
func (c *Concept) Equal(other *Concept) bool {
	if c == nil || other == nil {
		return c == nil && other == nil
	}
	if c.subsystem == nil || other.subsystem == nil {
		return false
	}
	return PhiEq(c.phi, other.phi) &&
		sameIndexSet(c.mechanism, other.mechanism) &&
		sameIndices(c.subsystem.StateOf(c.mechanism), other.subsystem.StateOf(other.mechanism)) &&
		sameIndexSet(c.causePurview(), other.causePurview()) &&
		sameIndexSet(c.effectPurview(), other.effectPurview()) &&
		c.EqualRepertoires(other) &&
		c.subsystem.Network().Equal(other.subsystem.Network())
}

// EqualRepertoires reports whether this concept has bit-identical cause
// and effect repertoires to another. This checks the arrays only:
// mechanisms, purviews, or even the nodes the indices refer to may
// differ.
func (c *Concept) EqualRepertoires(other *Concept) bool {
	return c.causeRepertoire().Equal(other.causeRepertoire()) &&
		c.effectRepertoire().Equal(other.effectRepertoire())
}

// DistanceEq reports whether this concept equals another in the context
// of a constellation-distance calculation: same mechanism, same cause
// and effect repertoires.
func (c *Concept) DistanceEq(other *Concept) bool {
	return sameIndexSet(c.mechanism, other.mechanism) && c.EqualRepertoires(other)
}

// Hash returns a deterministic fingerprint of the concept's identity
// attributes.
func (c *Concept) Hash() core.Hash {
	return core.CombineHashes(
		core.NewHashFloats([]float64{c.phi}),
		core.NewHashInts(c.mechanism),
		core.NewHashInts(c.subsystem.StateOf(c.mechanism)),
		core.NewHashInts(c.causePurview()),
		core.NewHashInts(c.effectPurview()),
		c.causeRepertoire().Hash(),
		c.effectRepertoire().Hash(),
	)
}

// ExpandCauseRepertoire projects the cause repertoire onto newPurview
// (the full subsystem when nil). Needed only for structural export and
// display, never for phi computation.
func (c *Concept) ExpandCauseRepertoire(newPurview []int) (*Repertoire, error) {
	if c.cause == nil || c.subsystem == nil {
		return nil, core.ErrNilCollaborator
	}
	return c.subsystem.ExpandCauseRepertoire(c.causePurview(), c.causeRepertoire(), newPurview)
}

// ExpandEffectRepertoire projects the effect repertoire onto newPurview.
func (c *Concept) ExpandEffectRepertoire(newPurview []int) (*Repertoire, error) {
	if c.effect == nil || c.subsystem == nil {
		return nil, core.ErrNilCollaborator
	}
	return c.subsystem.ExpandEffectRepertoire(c.effectPurview(), c.effectRepertoire(), newPurview)
}

// ExpandPartitionedCauseRepertoire projects the partitioned repertoire of
// the cause Mip onto the full subsystem.
func (c *Concept) ExpandPartitionedCauseRepertoire() (*Repertoire, error) {
	if c.cause == nil || c.subsystem == nil {
		return nil, core.ErrNilCollaborator
	}
	return c.subsystem.ExpandCauseRepertoire(c.causePurview(), c.cause.mip.partitionedRepertoire, nil)
}

// ExpandPartitionedEffectRepertoire projects the partitioned repertoire
// of the effect Mip onto the full subsystem.
func (c *Concept) ExpandPartitionedEffectRepertoire() (*Repertoire, error) {
	if c.effect == nil || c.subsystem == nil {
		return nil, core.ErrNilCollaborator
	}
	return c.subsystem.ExpandEffectRepertoire(c.effectPurview(), c.effect.mip.partitionedRepertoire, nil)
}

func (c *Concept) orderKey() []float64 {
	return []float64{c.phi, float64(len(c.mechanism))}
}

// Less reports strict ordering by (phi, |mechanism|).
func (c *Concept) Less(other *Concept) bool {
	return lessKey(c.orderKey(), other.orderKey())
}

// LessEq reports Less, or phi equality within precision.
func (c *Concept) LessEq(other *Concept) bool {
	return lessEqKey(c.orderKey(), other.orderKey())
}

// Greater is the reflection of Less.
func (c *Concept) Greater(other *Concept) bool {
	return other.Less(c)
}

// GreaterEq reports Greater, or phi equality within precision.
func (c *Concept) GreaterEq(other *Concept) bool {
	return other.Less(c) || PhiEq(c.phi, other.phi)
}
