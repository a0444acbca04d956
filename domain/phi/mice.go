package phi

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"gophi/domain/core"
	"gophi/internal/connectivity"
)

// Mice is a maximally irreducible cause or effect: for a given mechanism
// and direction, the Mip of the purview where small phi is maximal. It
// wraps exactly one Mip and exposes its attributes as pass-through views.
type Mice struct {
	mip *Mip
}

// NewMice wraps a Mip as a maximally irreducible cause or effect.
func NewMice(mip *Mip) (*Mice, error) {
	if mip == nil {
		return nil, core.ErrNilCollaborator
	}
	return &Mice{mip: mip}, nil
}

// Phi is the wrapped Mip's phi value.
func (m *Mice) Phi() float64 { return m.mip.phi }

// Direction reports whether this is a core cause or core effect.
func (m *Mice) Direction() Direction { return m.mip.direction }

// Mechanism returns the mechanism the Mice is evaluated for.
func (m *Mice) Mechanism() []int { return m.mip.Mechanism() }

// Purview returns the purview over which the mechanism's phi is maximal.
func (m *Mice) Purview() []int { return m.mip.Purview() }

// Repertoire is the unpartitioned repertoire over the purview.
func (m *Mice) Repertoire() *Repertoire { return m.mip.unpartitionedRepertoire }

// Mip returns the wrapped minimum information partition.
func (m *Mice) Mip() *Mip { return m.mip }

// IsReducible reports whether phi is zero within the configured
// precision.
func (m *Mice) IsReducible() bool { return m.mip.IsReducible() }

// Equal compares the wrapped Mips.
func (m *Mice) Equal(other *Mice) bool {
	if m == nil || other == nil {
		return m == nil && other == nil
	}
	return m.mip.Equal(other.mip)
}

// Hash returns the wrapped Mip's fingerprint.
func (m *Mice) Hash() core.Hash {
	return core.CombineHashes(core.Hash("mice"), m.mip.Hash())
}

// relevantConnections identifies the connections that matter to this
// Mice, as a matrix restricted to the subsystem's node indices. For a
// core cause the purview-to-mechanism connections matter; for a core
// effect, mechanism-to-purview.
func (m *Mice) relevantConnections(subsystem Subsystem) *mat.Dense {
	var from, to []int
	if m.mip.direction == DirectionCause {
		from, to = m.mip.purview, m.mip.mechanism
	} else {
		from, to = m.mip.mechanism, m.mip.purview
	}
	cm := connectivity.RelevantConnections(subsystem.Network().Size(), from, to)
	idxs := subsystem.NodeIndices()
	return connectivity.Submatrix(cm, idxs, idxs)
}

// DamagedByCut reports whether the subsystem's active cut invalidates
// this Mice: either the cut splits the mechanism, or it severs at least
// one relevant mechanism-purview connection. An empty cut matrix means
// no cut is applied and severs nothing; a non-empty matrix whose shape
// disagrees with the subsystem's panics.
func (m *Mice) DamagedByCut(subsystem Subsystem) bool {
	if subsystem.Cut().SplitsMechanism(m.mip.mechanism) {
		return true
	}
	relevant := m.relevantConnections(subsystem)
	cutMatrix := subsystem.CutMatrix()

	rows, cols := relevant.Dims()
	cr, cc := cutMatrix.Dims()
	if rows == 0 || cr == 0 {
		return false
	}
	if rows != cr || cols != cc {
		panic(fmt.Sprintf("phi: cut matrix is %dx%d, relevant connections are %dx%d",
			cr, cc, rows, cols))
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if relevant.At(i, j)*cutMatrix.At(i, j) == 1 {
				return true
			}
		}
	}
	return false
}

func (m *Mice) orderKey() []float64 {
	return m.mip.orderKey()
}

// Less reports strict ordering by (phi, |mechanism|, |purview|).
func (m *Mice) Less(other *Mice) bool {
	return lessKey(m.orderKey(), other.orderKey())
}

// LessEq reports Less, or phi equality within precision.
func (m *Mice) LessEq(other *Mice) bool {
	return lessEqKey(m.orderKey(), other.orderKey())
}

// Greater is the reflection of Less.
func (m *Mice) Greater(other *Mice) bool {
	return other.Less(m)
}

// GreaterEq reports Greater, or phi equality within precision.
func (m *Mice) GreaterEq(other *Mice) bool {
	return other.Less(m) || PhiEq(m.mip.phi, other.mip.phi)
}
