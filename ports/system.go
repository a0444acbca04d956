// Package ports defines the collaborator contracts between the phi
// containers, the search driver, and the outside world.
package ports

import (
	"gonum.org/v1/gonum/mat"

	"gophi/domain/phi"
)

// System is a subsystem that can compute repertoires: the contract the
// search driver works against. It extends the container-facing
// phi.Subsystem view with the repertoire collaborator and cut
// application.
type System interface {
	phi.Subsystem

	// ConnectivityMatrix returns the full network adjacency as a 0/1
	// matrix.
	ConnectivityMatrix() *mat.Dense

	// CauseRepertoire returns the probability distribution over the
	// purview's past states, conditioned on the mechanism's current
	// state.
	CauseRepertoire(mechanism, purview []int) (*phi.Repertoire, error)

	// EffectRepertoire is the forward-direction counterpart.
	EffectRepertoire(mechanism, purview []int) (*phi.Repertoire, error)

	// PartitionedRepertoire returns the product of the per-part
	// repertoires of the given bipartition, in the given direction.
	PartitionedRepertoire(direction phi.Direction, partition phi.Bipartition) (*phi.Repertoire, error)

	// WithCut derives a copy of this system with the given cut applied.
	// The receiver is not modified.
	WithCut(cut phi.SystemCut) (System, error)
}

// RepertoireMetric measures the distance between two repertoires over
// the same purview. Implementations must be symmetric and return a
// non-negative value.
type RepertoireMetric func(a, b *phi.Repertoire) (float64, error)

// ConstellationMetric measures the distance between the unpartitioned
// and partitioned constellations of a subsystem.
type ConstellationMetric func(unpartitioned, partitioned phi.Constellation) (float64, error)
