package search

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"gophi/domain/core"
	"gophi/domain/phi"
)

// L1Repertoire is the default repertoire metric: the L1 distance between
// two distributions over the same purview. Proper earth-mover distances
// belong to an external collaborator; this default keeps the driver
// self-contained.
func L1Repertoire(a, b *phi.Repertoire) (float64, error) {
	if a == nil || b == nil {
		return 0, core.ErrNilCollaborator
	}
	if a.Len() != b.Len() {
		return 0, fmt.Errorf("%w: lengths %d and %d", core.ErrInvalidRepertoire, a.Len(), b.Len())
	}
	return floats.Distance(a.Flatten(), b.Flatten(), 1), nil
}

// SumPhiDistance is the default constellation metric: concepts are
// matched across the two constellations by mechanism and repertoires
// (Concept.DistanceEq); matched pairs contribute their phi difference,
// unmatched concepts contribute their full phi. A coarse surrogate for
// the extended earth-mover distance, which is a collaborator concern.
func SumPhiDistance(unpartitioned, partitioned phi.Constellation) (float64, error) {
	matched := make([]bool, len(partitioned))
	var total float64

	for _, concept := range unpartitioned {
		found := false
		for j, other := range partitioned {
			if matched[j] || !concept.DistanceEq(other) {
				continue
			}
			total += math.Abs(concept.Phi() - other.Phi())
			matched[j] = true
			found = true
			break
		}
		if !found {
			total += concept.Phi()
		}
	}
	for j, other := range partitioned {
		if !matched[j] {
			total += other.Phi()
		}
	}
	return total, nil
}
