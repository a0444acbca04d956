package phi

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"gophi/internal/connectivity"
)

// SystemCut is the active system-level cut of a subsystem. Both Cut and
// KCut satisfy it.
type SystemCut interface {
	// SplitsMechanism reports whether the cut separates the mechanism's
	// indices.
	SplitsMechanism(mechanism []int) bool
	// Indices returns the sorted node indices under the cut's scope.
	Indices() []int
}

// Cut is a unidirectional bipartition of node indices. Connections from
// the severed side to the intact side are removed; the reverse direction
// is preserved. A node index belongs to exactly one side.
type Cut struct {
	severed []int
	intact  []int
}

// NewCut builds a cut, copying both sides. The caller is responsible for
// keeping the sides disjoint.
func NewCut(severed, intact []int) Cut {
	return Cut{
		severed: copyIndices(severed),
		intact:  copyIndices(intact),
	}
}

// Severed returns a copy of the nodes whose outgoing connections to the
// intact side are removed.
func (c Cut) Severed() []int {
	return copyIndices(c.severed)
}

// Intact returns a copy of the nodes whose incoming connections from the
// severed side are removed.
func (c Cut) Intact() []int {
	return copyIndices(c.intact)
}

// Indices returns the sorted union of both sides.
func (c Cut) Indices() []int {
	return connectivity.SortedUnion(c.severed, c.intact)
}

// SplitsMechanism reports whether the mechanism has at least one index on
// each side of the cut.
func (c Cut) SplitsMechanism(mechanism []int) bool {
	return intersects(mechanism, c.severed) && intersects(mechanism, c.intact)
}

// AllCutMechanisms returns every non-empty subset of candidateIndices that
// this cut splits, in canonical powerset order (increasing size, then
// lexicographic).
func (c Cut) AllCutMechanisms(candidateIndices []int) [][]int {
	var split [][]int
	for _, mechanism := range connectivity.Powerset(candidateIndices) {
		if c.SplitsMechanism(mechanism) {
			split = append(split, mechanism)
		}
	}
	return split
}

// CutMatrix computes the square 0/1 matrix of severed connections,
// restricted to the indices appearing in the cut, in sorted order. Entry
// [i][j] is 1 exactly when the connection from severed-side node i to
// intact-side node j is removed. An empty cut yields an empty matrix.
func (c Cut) CutMatrix() *mat.Dense {
	cutIndices := c.Indices()
	if len(cutIndices) == 0 {
		return &mat.Dense{}
	}

	// Construct a matrix large enough for all indices in the cut, then
	// extract the relevant submatrix.
	n := cutIndices[len(cutIndices)-1] + 1
	cm := connectivity.RelevantConnections(n, c.severed, c.intact)
	return connectivity.Submatrix(cm, cutIndices, cutIndices)
}

// Equal compares both sides as sets.
func (c Cut) Equal(other Cut) bool {
	return sameIndexSet(c.severed, other.severed) &&
		sameIndexSet(c.intact, other.intact)
}

func (c Cut) String() string {
	return fmt.Sprintf("Cut (%s) --//--> (%s)", fmtIndices(c.severed), fmtIndices(c.intact))
}
