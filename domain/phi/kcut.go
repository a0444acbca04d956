package phi

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"gophi/domain/core"
	"gophi/internal/connectivity"
)

// KPartition is an ordered sequence of parts whose purviews, taken as
// sets, partition the full index set under a k-way cut. Mechanisms of
// different parts may overlap or be empty.
type KPartition struct {
	parts   []Part
	indices []int
}

// NewKPartition validates and builds a k-way partition. The purviews must
// be pairwise disjoint and together cover every index appearing in any
// part's mechanism or purview.
func NewKPartition(parts ...Part) (KPartition, error) {
	if len(parts) == 0 {
		return KPartition{}, core.NewPartitionError("no parts")
	}

	sets := make([][]int, 0, 2*len(parts))
	purviews := make([][]int, 0, len(parts))
	for _, p := range parts {
		sets = append(sets, p.mechanism, p.purview)
		purviews = append(purviews, p.purview)
	}
	indices := connectivity.SortedUnion(sets...)

	seen := make(map[int]struct{})
	for _, purview := range purviews {
		for _, idx := range purview {
			if _, dup := seen[idx]; dup {
				return KPartition{}, core.NewPartitionError(
					fmt.Sprintf("index %d appears in more than one purview", idx))
			}
			seen[idx] = struct{}{}
		}
	}
	if len(seen) != len(indices) {
		return KPartition{}, core.NewPartitionError(
			fmt.Sprintf("purviews cover %d of %d indices", len(seen), len(indices)))
	}

	kp := KPartition{
		parts:   make([]Part, len(parts)),
		indices: indices,
	}
	copy(kp.parts, parts)
	return kp, nil
}

// MustKPartition builds a k-way partition and panics on malformed input.
// Use only in tests and fixtures.
func MustKPartition(parts ...Part) KPartition {
	kp, err := NewKPartition(parts...)
	if err != nil {
		panic(err)
	}
	return kp
}

// Parts returns a copy of the ordered parts.
func (kp KPartition) Parts() []Part {
	out := make([]Part, len(kp.parts))
	copy(out, kp.parts)
	return out
}

// Len returns the number of parts.
func (kp KPartition) Len() int {
	return len(kp.parts)
}

// Indices returns the sorted union of all node indices appearing in any
// part's mechanism or purview.
func (kp KPartition) Indices() []int {
	return copyIndices(kp.indices)
}

// Equal compares parts positionally.
func (kp KPartition) Equal(other KPartition) bool {
	if len(kp.parts) != len(other.parts) {
		return false
	}
	for i := range kp.parts {
		if !kp.parts[i].Equal(other.parts[i]) {
			return false
		}
	}
	return true
}

func (kp KPartition) String() string {
	rendered := make([]string, len(kp.parts))
	for i, p := range kp.parts {
		rendered[i] = p.String()
	}
	return strings.Join(rendered, " X ")
}

// KCut severs connections according to a k-way partition: a connection
// into a part's mechanism survives only if it originates inside that
// part's purview. Indices outside the partition are not touched.
type KCut struct {
	partition KPartition
}

// NewKCut wraps a validated partition as a cut.
func NewKCut(partition KPartition) KCut {
	return KCut{partition: partition}
}

// Partition returns the underlying k-way partition.
func (k KCut) Partition() KPartition {
	return k.partition
}

// Indices returns the sorted node indices under the cut's scope.
func (k KCut) Indices() []int {
	return k.partition.Indices()
}

// CutMatrix computes the n x n 0/1 matrix of severed connections: entry
// [i][j] is 1 exactly when some part holds j in its mechanism and i lies
// inside the cut's scope but outside that part's purview. Partition
// indices at or beyond n fall outside the matrix and are dropped.
func (k KCut) CutMatrix(n int) *mat.Dense {
	if n == 0 {
		return &mat.Dense{}
	}
	cm := mat.NewDense(n, n, nil)
	indices := k.partition.indices
	for _, part := range k.partition.parts {
		purview := toSet(part.purview)
		for _, i := range indices {
			if i >= n {
				continue
			}
			if _, inside := purview[i]; inside {
				continue
			}
			for _, j := range part.mechanism {
				if j >= n {
					continue
				}
				cm.Set(i, j, 1)
			}
		}
	}
	return cm
}

// ApplyCut zeroes the severed entries of a full connectivity matrix and
// passes every other entry through unchanged.
func (k KCut) ApplyCut(cm *mat.Dense) *mat.Dense {
	n, c := cm.Dims()
	if n == 0 {
		return &mat.Dense{}
	}
	severed := k.CutMatrix(n)
	out := mat.NewDense(n, c, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < c; j++ {
			if j < n && severed.At(i, j) == 1 {
				continue
			}
			out.Set(i, j, cm.At(i, j))
		}
	}
	return out
}

// SplitsMechanism reports whether the cut separates the mechanism: true
// exactly when no single part contains the mechanism in both its
// mechanism and its purview. A one-part cut is degenerate and severs
// nothing, so it never splits.
func (k KCut) SplitsMechanism(mechanism []int) bool {
	if k.partition.Len() < 2 {
		return false
	}
	for _, part := range k.partition.parts {
		if subsetOf(mechanism, part.mechanism) && subsetOf(mechanism, part.purview) {
			return false
		}
	}
	return true
}

// AllCutMechanisms returns every non-empty subset of the cut's indices
// that this cut splits, in canonical powerset order.
func (k KCut) AllCutMechanisms() [][]int {
	var split [][]int
	for _, mechanism := range connectivity.Powerset(k.partition.indices) {
		if len(mechanism) == 0 {
			continue
		}
		if k.SplitsMechanism(mechanism) {
			split = append(split, mechanism)
		}
	}
	return split
}

// Equal compares the underlying partitions.
func (k KCut) Equal(other KCut) bool {
	return k.partition.Equal(other.partition)
}

func (k KCut) String() string {
	return fmt.Sprintf("KCut %s", k.partition)
}
