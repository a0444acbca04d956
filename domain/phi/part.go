package phi

import (
	"fmt"
	"strings"
)

// Part is one term of a partition product: a mechanism group paired with
// the purview group it is evaluated over. For example, partitioning a
// three-node subsystem as
//
//	mechanism:   A C        B
//	            -----  X  -----
//	  purview:    B        A C
//
// yields two parts, of which this type represents one.
type Part struct {
	mechanism []int
	purview   []int
}

// NewPart builds a part, copying both index sequences. Either side may be
// empty.
func NewPart(mechanism, purview []int) Part {
	return Part{
		mechanism: copyIndices(mechanism),
		purview:   copyIndices(purview),
	}
}

// Mechanism returns a copy of the part's mechanism indices.
func (p Part) Mechanism() []int {
	return copyIndices(p.mechanism)
}

// Purview returns a copy of the part's purview indices.
func (p Part) Purview() []int {
	return copyIndices(p.purview)
}

// Equal compares mechanism and purview as sets.
func (p Part) Equal(other Part) bool {
	return sameIndexSet(p.mechanism, other.mechanism) &&
		sameIndexSet(p.purview, other.purview)
}

// String renders the part as mechanism/purview.
func (p Part) String() string {
	return fmt.Sprintf("%s/%s", fmtIndices(p.mechanism), fmtIndices(p.purview))
}

// Bipartition is a pair of parts whose product partitions a mechanism and
// purview for small-phi evaluation.
type Bipartition [2]Part

// NewBipartition pairs two parts.
func NewBipartition(a, b Part) Bipartition {
	return Bipartition{a, b}
}

// Equal compares both parts positionally.
func (bp Bipartition) Equal(other Bipartition) bool {
	return bp[0].Equal(other[0]) && bp[1].Equal(other[1])
}

func (bp Bipartition) String() string {
	return fmt.Sprintf("%s X %s", bp[0], bp[1])
}

func fmtIndices(indices []int) string {
	if len(indices) == 0 {
		return "[]"
	}
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = fmt.Sprintf("%d", idx)
	}
	return strings.Join(parts, ",")
}
