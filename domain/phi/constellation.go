package phi

// Constellation is an ordered, possibly empty collection of concepts.
// The container enforces no uniqueness invariant over mechanisms; if
// duplicates matter, deduplication is the search driver's job.
type Constellation []*Concept

// Equal compares concepts element-wise, in order.
func (c Constellation) Equal(other Constellation) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if !c[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Phis returns the concepts' phi values in collection order.
func (c Constellation) Phis() []float64 {
	phis := make([]float64, len(c))
	for i, concept := range c {
		phis[i] = concept.phi
	}
	return phis
}

// SumPhi returns the total small phi across the constellation.
func (c Constellation) SumPhi() float64 {
	var sum float64
	for _, concept := range c {
		sum += concept.phi
	}
	return sum
}

// Mechanisms returns each concept's mechanism, in collection order.
func (c Constellation) Mechanisms() [][]int {
	out := make([][]int, len(c))
	for i, concept := range c {
		out[i] = concept.Mechanism()
	}
	return out
}
