package phi

// Ordering policy for irreducibility containers. Each container type
// exposes an ordering key: [phi, |mechanism|, |purview|] for Mip and
// Mice, [phi, |mechanism|] for Concept, [phi, |subsystem|] for BigMip.
// Less compares keys lexicographically with exact float comparison;
// LessEq relaxes only the phi component, via PhiEq.
//
// This yields a preorder, not a total order: when PhiEq holds but other
// attributes differ, a != b can coexist with a <= b and a >= b. That is
// the documented tie-breaking behavior of the exclusion principle, not a
// defect.

// lessKey reports lexicographic order of two ordering keys.
func lessKey(a, b []float64) bool {
	for i := range a {
		if i >= len(b) {
			return false
		}
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// lessEqKey reports lessKey, or phi-tolerant equality of the leading
// component. Trailing components are deliberately not consulted.
func lessEqKey(a, b []float64) bool {
	return lessKey(a, b) || PhiEq(a[0], b[0])
}
