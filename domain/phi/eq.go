package phi

// Index-set comparison helpers. Node sets are ordered sequences of unique
// integers; order matters only for display, so container equality compares
// them as sets.

func toSet(indices []int) map[int]struct{} {
	set := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		set[i] = struct{}{}
	}
	return set
}

// sameIndexSet reports set equality of two index sequences.
func sameIndexSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	bs := toSet(b)
	for _, i := range a {
		if _, ok := bs[i]; !ok {
			return false
		}
	}
	return true
}

// sameIndices reports element-wise equality of two index sequences.
func sameIndices(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// intersects reports whether two index sequences share any index.
func intersects(a, b []int) bool {
	bs := toSet(b)
	for _, i := range a {
		if _, ok := bs[i]; ok {
			return true
		}
	}
	return false
}

// subsetOf reports whether every index of a appears in b.
func subsetOf(a, b []int) bool {
	bs := toSet(b)
	for _, i := range a {
		if _, ok := bs[i]; !ok {
			return false
		}
	}
	return true
}

func copyIndices(indices []int) []int {
	if indices == nil {
		return nil
	}
	out := make([]int, len(indices))
	copy(out, indices)
	return out
}
