package search

import (
	"gophi/domain/phi"
)

// Bipartition enumeration for MIP search. Mechanism splits are
// unordered (each unordered pair appears once, with the empty split
// first); purview splits are directed, so both orders appear.

// bipartitions returns the distinct unordered splits of indices into two
// groups. The last index is pinned to the second group, which yields
// each unordered split exactly once, starting with the empty/full split.
func bipartitions(indices []int) [][2][]int {
	n := len(indices)
	if n == 0 {
		return [][2][]int{{nil, nil}}
	}
	out := make([][2][]int, 0, 1<<(n-1))
	for mask := 0; mask < 1<<(n-1); mask++ {
		var first, second []int
		for i, idx := range indices {
			if i < n-1 && mask&(1<<i) != 0 {
				first = append(first, idx)
			} else {
				second = append(second, idx)
			}
		}
		out = append(out, [2][]int{first, second})
	}
	return out
}

// directedBipartitions returns every ordered split of indices into two
// groups, including the two degenerate splits with one empty side.
func directedBipartitions(indices []int) [][2][]int {
	n := len(indices)
	out := make([][2][]int, 0, 1<<n)
	for mask := 0; mask < 1<<n; mask++ {
		var first, second []int
		for i, idx := range indices {
			if mask&(1<<i) != 0 {
				first = append(first, idx)
			} else {
				second = append(second, idx)
			}
		}
		out = append(out, [2][]int{first, second})
	}
	return out
}

// MipBipartitions pairs every mechanism split with every directed purview
// split, dropping pairings where either part would be empty on both
// sides. These are the candidate partitions for one small-phi MIP search.
func MipBipartitions(mechanism, purview []int) []phi.Bipartition {
	var out []phi.Bipartition
	for _, m := range bipartitions(mechanism) {
		for _, p := range directedBipartitions(purview) {
			if len(m[0])+len(p[0]) == 0 || len(m[1])+len(p[1]) == 0 {
				continue
			}
			out = append(out, phi.NewBipartition(
				phi.NewPart(m[0], p[0]),
				phi.NewPart(m[1], p[1]),
			))
		}
	}
	return out
}

// systemCuts enumerates the candidate unidirectional system cuts of the
// given node indices: every non-empty proper subset severed from its
// complement. Both directions are covered because each subset and its
// complement are enumerated separately.
func systemCuts(indices []int) []phi.Cut {
	var cuts []phi.Cut
	for mask := 1; mask < 1<<len(indices)-1; mask++ {
		var severed, intact []int
		for i, idx := range indices {
			if mask&(1<<i) != 0 {
				severed = append(severed, idx)
			} else {
				intact = append(intact, idx)
			}
		}
		cuts = append(cuts, phi.NewCut(severed, intact))
	}
	return cuts
}
