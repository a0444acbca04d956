// Package connectivity provides the 0/1 matrix and subset-enumeration
// primitives consumed by the phi containers and the search driver.
package connectivity

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// RelevantConnections returns an n x n 0/1 matrix whose [i][j] entry is 1
// exactly when i is in from and j is in to. All other entries are 0.
func RelevantConnections(n int, from, to []int) *mat.Dense {
	if n == 0 {
		return &mat.Dense{}
	}
	cm := mat.NewDense(n, n, nil)
	for _, i := range from {
		for _, j := range to {
			cm.Set(i, j, 1)
		}
	}
	return cm
}

// Submatrix restricts m to the given row and column indices, in the order
// given. Row and column indices must be in range for m.
func Submatrix(m *mat.Dense, rows, cols []int) *mat.Dense {
	if len(rows) == 0 || len(cols) == 0 {
		return &mat.Dense{}
	}
	sub := mat.NewDense(len(rows), len(cols), nil)
	for ri, i := range rows {
		for ci, j := range cols {
			sub.Set(ri, ci, m.At(i, j))
		}
	}
	return sub
}

// Powerset enumerates every subset of indices, including the empty set, in
// canonical order: by increasing size, then lexicographically by index
// order within each size. The input order is preserved inside each subset.
func Powerset(indices []int) [][]int {
	subsets := [][]int{{}}
	for size := 1; size <= len(indices); size++ {
		subsets = append(subsets, combinations(indices, size)...)
	}
	return subsets
}

// combinations returns all size-k subsets of indices in lexicographic order.
func combinations(indices []int, k int) [][]int {
	var out [][]int
	pick := make([]int, 0, k)

	var walk func(start int)
	walk = func(start int) {
		if len(pick) == k {
			subset := make([]int, k)
			copy(subset, pick)
			out = append(out, subset)
			return
		}
		for i := start; i <= len(indices)-(k-len(pick)); i++ {
			pick = append(pick, indices[i])
			walk(i + 1)
			pick = pick[:len(pick)-1]
		}
	}
	walk(0)
	return out
}

// SortedUnion returns the sorted union of the given index sets with
// duplicates removed.
func SortedUnion(sets ...[]int) []int {
	seen := make(map[int]struct{})
	var union []int
	for _, set := range sets {
		for _, idx := range set {
			if _, ok := seen[idx]; !ok {
				seen[idx] = struct{}{}
				union = append(union, idx)
			}
		}
	}
	sort.Ints(union)
	return union
}
