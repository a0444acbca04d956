package connectivity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestPowersetCanonicalOrder(t *testing.T) {
	expected := [][]int{
		{},
		{0}, {2}, {3},
		{0, 2}, {0, 3}, {2, 3},
		{0, 2, 3},
	}
	assert.Equal(t, expected, Powerset([]int{0, 2, 3}))
}

func TestPowersetEmpty(t *testing.T) {
	assert.Equal(t, [][]int{{}}, Powerset(nil))
}

func TestRelevantConnections(t *testing.T) {
	cm := RelevantConnections(3, []int{0, 1}, []int{2})

	assert.Equal(t, 1.0, cm.At(0, 2))
	assert.Equal(t, 1.0, cm.At(1, 2))
	assert.Equal(t, 0.0, cm.At(2, 2))
	assert.Equal(t, 0.0, cm.At(0, 0))
	assert.Equal(t, 0.0, cm.At(2, 0))
}

func TestRelevantConnectionsZeroSize(t *testing.T) {
	rows, cols := RelevantConnections(0, nil, nil).Dims()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 0, cols)
}

func TestSubmatrix(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})

	sub := Submatrix(m, []int{0, 2}, []int{1, 2})
	rows, cols := sub.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)
	assert.Equal(t, 2.0, sub.At(0, 0))
	assert.Equal(t, 3.0, sub.At(0, 1))
	assert.Equal(t, 8.0, sub.At(1, 0))
	assert.Equal(t, 9.0, sub.At(1, 1))
}

func TestSubmatrixEmptySelection(t *testing.T) {
	m := mat.NewDense(2, 2, nil)
	rows, cols := Submatrix(m, nil, []int{0}).Dims()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 0, cols)
}

func TestSortedUnion(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3}, SortedUnion([]int{3, 1}, []int{0, 1}, []int{2}))
	assert.Nil(t, SortedUnion())
	assert.Nil(t, SortedUnion(nil, []int{}))
}
