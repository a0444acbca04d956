package phi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"gophi/domain/core"
)

// testKCut is the three-part reference cut used throughout this file:
// mechanisms (0,2), (), (3) over purviews (0), (2), (3).
func testKCut() KCut {
	return NewKCut(MustKPartition(
		NewPart([]int{0, 2}, []int{0}),
		NewPart(nil, []int{2}),
		NewPart([]int{3}, []int{3}),
	))
}

func matrixRows(m *mat.Dense) [][]float64 {
	rows, cols := m.Dims()
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			out[i][j] = m.At(i, j)
		}
	}
	return out
}

func TestKPartitionIndices(t *testing.T) {
	assert.Equal(t, []int{0, 2, 3}, testKCut().Indices())
}

func TestKCutMatrix(t *testing.T) {
	expected := [][]float64{
		{0, 0, 0, 1},
		{0, 0, 0, 0},
		{1, 0, 1, 1},
		{1, 0, 1, 0},
	}
	assert.Equal(t, expected, matrixRows(testKCut().CutMatrix(4)))
}

func TestKCutApplyCut(t *testing.T) {
	ones := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			ones.Set(i, j, 1)
		}
	}

	expected := [][]float64{
		{1, 1, 1, 0},
		{1, 1, 1, 1},
		{0, 1, 0, 0},
		{0, 1, 0, 1},
	}
	cut := testKCut().ApplyCut(ones)
	assert.Equal(t, expected, matrixRows(cut))

	// Cutting an already-cut matrix changes nothing.
	assert.Equal(t, expected, matrixRows(testKCut().ApplyCut(cut)))
}

func TestKCutSplitsMechanism(t *testing.T) {
	kc := testKCut()

	tests := []struct {
		mechanism []int
		split     bool
	}{
		{[]int{0}, false},
		{[]int{3}, false},
		{[]int{2}, true},
		{[]int{0, 2}, true},
		{[]int{0, 3}, true},
		{[]int{2, 3}, true},
		{[]int{0, 2, 3}, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.split, kc.SplitsMechanism(tt.mechanism), "mechanism %v", tt.mechanism)
	}
}

func TestKCutAllCutMechanisms(t *testing.T) {
	expected := [][]int{{2}, {0, 2}, {0, 3}, {2, 3}, {0, 2, 3}}
	kc := testKCut()
	assert.Equal(t, expected, kc.AllCutMechanisms())
	// Pure function: re-deriving yields the same enumeration.
	assert.Equal(t, kc.AllCutMechanisms(), kc.AllCutMechanisms())
}

func TestKCutDegenerateSinglePartSplitsNothing(t *testing.T) {
	kc := NewKCut(MustKPartition(NewPart([]int{0}, []int{0})))

	assert.False(t, kc.SplitsMechanism([]int{0}))
	assert.Empty(t, kc.AllCutMechanisms())
}

func TestNewKPartitionValidation(t *testing.T) {
	// Overlapping purviews.
	_, err := NewKPartition(NewPart(nil, []int{0}), NewPart(nil, []int{0}))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrMalformedPartition)
	assert.True(t, core.IsValidationError(err))

	// Purviews must cover every mechanism index.
	_, err = NewKPartition(NewPart([]int{1}, []int{0}))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrMalformedPartition)

	// No parts at all.
	_, err = NewKPartition()
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrMalformedPartition)
}

func TestKPartitionEqualIsPositional(t *testing.T) {
	a := MustKPartition(NewPart([]int{0}, []int{0}), NewPart([]int{1}, []int{1}))
	b := MustKPartition(NewPart([]int{0}, []int{0}), NewPart([]int{1}, []int{1}))
	swapped := MustKPartition(NewPart([]int{1}, []int{1}), NewPart([]int{0}, []int{0}))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(swapped))
	assert.True(t, NewKCut(a).Equal(NewKCut(b)))
}

func TestKCutMatrixRestrictedSize(t *testing.T) {
	kc := testKCut()

	// Indices 2 and 3 fall outside a 2 x 2 matrix, leaving no severed entries.
	assert.Equal(t, [][]float64{{0, 0}, {0, 0}}, matrixRows(kc.CutMatrix(2)))

	// At size 3 only index 3 is dropped.
	expected := [][]float64{
		{0, 0, 0},
		{0, 0, 0},
		{1, 0, 1},
	}
	assert.Equal(t, expected, matrixRows(kc.CutMatrix(3)))
}

func TestKCutApplyCutSmallerMatrix(t *testing.T) {
	ones := mat.NewDense(3, 4, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			ones.Set(i, j, 1)
		}
	}

	// Severing is bounded by the row count; columns past it pass through.
	expected := [][]float64{
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{0, 1, 0, 1},
	}
	assert.Equal(t, expected, matrixRows(testKCut().ApplyCut(ones)))
}

func TestKCutMatrixZeroSize(t *testing.T) {
	rows, cols := testKCut().CutMatrix(0).Dims()
	assert.Equal(t, 0, rows)
	assert.Equal(t, 0, cols)
}
