package phi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gophi/domain/core"
)

func TestNewRepertoireValidation(t *testing.T) {
	_, err := NewRepertoire([]int{2, 2}, []float64{1, 0, 0})
	assert.ErrorIs(t, err, core.ErrInvalidRepertoire)

	_, err = NewRepertoire([]int{0}, nil)
	assert.ErrorIs(t, err, core.ErrInvalidRepertoire)

	r, err := NewRepertoire([]int{2, 2}, []float64{1, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2}, r.Shape())
	assert.Equal(t, 4, r.Len())
}

func TestRepertoireEqualIsExact(t *testing.T) {
	a := MustRepertoire([]int{2}, []float64{0.5, 0.5})
	b := MustRepertoire([]int{2}, []float64{0.5, 0.5})
	c := MustRepertoire([]int{2}, []float64{0.5, 0.5000000001})
	d := MustRepertoire([]int{1, 2}, []float64{0.5, 0.5})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

func TestRepertoireEqualNil(t *testing.T) {
	var a, b *Repertoire
	assert.True(t, a.Equal(b))
	assert.False(t, MustRepertoire([]int{1}, []float64{1}).Equal(nil))
	assert.False(t, a.Equal(MustRepertoire([]int{1}, []float64{1})))
}

func TestRepertoireFlattenCopies(t *testing.T) {
	r := MustRepertoire([]int{2}, []float64{0.5, 0.5})
	flat := r.Flatten()
	flat[0] = 99

	assert.Equal(t, []float64{0.5, 0.5}, r.Flatten())
}

func TestRepertoireHash(t *testing.T) {
	a := MustRepertoire([]int{2}, []float64{0.5, 0.5})
	b := MustRepertoire([]int{2}, []float64{0.5, 0.5})
	c := MustRepertoire([]int{2}, []float64{0.25, 0.75})

	assert.True(t, a.Hash().Equals(b.Hash()))
	assert.False(t, a.Hash().Equals(c.Hash()))
}

func TestPhiEqPrecision(t *testing.T) {
	assert.True(t, PhiEq(0.5, 0.5+1e-9))
	assert.False(t, PhiEq(0.5, 0.5001))

	SetPrecision(1e-2)
	defer SetPrecision(DefaultPrecision)
	assert.True(t, PhiEq(0.5, 0.505))
}
