package intmatrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/curver/intmatrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityApplyIsNoOp(t *testing.T) {
	id, err := intmatrix.Identity(3)
	require.NoError(t, err)

	v := []*big.Int{big.NewInt(4), big.NewInt(-2), big.NewInt(7)}
	out, err := id.Apply(v)
	require.NoError(t, err)
	for i := range v {
		assert.Equal(t, 0, v[i].Cmp(out[i]))
	}
}

func TestApplyRejectsDimensionMismatch(t *testing.T) {
	m, err := intmatrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = m.Apply([]*big.Int{big.NewInt(1), big.NewInt(2)})
	assert.ErrorIs(t, err, intmatrix.ErrDimensionMismatch)
}

func TestSetOutOfRange(t *testing.T) {
	m, err := intmatrix.NewDense(2, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, m.Set(5, 0, big.NewInt(1)), intmatrix.ErrOutOfRange)
}

func TestMulMatchesManualComposition(t *testing.T) {
	// Selection matrix dropping column 1 out of 3.
	sel, err := intmatrix.NewDense(2, 3)
	require.NoError(t, err)
	require.NoError(t, sel.Set(0, 0, big.NewInt(1)))
	require.NoError(t, sel.Set(1, 2, big.NewInt(1)))

	// Section matrix re-expanding, duplicating column 0 into the dropped slot.
	section, err := intmatrix.NewDense(3, 2)
	require.NoError(t, err)
	require.NoError(t, section.Set(0, 0, big.NewInt(1)))
	require.NoError(t, section.Set(1, 0, big.NewInt(1)))
	require.NoError(t, section.Set(2, 1, big.NewInt(1)))

	composed, err := section.Mul(sel)
	require.NoError(t, err)
	assert.Equal(t, 3, composed.Rows())
	assert.Equal(t, 3, composed.Cols())

	v := []*big.Int{big.NewInt(5), big.NewInt(9), big.NewInt(-3)}
	viaMatrices, err := composed.Apply(v)
	require.NoError(t, err)

	mid, err := sel.Apply(v)
	require.NoError(t, err)
	viaStages, err := section.Apply(mid)
	require.NoError(t, err)

	for i := range viaMatrices {
		assert.Equal(t, 0, viaMatrices[i].Cmp(viaStages[i]))
	}
}

func TestEqualAndClone(t *testing.T) {
	m, err := intmatrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, big.NewInt(3)))
	clone := m.Clone()
	assert.True(t, m.Equal(clone))

	require.NoError(t, clone.Set(0, 1, big.NewInt(4)))
	assert.False(t, m.Equal(clone))
	assert.Equal(t, int64(3), m.At(0, 1).Int64())
}
