package ops_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/curver/intmatrix"
	"github.com/katalvlaran/curver/intmatrix/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterminantOfIdentity(t *testing.T) {
	id, err := intmatrix.Identity(4)
	require.NoError(t, err)
	det, err := ops.Determinant(id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), det.Int64())
}

func TestDeterminantKnownMatrix(t *testing.T) {
	m, err := intmatrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, big.NewInt(2)))
	require.NoError(t, m.Set(0, 1, big.NewInt(3)))
	require.NoError(t, m.Set(1, 0, big.NewInt(1)))
	require.NoError(t, m.Set(1, 1, big.NewInt(4)))

	det, err := ops.Determinant(m)
	require.NoError(t, err)
	assert.Equal(t, int64(5), det.Int64()) // 2*4 - 3*1
}

func TestDeterminantRequiresSwapOnZeroPivot(t *testing.T) {
	m, err := intmatrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, big.NewInt(0)))
	require.NoError(t, m.Set(0, 1, big.NewInt(1)))
	require.NoError(t, m.Set(1, 0, big.NewInt(1)))
	require.NoError(t, m.Set(1, 1, big.NewInt(0)))

	det, err := ops.Determinant(m)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), det.Int64())
}

func TestDeterminantSingularIsZero(t *testing.T) {
	m, err := intmatrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, big.NewInt(1)))
	require.NoError(t, m.Set(0, 1, big.NewInt(2)))
	require.NoError(t, m.Set(1, 0, big.NewInt(2)))
	require.NoError(t, m.Set(1, 1, big.NewInt(4)))

	det, err := ops.Determinant(m)
	require.NoError(t, err)
	assert.Equal(t, int64(0), det.Int64())
}

func TestDeterminantRejectsNonSquare(t *testing.T) {
	m, err := intmatrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = ops.Determinant(m)
	assert.ErrorIs(t, err, intmatrix.ErrNonSquare)
}
