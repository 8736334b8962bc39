package ops_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/curver/intmatrix"
	"github.com/katalvlaran/curver/intmatrix/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInverseOfIdentityIsIdentity(t *testing.T) {
	id, err := intmatrix.Identity(3)
	require.NoError(t, err)

	inv, err := ops.Inverse(id)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := int64(0)
			if i == j {
				want = 1
			}
			assert.Equal(t, big.NewRat(want, 1), inv.At(i, j))
		}
	}
}

func TestInverseOfKnownMatrix(t *testing.T) {
	m, err := intmatrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, big.NewInt(2)))
	require.NoError(t, m.Set(0, 1, big.NewInt(3)))
	require.NoError(t, m.Set(1, 0, big.NewInt(1)))
	require.NoError(t, m.Set(1, 1, big.NewInt(4)))

	inv, err := ops.Inverse(m)
	require.NoError(t, err)
	assert.Equal(t, big.NewRat(4, 5), inv.At(0, 0))
	assert.Equal(t, big.NewRat(-3, 5), inv.At(0, 1))
	assert.Equal(t, big.NewRat(-1, 5), inv.At(1, 0))
	assert.Equal(t, big.NewRat(2, 5), inv.At(1, 1))
}

func TestInverseOfSingularMatrixIsSingularError(t *testing.T) {
	m, err := intmatrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, big.NewInt(1)))
	require.NoError(t, m.Set(0, 1, big.NewInt(2)))
	require.NoError(t, m.Set(1, 0, big.NewInt(2)))
	require.NoError(t, m.Set(1, 1, big.NewInt(4)))

	_, err = ops.Inverse(m)
	assert.ErrorIs(t, err, intmatrix.ErrSingular)
}

func TestInverseRejectsNonSquare(t *testing.T) {
	m, err := intmatrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = ops.Inverse(m)
	assert.ErrorIs(t, err, intmatrix.ErrNonSquare)
}

func TestInverseOfOneByOne(t *testing.T) {
	m, err := intmatrix.NewDense(1, 1)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, big.NewInt(7)))

	inv, err := ops.Inverse(m)
	require.NoError(t, err)
	assert.Equal(t, big.NewRat(1, 7), inv.At(0, 0))
}
