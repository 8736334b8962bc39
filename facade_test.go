package curver_test

import (
	"testing"

	"github.com/katalvlaran/curver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTriangulationAndLamination(t *testing.T) {
	tri, err := curver.NewTriangulation([][3]int{
		{0, 1, 2},
		{-1, -2, -3},
	})
	require.NoError(t, err)

	l, err := tri.Lamination([]int64{4, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, int64(9), l.Weight().Int64())
}

func TestFacadeErrorIdentitiesAreStable(t *testing.T) {
	tri, err := curver.NewTriangulation([][3]int{
		{0, 1, 2},
		{-1, -2, -3},
	})
	require.NoError(t, err)

	bad, err := tri.Lamination([]int64{1, 2})
	assert.Nil(t, bad)
	assert.ErrorIs(t, err, curver.ErrWrongLength)
}
