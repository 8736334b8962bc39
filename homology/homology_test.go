package homology_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/curver/edgelabel"
	"github.com/katalvlaran/curver/homology"
	"github.com/katalvlaran/curver/triangulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func oncePuncturedTorus(t *testing.T) *triangulation.Triangulation {
	t.Helper()
	tri, err := triangulation.FromTriples([][3]int{
		{0, 1, 2},
		{-1, -2, -3},
	})
	require.NoError(t, err)

	return tri
}

func bigs(vs ...int64) []*big.Int {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		out[i] = big.NewInt(v)
	}

	return out
}

func TestNewRejectsWrongLength(t *testing.T) {
	tri := oncePuncturedTorus(t)
	_, err := homology.New(tri, bigs(1, 2))
	require.ErrorIs(t, err, homology.ErrWrongLength)
}

func TestZeroIsZeroEverywhere(t *testing.T) {
	tri := oncePuncturedTorus(t)
	z := homology.Zero(tri)
	for i := 0; i < tri.Zeta(); i++ {
		assert.Equal(t, int64(0), z.At(i).Int64())
	}
}

func TestGetAppliesLabelSign(t *testing.T) {
	tri := oncePuncturedTorus(t)
	c, err := homology.New(tri, bigs(5, -2, 0))
	require.NoError(t, err)

	assert.Equal(t, int64(5), c.Get(edgelabel.FromIndex(0)).Int64())
	assert.Equal(t, int64(-5), c.Get(edgelabel.FromIndex(0).Invert()).Int64())
}

func TestAddIsCoordinatewise(t *testing.T) {
	tri := oncePuncturedTorus(t)
	a, err := homology.New(tri, bigs(1, 2, 3))
	require.NoError(t, err)
	b, err := homology.New(tri, bigs(10, 20, 30))
	require.NoError(t, err)

	sum := a.Add(b)
	assert.Equal(t, int64(11), sum.At(0).Int64())
	assert.Equal(t, int64(22), sum.At(1).Int64())
	assert.Equal(t, int64(33), sum.At(2).Int64())
}

func TestScaleMultipliesEveryCoordinate(t *testing.T) {
	tri := oncePuncturedTorus(t)
	a, err := homology.New(tri, bigs(1, -2, 3))
	require.NoError(t, err)

	scaled := a.Scale(big.NewInt(3))
	assert.Equal(t, int64(3), scaled.At(0).Int64())
	assert.Equal(t, int64(-6), scaled.At(1).Int64())
	assert.Equal(t, int64(9), scaled.At(2).Int64())
}

func TestCanonicalFormIsIdempotent(t *testing.T) {
	tri := oncePuncturedTorus(t)
	a, err := homology.New(tri, bigs(7, -3, 4))
	require.NoError(t, err)

	once := a.CanonicalForm()
	twice := once.CanonicalForm()
	assert.True(t, once.Equal(twice))
	for i := 0; i < tri.Zeta(); i++ {
		assert.Equal(t, once.At(i).Int64(), twice.At(i).Int64())
	}
}

func TestCanonicalFormCollapsesTriangleBoundaryToZero(t *testing.T) {
	tri := oncePuncturedTorus(t)
	boundary, err := homology.New(tri, bigs(1, 1, 1))
	require.NoError(t, err)

	canon := boundary.CanonicalForm()
	for i := 0; i < tri.Zeta(); i++ {
		assert.Equal(t, int64(0), canon.At(i).Int64(), "index %d", i)
	}
}

func TestEqualHoldsForSelfAndZero(t *testing.T) {
	tri := oncePuncturedTorus(t)
	a, err := homology.New(tri, bigs(1, 2, 3))
	require.NoError(t, err)

	assert.True(t, a.Equal(a))
	assert.True(t, homology.Zero(tri).Equal(homology.Zero(tri)))
}

func TestVectorIsDefensiveCopy(t *testing.T) {
	tri := oncePuncturedTorus(t)
	a, err := homology.New(tri, bigs(1, 2, 3))
	require.NoError(t, err)

	v := a.Vector()
	v[0].SetInt64(999)
	assert.Equal(t, int64(1), a.At(0).Int64())
}

func TestFromVectorRebindsWithoutValidation(t *testing.T) {
	tri := oncePuncturedTorus(t)
	c := homology.FromVector(tri, bigs(9, 9, 9))
	assert.Equal(t, int64(9), c.At(1).Int64())
	assert.Equal(t, tri, c.Triangulation())
}
