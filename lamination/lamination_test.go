package lamination_test

import (
	"math/big"
	"testing"

	_ "github.com/katalvlaran/curver/shorten" // registers lamination.Shortener
	"github.com/katalvlaran/curver/lamination"
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

func TestNewRejectsWrongLength(t *testing.T) {
	tri := oncePuncturedTorus(t)
	_, err := lamination.NewFromInts(tri, []int64{1, 2})
	assert.ErrorIs(t, err, lamination.ErrWrongLength)
}

func TestEmptyIsEmptyAndZeroWeight(t *testing.T) {
	tri := oncePuncturedTorus(t)
	l := lamination.Empty(tri)
	assert.True(t, l.IsEmpty())
	assert.Equal(t, int64(0), l.Weight().Int64())
}

func TestWeightClampsNegativeEntries(t *testing.T) {
	tri := oncePuncturedTorus(t)
	l, err := lamination.NewFromInts(tri, []int64{-1, 3, 2})
	require.NoError(t, err)
	// Weight is sum(max(g[i], 0)): the -1 arc entry contributes 0.
	assert.Equal(t, int64(5), l.Weight().Int64())
}

func TestAddSubRoundTrip(t *testing.T) {
	tri := oncePuncturedTorus(t)
	a, err := lamination.NewFromInts(tri, []int64{1, 2, 3})
	require.NoError(t, err)
	b, err := lamination.NewFromInts(tri, []int64{4, 0, 1})
	require.NoError(t, err)

	sum := a.Add(b)
	back := sum.Sub(b)
	assert.True(t, back.Equal(a))
}

func TestScaleDistributesOverWeight(t *testing.T) {
	tri := oncePuncturedTorus(t)
	curve, err := lamination.NewFromInts(tri, []int64{2, 0, 0})
	require.NoError(t, err)
	scaled := curve.Scale(big.NewInt(3))
	assert.Equal(t, int64(6), scaled.Weight().Int64())
}

func TestIsShortOnUnitCurve(t *testing.T) {
	tri := oncePuncturedTorus(t)
	curve, err := lamination.NewFromInts(tri, []int64{2, 0, 0})
	require.NoError(t, err)
	assert.True(t, curve.IsShort())

	p, err := curve.Parallel()
	require.NoError(t, err)
	assert.Equal(t, 0, p.Index())
}

func TestParallelRejectsNonShortLamination(t *testing.T) {
	tri := oncePuncturedTorus(t)
	// {5, 3, 4} is the shorten package's own not-yet-short fixture.
	l, err := lamination.NewFromInts(tri, []int64{5, 3, 4})
	require.NoError(t, err)
	require.False(t, l.IsShort())
	_, err = l.Parallel()
	assert.ErrorIs(t, err, lamination.ErrNotShort)
}

func TestIntersectionWithEmptyLaminationIsZero(t *testing.T) {
	tri := oncePuncturedTorus(t)
	a, err := lamination.NewFromInts(tri, []int64{2, 0, 0})
	require.NoError(t, err)
	empty := lamination.Empty(tri)
	assert.Equal(t, int64(0), a.Intersection(empty).Int64())
}
