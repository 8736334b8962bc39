package shorten_test

import (
	"testing"

	"github.com/katalvlaran/curver/lamination"
	_ "github.com/katalvlaran/curver/shorten"
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

func TestComputeOnAlreadyShortLamination(t *testing.T) {
	tri := oncePuncturedTorus(t)
	l, err := lamination.NewFromInts(tri, []int64{2, 0, 0})
	require.NoError(t, err)
	require.True(t, l.IsShort())

	short, reduce, err := shortenCompute(l)
	require.NoError(t, err)
	assert.True(t, short.Equal(l))

	back, err := reduce.ApplyInverse(short)
	require.NoError(t, err)
	assert.True(t, back.Equal(l))
}

func TestComputeReducesToShortForm(t *testing.T) {
	tri := oncePuncturedTorus(t)
	l, err := lamination.NewFromInts(tri, []int64{5, 3, 4})
	require.NoError(t, err)

	short, reduce, err := shortenCompute(l)
	require.NoError(t, err)
	assert.True(t, short.IsShort())

	forward, err := reduce.Apply(l)
	require.NoError(t, err)
	assert.True(t, forward.Equal(short))
}

// shortenCompute routes through lamination's registered Shortener, the
// same call path Components/Intersection/Boundary use, to make sure
// this package's init actually wired itself in.
func shortenCompute(l *lamination.Lamination) (*lamination.Lamination, lamination.Reducer, error) {
	return lamination.Shortener(l)
}
