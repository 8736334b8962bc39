package triangulation_test

import (
	"testing"

	"github.com/katalvlaran/curver/edgelabel"
	"github.com/katalvlaran/curver/triangulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// oncePuncturedTorus returns the standard two-triangle ideal triangulation
// of S_{1,1}: triangles (0,1,2) and (~0,~1,~2).
func oncePuncturedTorus(t *testing.T) *triangulation.Triangulation {
	t.Helper()
	tri, err := triangulation.FromTriples([][3]int{
		{0, 1, 2},
		{-1, -2, -3},
	})
	require.NoError(t, err)

	return tri
}

func TestFromTriplesRejectsMissingLabel(t *testing.T) {
	_, err := triangulation.FromTriples([][3]int{
		{0, 1, 2},
		{-1, -2, 2}, // duplicates label 2, missing ~2
	})
	assert.Error(t, err)
}

func TestFromTriplesRejectsEmpty(t *testing.T) {
	_, err := triangulation.FromTriples(nil)
	assert.ErrorIs(t, err, triangulation.ErrEmptyTriangulation)
}

func TestInvertInvolution(t *testing.T) {
	tri := oncePuncturedTorus(t)
	for _, label := range tri.AllLabels() {
		assert.Equal(t, label, label.Invert().Invert())
		assert.Equal(t, label.Index(), label.Invert().Index())
		assert.Equal(t, -label.Sign(), label.Invert().Sign())
	}
}

func TestZetaAndEulerCharacteristic(t *testing.T) {
	tri := oncePuncturedTorus(t)
	assert.Equal(t, 3, tri.Zeta())
	assert.Equal(t, 2, tri.NumTriangles())
	assert.Equal(t, -1, tri.EulerCharacteristic())
}

func TestSurfaceClassification(t *testing.T) {
	tri := oncePuncturedTorus(t)
	assert.True(t, tri.IsConnected())
	surfaces := tri.Surface()
	require.Len(t, surfaces, 1)
	assert.Equal(t, 1, surfaces[0].Genus)
	assert.Equal(t, 1, surfaces[0].Punctures)
	assert.Equal(t, -1, surfaces[0].Chi)
}

func TestIsFlippableAndSquare(t *testing.T) {
	tri := oncePuncturedTorus(t)
	for _, e := range tri.AllLabels() {
		assert.True(t, tri.IsFlippable(e), "edge %v should be flippable in S_1,1", e)
	}

	square, err := tri.Square(edgelabel.Edge(0))
	require.NoError(t, err)
	assert.Equal(t, edgelabel.Edge(0), square[4])
}

func TestSigRoundTrip(t *testing.T) {
	tri := oncePuncturedTorus(t)
	sig := tri.Sig()
	rebuilt, err := triangulation.FromSig(sig)
	require.NoError(t, err)
	assert.True(t, tri.Equal(rebuilt))
	assert.Equal(t, sig, rebuilt.Sig())
}

func TestFromSigRejectsMalformed(t *testing.T) {
	_, err := triangulation.FromSig("not-a-signature")
	assert.Error(t, err)
}

func TestDualTreeSizeIsTrianglesMinusComponents(t *testing.T) {
	tri := oncePuncturedTorus(t)
	dt := tri.DualTree(nil)
	// A spanning tree over NumTriangles nodes (1 component here) has
	// NumTriangles-1 edges.
	assert.Len(t, dt, tri.NumTriangles()-1)
}

func TestIsometriesToSelfIncludesIdentity(t *testing.T) {
	tri := oncePuncturedTorus(t)
	isoms := tri.IsometriesTo(tri)
	require.NotEmpty(t, isoms)

	foundIdentity := false
	for _, m := range isoms {
		allFixed := true
		for _, l := range tri.AllLabels() {
			if m[l] != l {
				allFixed = false
				break
			}
		}
		if allFixed {
			foundIdentity = true
			break
		}
	}
	assert.True(t, foundIdentity, "identity map should appear among self-isometries")
}

func TestIsometriesToDifferentSizeIsEmpty(t *testing.T) {
	tri := oncePuncturedTorus(t)
	other, err := triangulation.FromTriples([][3]int{
		{0, 1, 2},
		{3, 4, 5},
		{-1, -2, -4},
		{-3, -5, -6},
	})
	require.NoError(t, err)
	assert.Empty(t, tri.IsometriesTo(other))
}
