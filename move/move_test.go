package move_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/curver/edgelabel"
	"github.com/katalvlaran/curver/homology"
	"github.com/katalvlaran/curver/lamination"
	"github.com/katalvlaran/curver/move"
	_ "github.com/katalvlaran/curver/shorten"
	"github.com/katalvlaran/curver/surface"
	"github.com/katalvlaran/curver/triangulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bigs converts a sequence of int64s into the []*big.Int slice
// homology.New expects.
func bigs(v ...int64) []*big.Int {
	out := make([]*big.Int, len(v))
	for i, x := range v {
		out[i] = big.NewInt(x)
	}

	return out
}

// fourPuncturedSphere returns the tetrahedron-boundary ideal
// triangulation of S_{0,4}, the fixture this module uses for arcs
// between distinct vertices (oncePuncturedTorus has only one vertex).
func fourPuncturedSphere(t *testing.T) *triangulation.Triangulation {
	t.Helper()
	s, err := surface.Build(0, 4)
	require.NoError(t, err)

	return s.Triangulation
}

// oncePuncturedTorus returns the standard two-triangle ideal triangulation
// of S_{1,1}, the fixture shared across this module's packages.
func oncePuncturedTorus(t *testing.T) *triangulation.Triangulation {
	t.Helper()
	tri, err := triangulation.FromTriples([][3]int{
		{0, 1, 2},
		{-1, -2, -3},
	})
	require.NoError(t, err)

	return tri
}

func TestEdgeFlipInverseRoundTrip(t *testing.T) {
	tri := oncePuncturedTorus(t)
	flip, err := move.NewEdgeFlip(tri, edgelabel.Edge(0))
	require.NoError(t, err)

	back := flip.Inverse()
	assert.True(t, back.Target().Equal(tri))

	l, err := lamination.NewFromInts(tri, []int64{4, 3, 2})
	require.NoError(t, err)
	forward, err := flip.ApplyLamination(l)
	require.NoError(t, err)
	restored, err := back.ApplyLamination(forward)
	require.NoError(t, err)
	assert.True(t, restored.Equal(l))
}

func TestEdgeFlipRejectsNonFlippable(t *testing.T) {
	tri := oncePuncturedTorus(t)
	_, err := move.NewEdgeFlip(tri, edgelabel.Edge(99))
	assert.Error(t, err)
}

func TestMultiEdgeFlipMatchesSequentialFlips(t *testing.T) {
	tri := oncePuncturedTorus(t)
	multi, err := move.NewMultiEdgeFlip(tri, []edgelabel.Edge{edgelabel.Edge(0)})
	require.NoError(t, err)
	single, err := move.NewEdgeFlip(tri, edgelabel.Edge(0))
	require.NoError(t, err)
	assert.True(t, multi.Target().Equal(single.Target()))

	l, err := lamination.NewFromInts(tri, []int64{5, 1, 4})
	require.NoError(t, err)
	wantL, err := single.ApplyLamination(l)
	require.NoError(t, err)
	gotL, err := multi.ApplyLamination(l)
	require.NoError(t, err)
	assert.True(t, gotL.Equal(wantL))
}

func TestMultiEdgeFlipRejectsOverlap(t *testing.T) {
	tri := oncePuncturedTorus(t)
	_, err := move.NewMultiEdgeFlip(tri, []edgelabel.Edge{edgelabel.Edge(0), edgelabel.Edge(1)})
	assert.ErrorIs(t, err, move.ErrOverlappingFlips)
}

func TestIdentityIsometryIsNoOp(t *testing.T) {
	tri := oncePuncturedTorus(t)
	id := move.Identity(tri)
	assert.True(t, id.IsFlipGraphMove())

	l, err := lamination.NewFromInts(tri, []int64{2, 1, 3})
	require.NoError(t, err)
	out, err := id.ApplyLamination(l)
	require.NoError(t, err)
	assert.True(t, out.Equal(l))

	pkg, err := id.Package()
	require.NoError(t, err)
	assert.Nil(t, pkg)
}

func TestTwistInverseIsTrivialOnWeight(t *testing.T) {
	tri := oncePuncturedTorus(t)
	curve, err := lamination.NewFromInts(tri, []int64{2, 0, 0})
	require.NoError(t, err)
	require.True(t, curve.IsShort())

	twist, err := move.NewTwist(curve, big.NewInt(3))
	require.NoError(t, err)
	inv := twist.Inverse()

	l, err := lamination.NewFromInts(tri, []int64{0, 5, 4})
	require.NoError(t, err)
	forward, err := twist.ApplyLamination(l)
	require.NoError(t, err)
	restored, err := inv.ApplyLamination(forward)
	require.NoError(t, err)
	assert.True(t, restored.Equal(l))
}

func TestTwistPowersCompose(t *testing.T) {
	tri := oncePuncturedTorus(t)
	curve, err := lamination.NewFromInts(tri, []int64{2, 0, 0})
	require.NoError(t, err)

	twistA, err := move.NewTwist(curve, big.NewInt(2))
	require.NoError(t, err)
	twistB, err := move.NewTwist(curve, big.NewInt(3))
	require.NoError(t, err)
	twistSum, err := move.NewTwist(curve, big.NewInt(5))
	require.NoError(t, err)

	l, err := lamination.NewFromInts(tri, []int64{0, 7, 2})
	require.NoError(t, err)
	mid, err := twistA.ApplyLamination(l)
	require.NoError(t, err)
	composed, err := twistB.ApplyLamination(mid)
	require.NoError(t, err)
	direct, err := twistSum.ApplyLamination(l)
	require.NoError(t, err)
	assert.True(t, composed.Equal(direct))
}

func TestHalfTwistRejectsSameVertexArc(t *testing.T) {
	tri := oncePuncturedTorus(t)
	arc, err := lamination.NewFromInts(tri, []int64{0, -1, 0})
	require.NoError(t, err)
	if !arc.IsShort() {
		t.Skip("fixture arc is not short, nothing to assert here")
	}
	_, err = move.NewHalfTwist(arc, big.NewInt(1))
	assert.ErrorIs(t, err, move.ErrPreconditionViolated)
}

// TestHalfTwistAcceptsDistinctVertexArc exercises NewHalfTwist's
// positive path: edge 0 of fourPuncturedSphere runs between two of the
// tetrahedron's four distinct vertices, unlike any edge of
// oncePuncturedTorus's single-vertex fixture.
func TestHalfTwistAcceptsDistinctVertexArc(t *testing.T) {
	tri := fourPuncturedSphere(t)
	arc, err := lamination.NewFromInts(tri, []int64{-1, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	if !arc.IsShort() {
		t.Skip("fixture arc is not short, nothing to assert here")
	}

	_, err = move.NewHalfTwist(arc, big.NewInt(1))
	assert.NoError(t, err)
}

// TestHalfTwistEvenPowerEqualsBoundaryTwist checks the identity split()
// makes exact for even k: k = 2*boundaryPower with sign 0, so
// HalfTwist.ApplyLamination/ApplyHomology skip primitiveApply entirely
// and fall through to exactly the same NewTwist(arc.Boundary(),
// k/2).ApplyLamination/ApplyHomology call that a directly-constructed
// Twist about the same boundary curve would make. If the arc's boundary
// happens not to satisfy Twist's own precondition here, both sides
// would fail identically, so there is nothing to compare and the test
// skips rather than asserting on an untested side.
func TestHalfTwistEvenPowerEqualsBoundaryTwist(t *testing.T) {
	tri := fourPuncturedSphere(t)
	arc, err := lamination.NewFromInts(tri, []int64{-1, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	if !arc.IsShort() {
		t.Skip("fixture arc is not short, nothing to assert here")
	}

	half, err := move.NewHalfTwist(arc, big.NewInt(2))
	require.NoError(t, err)

	boundary, err := arc.Boundary()
	require.NoError(t, err)
	full, err := move.NewTwist(boundary, big.NewInt(1))
	if err != nil {
		t.Skip("arc boundary does not satisfy Twist's own precondition here")
	}

	l, err := lamination.NewFromInts(tri, []int64{0, 3, 2, 1, 4, 2})
	require.NoError(t, err)

	gotL, err := half.ApplyLamination(l)
	require.NoError(t, err)
	wantL, err := full.ApplyLamination(l)
	require.NoError(t, err)
	assert.True(t, gotL.Equal(wantL))

	h, err := homology.New(tri, bigs(1, 0, 2, 0, 3, 0))
	require.NoError(t, err)
	gotH, err := half.ApplyHomology(h)
	require.NoError(t, err)
	wantH, err := full.ApplyHomology(h)
	require.NoError(t, err)
	assert.True(t, gotH.Equal(wantH))
}

func TestCrushRejectsWrongWeightCurve(t *testing.T) {
	tri := oncePuncturedTorus(t)
	notWeightTwo, err := lamination.NewFromInts(tri, []int64{4, 0, 0})
	require.NoError(t, err)
	_, err = move.NewCrush(notWeightTwo)
	assert.ErrorIs(t, err, move.ErrPreconditionViolated)
}

func TestCrushOnIsolatingCurveIsRejectedOrUnsupported(t *testing.T) {
	tri := oncePuncturedTorus(t)
	curve, err := lamination.NewFromInts(tri, []int64{2, 0, 0})
	require.NoError(t, err)
	require.True(t, curve.IsShort())

	// On this one-vertex fixture the square around every edge is
	// necessarily degenerate (its own two "opposite" sides coincide),
	// so Crush must reject it rather than silently produce a bad
	// triangulation.
	_, err = move.NewCrush(curve)
	assert.Error(t, err)
}

// wideAnnulusFixture returns a nine-edge, six-triangle triangulation
// built so that edge 0's square has four pairwise-distinct far
// neighbours (triangles C, D, E, F below), none of them coinciding
// with either of edge 0's own two triangles or with each other: the
// minimal configuration that actually exercises Crush's relabelling
// instead of hitting the same degenerate square every single-annulus
// fixture in this package otherwise has.
//
//	triA = (0, 1, 2)     triB = (~0, 3, 4)
//	triC = (~1, 5, ~8)   triD = (~2, 6, ~5)
//	triE = (~3, 7, ~6)   triF = (~4, 8, ~7)
func wideAnnulusFixture(t *testing.T) *triangulation.Triangulation {
	t.Helper()
	tri, err := triangulation.FromTriples([][3]int{
		{0, 1, 2},
		{-1, 3, 4},
		{-2, 5, -9},
		{-3, 6, -6},
		{-4, 7, -7},
		{-5, 8, -8},
	})
	require.NoError(t, err)

	return tri
}

func TestCrushAcceptsNonIsolatingCurve(t *testing.T) {
	tri := wideAnnulusFixture(t)
	curve, err := lamination.NewFromInts(tri, []int64{2, 0, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	if !curve.IsShort() {
		t.Skip("fixture curve is not short, nothing to assert here")
	}

	_, err = move.NewCrush(curve)
	assert.NoError(t, err)
}

// TestCrushLiftRoundTripsCompatibleLamination exercises crushMatrices'
// documented pair directly: a lamination whose a and d coordinates
// already agree, and whose b and c coordinates already agree (the
// "disjoint from the crushed curve" condition Crush's doc comment
// assumes), survives Crush then Lift unchanged, since Crush only
// drops p/c/d's coordinates and Lift only reconstructs them from a/b's
// surviving values.
func TestCrushLiftRoundTripsCompatibleLamination(t *testing.T) {
	tri := wideAnnulusFixture(t)
	curve, err := lamination.NewFromInts(tri, []int64{2, 0, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	if !curve.IsShort() {
		t.Skip("fixture curve is not short, nothing to assert here")
	}

	crush, err := move.NewCrush(curve)
	require.NoError(t, err)
	lift := crush.Inverse()

	l, err := lamination.NewFromInts(tri, []int64{0, 3, 5, 5, 3, 7, 2, 9, 4})
	require.NoError(t, err)

	crushed, err := crush.ApplyLamination(l)
	require.NoError(t, err)
	assert.Equal(t, 6, crushed.Zeta())

	lifted, err := lift.ApplyLamination(crushed)
	require.NoError(t, err)
	assert.True(t, lifted.Equal(l))
}
