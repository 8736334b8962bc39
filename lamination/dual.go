package lamination

import (
	"math/big"

	"github.com/katalvlaran/curver/bigrat"
	"github.com/katalvlaran/curver/edgelabel"
	"github.com/katalvlaran/curver/triangulation"
)

// DualAt returns the dual weight opposite corner.First(): the number of
// normal arcs, inside corner's triangle, that separate corner.First()
// from the opposite vertex.
//
//	A, B, C := weight(First), weight(Second), weight(Third)
//	correction := min(A+B-C, B+C-A, C+A-B, 0)
//	dual(First) := half(B+C-A+correction)
//
// A negative correction captures terminal (parallel) arcs reaching into
// the triangle from an adjacent edge.
func (l *Lamination) DualAt(corner triangulation.Corner) *big.Int {
	a := l.Get(corner.First())
	b := l.Get(corner.Second())
	c := l.Get(corner.Third())

	correction := bigrat.Min(bigrat.Min(bigrat.Sub(bigrat.Add(a, b), c), bigrat.Sub(bigrat.Add(b, c), a)), bigrat.Min(bigrat.Sub(bigrat.Add(c, a), b), big.NewInt(0)))
	sum := bigrat.Add(bigrat.Sub(bigrat.Add(b, c), a), correction)

	return bigrat.Half(sum)
}

// DualWeight is DualAt(tri.CornerOf(e)): the dual weight opposite e
// inside the triangle e itself belongs to (not the triangle on the
// other side of e).
func (l *Lamination) DualWeight(e edgelabel.Edge) *big.Int {
	return l.DualAt(l.tri.MustCornerOf(e))
}

// Left returns the dual weight on e's own side: DualAt(corner rooted at
// e), i.e. the arcs opposite e inside triangleOf(e).
func (l *Lamination) Left(e edgelabel.Edge) *big.Int {
	return l.DualAt(l.tri.MustCornerOf(e))
}

// Right returns the dual weight on the other side of e: DualAt(corner
// rooted at ~e), i.e. the arcs opposite e inside triangleOf(~e).
func (l *Lamination) Right(e edgelabel.Edge) *big.Int {
	return l.DualAt(l.tri.MustCornerOf(e.Invert()))
}
