package move

import (
	"math/big"

	"github.com/katalvlaran/curver/bigrat"
	"github.com/katalvlaran/curver/edgelabel"
	"github.com/katalvlaran/curver/homology"
	"github.com/katalvlaran/curver/lamination"
	"github.com/katalvlaran/curver/triangulation"
)

// EdgeFlip replaces the diagonal e of its surrounding square with the
// opposite diagonal, keeping every other label fixed.
type EdgeFlip struct {
	source, target *triangulation.Triangulation
	edge            edgelabel.Edge
	square          [5]edgelabel.Edge // a, b, c, d, e as built by Square(e)
}

// NewEdgeFlip builds the EdgeFlip at e, requiring e to be flippable in
// source.
func NewEdgeFlip(source *triangulation.Triangulation, e edgelabel.Edge) (*EdgeFlip, error) {
	square, err := source.Square(e)
	if err != nil {
		return nil, ErrNotFlippable
	}
	target := flippedTriangulation(source, e)

	return &EdgeFlip{source: source, target: target, edge: e, square: square}, nil
}

// flippedTriangulation rebuilds the triangle list with triangleOf[e]
// and triangleOf[~e] replaced by the two triangles formed around the
// opposite diagonal, keeping every other triangle identical.
func flippedTriangulation(t *triangulation.Triangulation, e edgelabel.Edge) *triangulation.Triangulation {
	square, err := t.Square(e)
	if err != nil {
		panic(err)
	}
	a, b, c, d := square[0], square[1], square[2], square[3]

	triples := make([][3]int, 0, t.NumTriangles())
	oldA := t.MustCornerOf(e) // (e, a, b)
	oldB := t.MustCornerOf(e.Invert())
	for _, tri := range t.Triangles() {
		if tri == oldA.Canonical() || tri == oldB.Canonical() {
			continue
		}
		edges := tri.Edges()
		triples = append(triples, [3]int{int(edges[0]), int(edges[1]), int(edges[2])})
	}
	// New diagonal keeps label e, now separating (d, a) from (b, c):
	// new triangles (e, d, a) and (~e, b, c).
	triples = append(triples, [3]int{int(e), int(d), int(a)})
	triples = append(triples, [3]int{int(e.Invert()), int(b), int(c)})

	newTri, err := triangulation.FromTriples(triples)
	if err != nil {
		panic(err)
	}

	return newTri
}

func (m *EdgeFlip) Source() *triangulation.Triangulation { return m.source }
func (m *EdgeFlip) Target() *triangulation.Triangulation { return m.target }
func (m *EdgeFlip) IsFlipGraphMove() bool                { return true }

// ApplyLamination implements Bell's nine-case normal-coordinate update
// for the flipped edge; every other coordinate is unchanged.
func (m *EdgeFlip) ApplyLamination(l *lamination.Lamination) (*lamination.Lamination, error) {
	a, b, c, d, e := m.square[0], m.square[1], m.square[2], m.square[3], m.square[4]
	A := bigrat.ClampNonNeg(l.Get(a))
	B := bigrat.ClampNonNeg(l.Get(b))
	C := bigrat.ClampNonNeg(l.Get(c))
	D := bigrat.ClampNonNeg(l.Get(d))
	E := l.Get(e)

	newE := flipNewWeight(A, B, C, D, E)

	out := l.Vector()
	out[e.Index()] = newE

	return lamination.New(m.target, out)
}

// flipNewWeight implements the nine mutually exclusive cases of the
// Bell formula, in the order given there; the final default case
// applies when none of the eight guarded cases do.
func flipNewWeight(A, B, C, D, E *big.Int) *big.Int {
	two := big.NewInt(2)
	switch {
	case E.Cmp(bigrat.Add(A, B)) >= 0 && A.Cmp(D) >= 0 && B.Cmp(C) >= 0:
		return bigrat.Sub(bigrat.Add(A, B), E)
	case E.Cmp(bigrat.Add(C, D)) >= 0 && D.Cmp(A) >= 0 && C.Cmp(B) >= 0:
		return bigrat.Sub(bigrat.Add(C, D), E)
	case E.Sign() <= 0 && A.Cmp(B) >= 0 && D.Cmp(C) >= 0:
		return bigrat.Sub(bigrat.Add(A, D), E)
	case E.Sign() <= 0 && B.Cmp(A) >= 0 && C.Cmp(D) >= 0:
		return bigrat.Sub(bigrat.Add(B, C), E)
	case E.Sign() >= 0 && A.Cmp(bigrat.Add(B, E)) >= 0 && D.Cmp(bigrat.Add(C, E)) >= 0:
		return bigrat.Sub(bigrat.Add(A, D), bigrat.Mul(two, E))
	case E.Sign() >= 0 && B.Cmp(bigrat.Add(A, E)) >= 0 && C.Cmp(bigrat.Add(D, E)) >= 0:
		return bigrat.Sub(bigrat.Add(B, C), bigrat.Mul(two, E))
	case bigrat.Add(A, B).Cmp(E) >= 0 &&
		bigrat.Add(B, E).Cmp(bigrat.Add(bigrat.Mul(two, C), A)) >= 0 &&
		bigrat.Add(A, E).Cmp(bigrat.Add(bigrat.Mul(two, D), B)) >= 0:
		return bigrat.Half(bigrat.Sub(bigrat.Add(A, B), E))
	case bigrat.Add(C, D).Cmp(E) >= 0 &&
		bigrat.Add(D, E).Cmp(bigrat.Add(bigrat.Mul(two, A), C)) >= 0 &&
		bigrat.Add(C, E).Cmp(bigrat.Add(bigrat.Mul(two, B), D)) >= 0:
		return bigrat.Half(bigrat.Sub(bigrat.Add(C, D), E))
	default:
		return bigrat.Sub(bigrat.Max(bigrat.Add(A, C), bigrat.Add(B, D)), E)
	}
}

// ApplyHomology moves the algebraic weight off e onto a and b (the two
// edges of e's own source triangle), zeroing e; every other coordinate
// is unchanged. See DESIGN.md for why this reading ("move the algebraic
// weight off e onto a and b with appropriate signs; zero e") was chosen
// over an unspecified alternative.
func (m *EdgeFlip) ApplyHomology(h *homology.Class) (*homology.Class, error) {
	a, b, e := m.square[0], m.square[1], m.square[4]
	out := h.Vector()
	val := h.Get(e)
	out[a.Index()] = bigrat.Add(out[a.Index()], bigrat.MulInt64(val, int64(a.Sign())))
	out[b.Index()] = bigrat.Add(out[b.Index()], bigrat.MulInt64(val, int64(b.Sign())))
	out[e.Index()] = big.NewInt(0)

	return homology.FromVector(m.target, out), nil
}

// Inverse returns the EdgeFlip on the target triangulation at the same
// label, with source as its target. Flipping e again in target gives
// source with e's orientation reversed; weights are indexed by Index
// and ApplyHomology zeroes e's coordinate, so the two agree on every
// coordinate the move produces.
func (m *EdgeFlip) Inverse() Move {
	inv, err := NewEdgeFlip(m.target, m.edge)
	if err != nil {
		panic(err)
	}
	inv.target = m.source

	return inv
}

// Package returns e.Label() as an int.
func (m *EdgeFlip) Package() (any, error) {
	return int(m.edge), nil
}
