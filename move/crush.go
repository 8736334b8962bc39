package move

import (
	"math/big"
	"sort"

	"github.com/katalvlaran/curver/edgelabel"
	"github.com/katalvlaran/curver/homology"
	"github.com/katalvlaran/curver/intmatrix"
	"github.com/katalvlaran/curver/lamination"
	"github.com/katalvlaran/curver/triangulation"
)

// Crush collapses the annulus neighbourhood of a short, weight-2,
// non-isolating curve into a new triangulation, acting on coordinates
// via an exact integer projection matrix. The curve's own parallel edge
// p, and the two edges (d and c) it identifies with its square's other
// diagonal sides (a and b), are assumed by the annulus-collapse lemma
// to already carry equal weight in any lamination disjoint from the
// curve; Crush therefore just drops those three coordinates (a pure
// selection), and Lift re-inserts them by copying a's value onto d's
// slot, b's value onto c's slot, and zeroing p's slot. See DESIGN.md
// for why this selection-matrix model was chosen over a full
// once-punctured-disk reconstruction.
type Crush struct {
	curve          *lamination.Lamination
	source, target *triangulation.Triangulation
	p, a, b, c, d  edgelabel.Edge
	survivors      []int // old indices kept, in ascending order
	crushMatrix    *intmatrix.Dense
	liftMatrix     *intmatrix.Dense
}

// NewCrush builds the crush of source along curve, requiring curve to
// be short, weight exactly 2, and non-isolating (its parallel edge
// borders two distinct triangles whose square has four pairwise
// distinct undirected sides).
func NewCrush(curve *lamination.Lamination) (*Crush, error) {
	if !curve.IsShort() {
		return nil, ErrPreconditionViolated
	}
	p, err := curve.Parallel()
	if err != nil {
		return nil, err
	}
	if curve.Get(p).Cmp(big.NewInt(2)) != 0 {
		return nil, ErrPreconditionViolated
	}

	t := curve.Triangulation()
	square, err := t.Square(p)
	if err != nil {
		return nil, ErrUnsupportedConfiguration
	}
	a, b, c, d := square[0], square[1], square[2], square[3]
	if isIsolating(a, b, c, d, p) {
		return nil, ErrUnsupportedConfiguration
	}

	target, survivors, err := crushTriangulation(t, p, a, b, c, d)
	if err != nil {
		return nil, err
	}

	crushM, liftM := crushMatrices(t.Zeta(), survivors, a, b, c, d, p)

	return &Crush{
		curve: curve, source: t, target: target,
		p: p, a: a, b: b, c: c, d: d,
		survivors: survivors, crushMatrix: crushM, liftMatrix: liftM,
	}, nil
}

// isIsolating reports whether the square around p degenerates: any two
// of its four sides (by undirected index) coincide, or coincide with p
// itself, which signals a once-punctured monogon/bigon rather than a
// genuine annulus.
func isIsolating(a, b, c, d, p edgelabel.Edge) bool {
	idx := []int{a.Index(), b.Index(), c.Index(), d.Index()}
	seen := map[int]bool{p.Index(): true}
	for _, i := range idx {
		if seen[i] {
			return true
		}
		seen[i] = true
	}

	return false
}

// crushTriangulation rebuilds the triangle list with p's two adjacent
// triangles removed, so the two triangles across a and d now border
// each other directly across a, and likewise the two across b and c
// now border each other across b: the triangle across d takes over
// a's slot on the far side of the collapsed square (it carries the
// same orientation a itself had, mating with whatever still carries
// a's inverse), and correspondingly for c and b. d and c themselves
// never recur in a surviving triangle (they only ever labelled the
// dropped pair), so only their inverses need relabelling.
func crushTriangulation(t *triangulation.Triangulation, p, a, b, c, d edgelabel.Edge) (*triangulation.Triangulation, []int, error) {
	dropped := map[int]bool{p.Index(): true, d.Index(): true, c.Index(): true}
	survivors := make([]int, 0, t.Zeta()-3)
	for i := 0; i < t.Zeta(); i++ {
		if !dropped[i] {
			survivors = append(survivors, i)
		}
	}
	sort.Ints(survivors)
	newIndex := make(map[int]int, len(survivors))
	for i, old := range survivors {
		newIndex[old] = i
	}

	replace := func(e edgelabel.Edge) edgelabel.Edge {
		switch e {
		case d.Invert():
			return a
		case c.Invert():
			return b
		default:
			return e
		}
	}
	renumber := func(e edgelabel.Edge) edgelabel.Edge {
		n := newIndex[e.Index()]
		if e.Sign() < 0 {
			return edgelabel.Edge(n).Invert()
		}

		return edgelabel.Edge(n)
	}

	triA := t.MustCornerOf(p).Triangle
	triB := t.MustCornerOf(p.Invert()).Triangle

	triples := make([][3]int, 0, t.NumTriangles()-2)
	for _, tri := range t.Triangles() {
		if tri == triA || tri == triB {
			continue
		}
		edges := tri.Edges()
		triples = append(triples, [3]int{
			int(renumber(replace(edges[0]))),
			int(renumber(replace(edges[1]))),
			int(renumber(replace(edges[2]))),
		})
	}

	target, err := triangulation.FromTriples(triples)
	if err != nil {
		return nil, nil, ErrUnsupportedConfiguration
	}

	return target, survivors, nil
}

// crushMatrices builds the coordinate-projection matrix (crush) and its
// documented section (lift): crush selects the surviving indices;
// lift re-expands, duplicating a's row onto d and b's row onto c, and
// zeroing p.
func crushMatrices(oldZeta int, survivors []int, a, b, c, d, p edgelabel.Edge) (*intmatrix.Dense, *intmatrix.Dense) {
	newZeta := len(survivors)
	crushM, _ := intmatrix.NewDense(newZeta, oldZeta)
	for newIdx, oldIdx := range survivors {
		_ = crushM.Set(newIdx, oldIdx, big.NewInt(1))
	}

	liftM, _ := intmatrix.NewDense(oldZeta, newZeta)
	newIndex := make(map[int]int, len(survivors))
	for i, old := range survivors {
		newIndex[old] = i
	}
	for oldIdx := 0; oldIdx < oldZeta; oldIdx++ {
		switch oldIdx {
		case p.Index():
			// row stays zero
		case d.Index():
			_ = liftM.Set(oldIdx, newIndex[a.Index()], big.NewInt(1))
		case c.Index():
			_ = liftM.Set(oldIdx, newIndex[b.Index()], big.NewInt(1))
		default:
			_ = liftM.Set(oldIdx, newIndex[oldIdx], big.NewInt(1))
		}
	}

	return crushM, liftM
}

func (m *Crush) Source() *triangulation.Triangulation { return m.source }
func (m *Crush) Target() *triangulation.Triangulation { return m.target }
func (m *Crush) IsFlipGraphMove() bool                { return false }

// ApplyLamination applies the crush's projection matrix to l's vector.
func (m *Crush) ApplyLamination(l *lamination.Lamination) (*lamination.Lamination, error) {
	out, err := m.crushMatrix.Apply(l.Vector())
	if err != nil {
		return nil, err
	}

	return lamination.New(m.target, out)
}

// ApplyHomology is unsupported: Crush's effect on first homology is
// intentionally left undefined; see DESIGN.md.
func (m *Crush) ApplyHomology(*homology.Class) (*homology.Class, error) {
	return nil, ErrHomologyUnsupported
}

// Inverse returns the Lift of this crush.
func (m *Crush) Inverse() Move {
	return &Lift{crush: m}
}

// Package reports that Crush is not packageable: it is identified by
// its curve and matrix, and must be rebuilt via NewCrush.
func (m *Crush) Package() (any, error) {
	return nil, ErrNotPackageable
}

// Lift is the inverse of a Crush, taking coordinates on the crushed
// target triangulation back to the original source via crush's
// documented section matrix.
type Lift struct {
	crush *Crush
}

func (m *Lift) Source() *triangulation.Triangulation { return m.crush.target }
func (m *Lift) Target() *triangulation.Triangulation { return m.crush.source }
func (m *Lift) IsFlipGraphMove() bool                { return false }

func (m *Lift) ApplyLamination(l *lamination.Lamination) (*lamination.Lamination, error) {
	out, err := m.crush.liftMatrix.Apply(l.Vector())
	if err != nil {
		return nil, err
	}

	return lamination.New(m.crush.source, out)
}

func (m *Lift) ApplyHomology(*homology.Class) (*homology.Class, error) {
	return nil, ErrHomologyUnsupported
}

// Inverse returns the original Crush.
func (m *Lift) Inverse() Move { return m.crush }

// Package reports that Lift is not packageable, for the same reason as
// Crush.
func (m *Lift) Package() (any, error) {
	return nil, ErrNotPackageable
}
