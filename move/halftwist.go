package move

import (
	"math/big"

	"github.com/katalvlaran/curver/bigrat"
	"github.com/katalvlaran/curver/edgelabel"
	"github.com/katalvlaran/curver/homology"
	"github.com/katalvlaran/curver/lamination"
	"github.com/katalvlaran/curver/triangulation"
)

// HalfTwist is the half-Dehn-twist of power k about a short arc
// connecting two distinct vertices. Even powers reduce to a full Twist
// about the arc's boundary curve; odd powers apply one primitive half
// twist (the same closed-form update Twist uses, over the arc's own
// vector) and then the remaining even part as a boundary Twist, which
// is exactly the k even / k odd split this package's Twist formula
// already generalizes (|k| <= 1 needs no special case since the
// boundary twist power is 0 there).
type HalfTwist struct {
	arc      *lamination.Lamination
	power    *big.Int
	boundary *lamination.Lamination
	source   *triangulation.Triangulation
}

func vertexIndexOf(t *triangulation.Triangulation, e edgelabel.Edge) int {
	for i, cycle := range t.Vertices() {
		for _, x := range cycle {
			if x == e {
				return i
			}
		}
	}

	return -1
}

// NewHalfTwist builds the half twist of power k about arc, requiring
// arc to be short and to connect two distinct vertices.
func NewHalfTwist(arc *lamination.Lamination, k *big.Int) (*HalfTwist, error) {
	if !arc.IsShort() {
		return nil, ErrPreconditionViolated
	}
	p, err := arc.Parallel()
	if err != nil {
		return nil, err
	}
	t := arc.Triangulation()
	if vertexIndexOf(t, p) == vertexIndexOf(t, p.Invert()) {
		return nil, ErrPreconditionViolated
	}
	boundary, err := arc.Boundary()
	if err != nil {
		return nil, err
	}

	return &HalfTwist{arc: arc, power: new(big.Int).Set(k), boundary: boundary, source: t}, nil
}

func (m *HalfTwist) Source() *triangulation.Triangulation { return m.source }
func (m *HalfTwist) Target() *triangulation.Triangulation { return m.source }
func (m *HalfTwist) IsFlipGraphMove() bool                { return true }

// split returns (sign, boundaryPower): k = boundaryPower*2 + sign, with
// sign in {-1, 0, 1} (0 when k is even).
func (m *HalfTwist) split() (int64, *big.Int) {
	if m.power.Bit(0) == 0 {
		return 0, new(big.Int).Rsh(m.power, 1)
	}
	abs := new(big.Int).Abs(m.power)
	half := new(big.Int).Rsh(abs, 1)
	sign := int64(m.power.Sign())
	if sign == 0 {
		sign = 1
	}
	if m.power.Sign() < 0 {
		half.Neg(half)
	}

	return sign, half
}

func (m *HalfTwist) primitiveApply(l *lamination.Lamination, sign int64) *lamination.Lamination {
	i0 := m.arc.Intersection(l)
	if i0.Sign() == 0 {
		return l
	}
	delta := m.arc.ScaleInt64(sign).Scale(i0)

	return l.Add(delta)
}

// ApplyLamination applies the primitive half twist (if k is odd) and
// then the remaining full twists about the boundary curve.
func (m *HalfTwist) ApplyLamination(l *lamination.Lamination) (*lamination.Lamination, error) {
	sign, boundaryPower := m.split()
	cur := l
	if sign != 0 {
		cur = m.primitiveApply(cur, sign)
	}
	if boundaryPower.Sign() == 0 {
		return cur, nil
	}
	twistMove, err := NewTwist(m.boundary, boundaryPower)
	if err != nil {
		return nil, err
	}

	return twistMove.ApplyLamination(cur)
}

// ApplyHomology mirrors ApplyLamination's split, using the same
// closed-form update Twist.ApplyHomology uses.
func (m *HalfTwist) ApplyHomology(h *homology.Class) (*homology.Class, error) {
	sign, boundaryPower := m.split()
	cur := h
	if sign != 0 {
		p, err := m.arc.Parallel()
		if err != nil {
			return nil, err
		}
		out := cur.Vector()
		val := cur.Get(p)
		out[p.Index()] = bigrat.Add(out[p.Index()], bigrat.MulInt64(val, sign*int64(p.Sign())))
		cur = homology.FromVector(m.source, out)
	}
	if boundaryPower.Sign() == 0 {
		return cur, nil
	}
	twistMove, err := NewTwist(m.boundary, boundaryPower)
	if err != nil {
		return nil, err
	}

	return twistMove.ApplyHomology(cur)
}

// Inverse returns the half twist of power -k about the same arc.
func (m *HalfTwist) Inverse() Move {
	return &HalfTwist{arc: m.arc, power: new(big.Int).Neg(m.power), boundary: m.boundary, source: m.source}
}

// Package returns (arc.Parallel().label, power).
func (m *HalfTwist) Package() (any, error) {
	p, err := m.arc.Parallel()
	if err != nil {
		return nil, err
	}

	return [2]int64{int64(p), m.power.Int64()}, nil
}
