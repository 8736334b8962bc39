package lamination

import (
	"math/big"

	"github.com/katalvlaran/curver/bigrat"
)

// Intersection computes the geometric intersection number i(l, other),
// both bound to the same triangulation. l is shortened first (via the
// registered Shortener); other is carried forward across the same
// reduction so both sides are read in the short triangulation's
// coordinates, then summed component by component against the
// reduction-image of other:
//
//   - a parallel-arc component at edge i, multiplicity m, contributes
//     m * max(other(i), 0);
//   - a peripheral loop around a vertex with outgoing edges v_edges,
//     multiplicity m, contributes m * (max(other(p), 0) - 2*around +
//     out), with p := v_edges[0], around := min_i Left(other, v_edges[i])
//     and out := sum(max(-Left(other, e), 0)) + sum(max(-other(e), 0))
//     over e in v_edges.
func (l *Lamination) Intersection(other *Lamination) *big.Int {
	l.sameTriangulation(other)
	short, reduce := l.shorten()
	otherShort, err := reduce.Apply(other)
	if err != nil {
		panic(err)
	}

	total := big.NewInt(0)

	for _, cycle := range short.tri.Vertices() {
		m := short.peripheralAtVertex(cycle)
		if m.Sign() == 0 {
			continue
		}
		p := cycle[0]
		around := otherShort.Left(cycle[0])
		out := big.NewInt(0)
		for _, e := range cycle {
			left := otherShort.Left(e)
			around = bigrat.Min(around, left)
			out = bigrat.Add(out, bigrat.ClampNonNeg(bigrat.Neg(left)))
			out = bigrat.Add(out, bigrat.ClampNonNeg(bigrat.Neg(otherShort.Get(e))))
		}
		contribution := bigrat.Add(bigrat.Sub(bigrat.ClampNonNeg(otherShort.Get(p)), bigrat.MulInt64(around, 2)), out)
		total = bigrat.Add(total, bigrat.Mul(contribution, m))
	}

	for i := 0; i < short.Zeta(); i++ {
		v := short.At(i)
		if v.Sign() == 0 {
			continue
		}
		mult := new(big.Int).Abs(v)
		if v.Sign() > 0 {
			mult = new(big.Int).Rsh(mult, 1)
			if mult.Sign() == 0 {
				mult = big.NewInt(1)
			}
		}
		contribution := bigrat.ClampNonNeg(otherShort.At(i))
		total = bigrat.Add(total, bigrat.Mul(contribution, mult))
	}

	return total
}
