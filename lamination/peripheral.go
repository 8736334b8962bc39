package lamination

import (
	"math/big"

	"github.com/katalvlaran/curver/bigrat"
	"github.com/katalvlaran/curver/edgelabel"
)

// peripheralAtVertex returns the peripheral multiplicity contributed by
// the vertex whose outgoing edges are cycle: the minimum, over cycle, of
// Left(edge).
func (l *Lamination) peripheralAtVertex(cycle []edgelabel.Edge) *big.Int {
	m := l.Left(cycle[0])
	for _, e := range cycle[1:] {
		m = bigrat.Min(m, l.Left(e))
	}

	return m
}

// Peripheral returns the peripheral part of l: for every vertex v, the
// loop parallel to v's puncture contributes its multiplicity (the
// minimum dual weight Left(e) over v's outgoing edges e) to every edge
// index that appears, in either orientation, among v's outgoing edges.
// An edge index bordering two distinct vertices picks up a contribution
// from each.
func (l *Lamination) Peripheral() *Lamination {
	out := make([]*big.Int, l.Zeta())
	for i := range out {
		out[i] = big.NewInt(0)
	}
	for _, cycle := range l.tri.Vertices() {
		m := l.peripheralAtVertex(cycle)
		if m.Sign() == 0 {
			continue
		}
		for _, e := range cycle {
			idx := e.Index()
			out[idx] = bigrat.Add(out[idx], m)
		}
	}

	return withWeights(l.tri, out)
}

// NonPeripheral returns l.Sub(l.Peripheral()).
func (l *Lamination) NonPeripheral() *Lamination {
	return l.Sub(l.Peripheral())
}

// IsPeripheral reports whether l equals its own peripheral part, i.e.
// l.NonPeripheral().IsEmpty().
func (l *Lamination) IsPeripheral() bool {
	return l.NonPeripheral().IsEmpty()
}
