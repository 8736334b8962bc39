package lamination

import (
	"math/big"

	"github.com/katalvlaran/curver/bigrat"
	"github.com/katalvlaran/curver/triangulation"
)

// sameTriangulation panics if l and other are not bound to the same
// triangulation; arithmetic across triangulations is meaningless.
func (l *Lamination) sameTriangulation(other *Lamination) {
	if !l.tri.Equal(other.tri) {
		panic("lamination: arithmetic between laminations on different triangulations")
	}
}

// Add returns l + other, coordinatewise.
func (l *Lamination) Add(other *Lamination) *Lamination {
	l.sameTriangulation(other)
	out := make([]*big.Int, l.Zeta())
	for i := range out {
		out[i] = bigrat.Add(l.weights[i], other.weights[i])
	}

	return withWeights(l.tri, out)
}

// Sub returns l - other, coordinatewise.
func (l *Lamination) Sub(other *Lamination) *Lamination {
	l.sameTriangulation(other)
	out := make([]*big.Int, l.Zeta())
	for i := range out {
		out[i] = bigrat.Sub(l.weights[i], other.weights[i])
	}

	return withWeights(l.tri, out)
}

// Scale returns k * l, coordinatewise.
func (l *Lamination) Scale(k *big.Int) *Lamination {
	out := make([]*big.Int, l.Zeta())
	for i := range out {
		out[i] = bigrat.Mul(l.weights[i], k)
	}

	return withWeights(l.tri, out)
}

// ScaleInt64 is the int64 convenience form of Scale.
func (l *Lamination) ScaleInt64(k int64) *Lamination {
	return l.Scale(big.NewInt(k))
}

// Equal reports whether l and other are bound to the same triangulation
// and agree coordinatewise.
func (l *Lamination) Equal(other *Lamination) bool {
	if other == nil || !l.tri.Equal(other.tri) {
		return false
	}
	for i := range l.weights {
		if l.weights[i].Cmp(other.weights[i]) != 0 {
			return false
		}
	}

	return true
}

// DisjointSum folds Add over parts, starting from Empty(tri). Used to
// reassemble a lamination from its (component, multiplicity) pairs; see
// Components.
func DisjointSum(tri *triangulation.Triangulation, parts []*Lamination) *Lamination {
	sum := Empty(tri)
	for _, p := range parts {
		sum = sum.Add(p)
	}

	return sum
}
