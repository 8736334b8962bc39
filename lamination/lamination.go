package lamination

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/curver/bigrat"
	"github.com/katalvlaran/curver/edgelabel"
	"github.com/katalvlaran/curver/triangulation"
)

// Lamination is an integer weight vector over the edges of a
// Triangulation, encoding the isotopy class of a disjoint union of
// simple curves and arcs. It is an immutable value object bound to one
// Triangulation; every method that "changes" a Lamination returns a new
// one.
type Lamination struct {
	tri     *triangulation.Triangulation
	weights []*big.Int // length tri.Zeta(), indexed by edge index
}

// New validates g against tri.Zeta() and returns the Lamination it
// describes. g is copied; callers may reuse or mutate their slice
// afterwards.
func New(tri *triangulation.Triangulation, g []*big.Int) (*Lamination, error) {
	if len(g) != tri.Zeta() {
		return nil, fmt.Errorf("lamination: got %d entries, want %d: %w", len(g), tri.Zeta(), ErrWrongLength)
	}
	weights := make([]*big.Int, len(g))
	for i, v := range g {
		weights[i] = new(big.Int).Set(v)
	}

	return &Lamination{tri: tri, weights: weights}, nil
}

// NewFromInts is the int64 convenience constructor used throughout tests
// and the surface package's fixed fixtures.
func NewFromInts(tri *triangulation.Triangulation, g []int64) (*Lamination, error) {
	weights := make([]*big.Int, len(g))
	for i, v := range g {
		weights[i] = big.NewInt(v)
	}

	return New(tri, weights)
}

// Empty returns the zero Lamination on tri (no curves or arcs at all).
func Empty(tri *triangulation.Triangulation) *Lamination {
	weights := make([]*big.Int, tri.Zeta())
	for i := range weights {
		weights[i] = big.NewInt(0)
	}

	return &Lamination{tri: tri, weights: weights}
}

// Triangulation returns the triangulation this lamination is bound to.
func (l *Lamination) Triangulation() *triangulation.Triangulation { return l.tri }

// Zeta is a shorthand for l.Triangulation().Zeta().
func (l *Lamination) Zeta() int { return l.tri.Zeta() }

// At returns the raw coordinate at edge index i (0 <= i < Zeta()),
// without clamping. Negative values encode parallel arcs.
func (l *Lamination) At(i int) *big.Int {
	return new(big.Int).Set(l.weights[i])
}

// Get returns the coordinate for edge label e, i.e. At(e.Index()): the
// vector is indexed by undirected edge, so both orientations of an edge
// read the same entry.
func (l *Lamination) Get(e edgelabel.Edge) *big.Int {
	return l.At(e.Index())
}

// Vector returns a defensive copy of the full coordinate slice, indexed
// by edge index.
func (l *Lamination) Vector() []*big.Int {
	out := make([]*big.Int, len(l.weights))
	for i, v := range l.weights {
		out[i] = new(big.Int).Set(v)
	}

	return out
}

// Weight returns sum(max(g[i], 0)) over all edge indices: the total
// transverse intersection count with the 1-skeleton.
func (l *Lamination) Weight() *big.Int {
	total := big.NewInt(0)
	for _, v := range l.weights {
		total.Add(total, bigrat.ClampNonNeg(v))
	}

	return total
}

// IsEmpty reports whether every coordinate is zero.
func (l *Lamination) IsEmpty() bool {
	for _, v := range l.weights {
		if v.Sign() != 0 {
			return false
		}
	}

	return true
}

// IsIntegral always holds for this representation: every coordinate is
// an exact *big.Int by construction, so this is a documented invariant
// check (dual-weight integrality holds by construction) rather than a
// meaningful runtime test.
func (l *Lamination) IsIntegral() bool { return true }

func withWeights(tri *triangulation.Triangulation, weights []*big.Int) *Lamination {
	return &Lamination{tri: tri, weights: weights}
}
