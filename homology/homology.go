package homology

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/curver/bigrat"
	"github.com/katalvlaran/curver/edgelabel"
	"github.com/katalvlaran/curver/triangulation"
)

// Class is an integer first-homology class on a Triangulation: a
// vector a in Z^zeta, indexed by edge index. Equality and hashing use
// CanonicalForm, not the raw vector.
type Class struct {
	tri    *triangulation.Triangulation
	values []*big.Int
}

// New validates values against tri.Zeta() and returns the Class it
// describes.
func New(tri *triangulation.Triangulation, values []*big.Int) (*Class, error) {
	if len(values) != tri.Zeta() {
		return nil, fmt.Errorf("homology: got %d entries, want %d: %w", len(values), tri.Zeta(), ErrWrongLength)
	}
	out := make([]*big.Int, len(values))
	for i, v := range values {
		out[i] = new(big.Int).Set(v)
	}

	return &Class{tri: tri, values: out}, nil
}

// Zero returns the additive identity on tri.
func Zero(tri *triangulation.Triangulation) *Class {
	values := make([]*big.Int, tri.Zeta())
	for i := range values {
		values[i] = big.NewInt(0)
	}

	return &Class{tri: tri, values: values}
}

// Triangulation returns the triangulation this class is bound to.
func (c *Class) Triangulation() *triangulation.Triangulation { return c.tri }

// At returns the raw coordinate at edge index i.
func (c *Class) At(i int) *big.Int { return new(big.Int).Set(c.values[i]) }

// Get returns the signed algebraic value in the direction of label e:
// e.Sign() * At(e.Index()).
func (c *Class) Get(e edgelabel.Edge) *big.Int {
	v := c.At(e.Index())
	if e.Sign() < 0 {
		v.Neg(v)
	}

	return v
}

// Vector returns a defensive copy of the raw coordinate slice.
func (c *Class) Vector() []*big.Int {
	out := make([]*big.Int, len(c.values))
	for i, v := range c.values {
		out[i] = new(big.Int).Set(v)
	}

	return out
}

// Add returns c + other, coordinatewise; both must be bound to the same
// triangulation.
func (c *Class) Add(other *Class) *Class {
	out := make([]*big.Int, len(c.values))
	for i := range out {
		out[i] = bigrat.Add(c.values[i], other.values[i])
	}

	return &Class{tri: c.tri, values: out}
}

// Scale returns k * c, coordinatewise.
func (c *Class) Scale(k *big.Int) *Class {
	out := make([]*big.Int, len(c.values))
	for i := range out {
		out[i] = bigrat.Mul(c.values[i], k)
	}

	return &Class{tri: c.tri, values: out}
}

// CanonicalForm returns the unique representative of c's equivalence
// class that is zero on every edge of tri.DualTree(nil). It finds, for
// every triangle, a potential mu (mu == 0 at an arbitrary root of each
// component) such that adding the coboundary of mu to c cancels every
// dual-tree edge's coordinate exactly: the coboundary of a potential is
// a sum of triangle boundaries, and a triangle boundary is
// null-homologous (its three edges are traversed head to tail around
// the triangle), so the result never leaves c's class. mu is fixed
// once per triangle from the original coordinates, then applied to
// every edge in a single pass, which is what keeps a triangle with two
// or three tree edges from having one collapse undo another.
func (c *Class) CanonicalForm() *Class {
	tri := c.tri
	tree := tri.DualTree(nil)
	mu := make(map[triangulation.Triangle]*big.Int)
	for _, root := range tri.Triangles() {
		if _, ok := mu[root]; ok {
			continue
		}
		mu[root] = big.NewInt(0)
		queue := []triangulation.Triangle{root}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, e := range cur.Edges() {
				idx := e.Index()
				if !tree[idx] {
					continue
				}
				child, err := tri.TriangleOf(e.Invert())
				if err != nil {
					continue
				}
				if _, seen := mu[child]; seen {
					continue
				}
				shift := new(big.Int).Set(c.values[idx])
				if e.Sign() < 0 {
					shift.Neg(shift)
				}
				mu[child] = bigrat.Add(mu[cur], shift)
				queue = append(queue, child)
			}
		}
	}

	out := make([]*big.Int, len(c.values))
	for idx := range out {
		pos, _ := tri.TriangleOf(edgelabel.FromIndex(idx))
		neg, _ := tri.TriangleOf(edgelabel.FromIndex(idx).Invert())
		out[idx] = bigrat.Add(c.values[idx], bigrat.Sub(mu[pos], mu[neg]))
	}

	return &Class{tri: tri, values: out}
}

// Equal reports whether c and other have the same canonical form on
// the same triangulation.
func (c *Class) Equal(other *Class) bool {
	if other == nil || !c.tri.Equal(other.tri) {
		return false
	}
	a, b := c.CanonicalForm(), other.CanonicalForm()
	for i := range a.values {
		if a.values[i].Cmp(b.values[i]) != 0 {
			return false
		}
	}

	return true
}

// FromVector rebinds a raw, already-validated vector to tri without
// copying through New's validation, used internally by move's flip and
// isometry updates that build a result vector entry by entry.
func FromVector(tri *triangulation.Triangulation, values []*big.Int) *Class {
	return &Class{tri: tri, values: values}
}
