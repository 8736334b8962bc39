package encoding

import (
	"math/big"

	"github.com/katalvlaran/curver/homology"
	"github.com/katalvlaran/curver/intmatrix"
	"github.com/katalvlaran/curver/intmatrix/ops"
	"github.com/katalvlaran/curver/lamination"
)

// SelfImage is e's generating-family image: the boundary of every
// edge_arc(i) pushed through e (nil at i where the pushed lamination is
// not itself a multiarc), plus, on the once-punctured-torus exception,
// the homology image of every standard basis vector (nil at i where
// ApplyHomology does not support the move chain, e.g. a Crush/Lift).
// Equal compares two Encodings by their SelfImage.
type SelfImage struct {
	ArcBoundaries       []*lamination.Lamination
	HomologyBasisImages []*homology.Class
}

// SelfImage computes and memoises e's SelfImage. The only error this can
// return is a genuine ApplyLamination failure pushing one of the
// generating arcs forward (a broken move chain); Boundary and
// ApplyHomology failures are expected outcomes recorded as nil entries.
func (e *Encoding) SelfImage() (*SelfImage, error) {
	if e.selfImage != nil {
		return e.selfImage, nil
	}

	arcBoundaries := make([]*lamination.Lamination, e.source.Zeta())
	for idx := range arcBoundaries {
		img, err := e.ApplyLamination(edgeArc(e.source, idx))
		if err != nil {
			return nil, err
		}
		if boundary, berr := img.Boundary(); berr == nil {
			arcBoundaries[idx] = boundary
		}
	}

	var homologyImages []*homology.Class
	if isOncePuncturedTorus(e.source) {
		homologyImages = make([]*homology.Class, e.source.Zeta())
		for idx := range homologyImages {
			h := homology.FromVector(e.source, standardBasis(e.source.Zeta(), idx))
			if img, herr := e.ApplyHomology(h); herr == nil {
				homologyImages[idx] = img
			}
		}
	}

	e.selfImage = &SelfImage{ArcBoundaries: arcBoundaries, HomologyBasisImages: homologyImages}

	return e.selfImage, nil
}

func standardBasis(n, idx int) []*big.Int {
	out := make([]*big.Int, n)
	for i := range out {
		out[i] = big.NewInt(0)
	}
	out[idx] = big.NewInt(1)

	return out
}

// HomologyMatrix returns the zeta x zeta integer matrix of e's action on
// first homology: column j is e.ApplyHomology(standard basis vector
// j).Vector(). It is memoised after the first call.
func (e *Encoding) HomologyMatrix() (*intmatrix.Dense, error) {
	if e.homologyMatrix != nil {
		return e.homologyMatrix, nil
	}
	if e.source.Zeta() != e.target.Zeta() {
		return nil, ErrZetaChanged
	}
	n := e.source.Zeta()
	m, err := intmatrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for j := 0; j < n; j++ {
		h := homology.FromVector(e.source, standardBasis(n, j))
		img, err := e.ApplyHomology(h)
		if err != nil {
			return nil, err
		}
		col := img.Vector()
		for i := 0; i < n; i++ {
			if err := m.Set(i, j, col[i]); err != nil {
				return nil, err
			}
		}
	}
	e.homologyMatrix = m

	return m, nil
}

// HomologyMatrixInverse returns the exact rational inverse of
// e.HomologyMatrix(), reusing this module's own adjugate-based
// intmatrix/ops.Inverse.
func (e *Encoding) HomologyMatrixInverse() (*ops.RatDense, error) {
	m, err := e.HomologyMatrix()
	if err != nil {
		return nil, err
	}

	return ops.Inverse(m)
}

// IntersectionMatrix returns the zeta x zeta integer matrix
// M[i][j] = i(e.ApplyLamination(edge_arc(j)), edge_arc(i)): the
// geometric intersection number of e's image of the j-th generator
// against the i-th generator on the target triangulation. It is
// memoised after the first call.
func (e *Encoding) IntersectionMatrix() (*intmatrix.Dense, error) {
	if e.intersectionMatrix != nil {
		return e.intersectionMatrix, nil
	}
	if e.source.Zeta() != e.target.Zeta() {
		return nil, ErrZetaChanged
	}
	n := e.source.Zeta()
	m, err := intmatrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for j := 0; j < n; j++ {
		img, err := e.ApplyLamination(edgeArc(e.source, j))
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			v := img.Intersection(edgeArc(e.target, i))
			if err := m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}
	e.intersectionMatrix = m

	return m, nil
}
