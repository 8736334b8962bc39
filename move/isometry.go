package move

import (
	"math/big"

	"github.com/katalvlaran/curver/edgelabel"
	"github.com/katalvlaran/curver/homology"
	"github.com/katalvlaran/curver/lamination"
	"github.com/katalvlaran/curver/triangulation"
)

// Isometry is a label-preserving triangulation isomorphism, given by a
// bijection on labels respecting triangle structure. A nil LabelMap
// denotes the identity on source (source and target must then be
// equal).
type Isometry struct {
	source, target *triangulation.Triangulation
	labelMap       triangulation.LabelMap // nil => identity
}

// NewIsometry builds an Isometry from source to target via labelMap. It
// does not re-verify that labelMap is a genuine isomorphism; callers
// obtain labelMap from Triangulation.IsometriesTo, which only yields
// verified ones.
func NewIsometry(source, target *triangulation.Triangulation, labelMap triangulation.LabelMap) *Isometry {
	return &Isometry{source: source, target: target, labelMap: labelMap}
}

// Identity returns the identity Isometry on t.
func Identity(t *triangulation.Triangulation) *Isometry {
	return &Isometry{source: t, target: t, labelMap: nil}
}

func (m *Isometry) Source() *triangulation.Triangulation { return m.source }
func (m *Isometry) Target() *triangulation.Triangulation { return m.target }
func (m *Isometry) IsFlipGraphMove() bool                { return true }

func (m *Isometry) image(e edgelabel.Edge) edgelabel.Edge {
	if m.labelMap == nil {
		return e
	}

	return m.labelMap[e]
}

// ApplyLamination permutes coordinates: the weight at e in the source
// lands at image(e) in the target.
func (m *Isometry) ApplyLamination(l *lamination.Lamination) (*lamination.Lamination, error) {
	out := make([]*big.Int, m.target.Zeta())
	for i := range out {
		out[i] = big.NewInt(0)
	}
	for idx := 0; idx < m.source.Zeta(); idx++ {
		e := edgelabel.FromIndex(idx)
		mapped := m.image(e)
		v := l.At(idx)
		if mapped.Sign() < 0 {
			// The positive reference direction of mapped's index is the
			// opposite of e's own positive direction, but weight is an
			// unsigned transverse count, unaffected by orientation.
			out[mapped.Index()] = v
		} else {
			out[mapped.Index()] = v
		}
	}

	return lamination.New(m.target, out)
}

// ApplyHomology permutes and signs: the algebraic flow along e's
// positive direction lands on image(e)'s index, negated if image(e) is
// the inverted orientation.
func (m *Isometry) ApplyHomology(h *homology.Class) (*homology.Class, error) {
	out := make([]*big.Int, m.target.Zeta())
	for i := range out {
		out[i] = big.NewInt(0)
	}
	for idx := 0; idx < m.source.Zeta(); idx++ {
		e := edgelabel.FromIndex(idx)
		mapped := m.image(e)
		val := h.At(idx)
		if mapped.Sign() < 0 {
			val = new(big.Int).Neg(val)
		}
		out[mapped.Index()] = val
	}

	return homology.FromVector(m.target, out), nil
}

// Inverse returns the inverse bijection as an Isometry target -> source.
func (m *Isometry) Inverse() Move {
	if m.labelMap == nil {
		return Identity(m.source)
	}
	inv := make(triangulation.LabelMap, len(m.labelMap))
	for k, v := range m.labelMap {
		inv[v] = k
	}

	return &Isometry{source: m.target, target: m.source, labelMap: inv}
}

// Package returns the label map, or nil for the identity isometry.
func (m *Isometry) Package() (any, error) {
	if m.labelMap == nil {
		return nil, nil
	}

	return m.labelMap, nil
}
