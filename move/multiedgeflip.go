package move

import (
	"sort"

	"github.com/katalvlaran/curver/edgelabel"
	"github.com/katalvlaran/curver/homology"
	"github.com/katalvlaran/curver/lamination"
	"github.com/katalvlaran/curver/triangulation"
)

// MultiEdgeFlip applies a set of flippable edges with pairwise disjoint
// supporting triangles atomically: the result is the same as applying
// each EdgeFlip in any order, since their squares never overlap.
type MultiEdgeFlip struct {
	source, target *triangulation.Triangulation
	edges          []edgelabel.Edge // sorted, for deterministic packaging
	flips          []*EdgeFlip
}

// NewMultiEdgeFlip validates that every edge is flippable in source and
// that no two edges share a supporting triangle, then builds the
// composite move.
func NewMultiEdgeFlip(source *triangulation.Triangulation, edges []edgelabel.Edge) (*MultiEdgeFlip, error) {
	sorted := append([]edgelabel.Edge(nil), edges...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	supports := make(map[triangulation.Triangle]bool)
	flips := make([]*EdgeFlip, 0, len(sorted))
	cur := source
	for _, e := range sorted {
		if !cur.IsFlippable(e) {
			return nil, ErrNotFlippable
		}
		triA, _ := source.TriangleOf(e)
		triB, _ := source.TriangleOf(e.Invert())
		if supports[triA] || supports[triB] {
			return nil, ErrOverlappingFlips
		}
		supports[triA], supports[triB] = true, true

		flip, err := NewEdgeFlip(cur, e)
		if err != nil {
			return nil, err
		}
		flips = append(flips, flip)
		cur = flip.Target()
	}

	return &MultiEdgeFlip{source: source, target: cur, edges: sorted, flips: flips}, nil
}

func (m *MultiEdgeFlip) Source() *triangulation.Triangulation { return m.source }
func (m *MultiEdgeFlip) Target() *triangulation.Triangulation { return m.target }
func (m *MultiEdgeFlip) IsFlipGraphMove() bool                { return true }

func (m *MultiEdgeFlip) ApplyLamination(l *lamination.Lamination) (*lamination.Lamination, error) {
	cur := l
	for _, flip := range m.flips {
		next, err := flip.ApplyLamination(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}

	return cur, nil
}

func (m *MultiEdgeFlip) ApplyHomology(h *homology.Class) (*homology.Class, error) {
	cur := h
	for _, flip := range m.flips {
		next, err := flip.ApplyHomology(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}

	return cur, nil
}

// Inverse returns the MultiEdgeFlip on target flipping the same labels
// back, applied in reverse order.
func (m *MultiEdgeFlip) Inverse() Move {
	inv := &MultiEdgeFlip{source: m.target, target: m.source, edges: m.edges}
	inv.flips = make([]*EdgeFlip, len(m.flips))
	for i, flip := range m.flips {
		inv.flips[len(m.flips)-1-i] = flip.Inverse().(*EdgeFlip)
	}

	return inv
}

// Package returns the set of flipped labels, as a sorted []int.
func (m *MultiEdgeFlip) Package() (any, error) {
	out := make([]int, len(m.edges))
	for i, e := range m.edges {
		out[i] = int(e)
	}

	return out, nil
}
