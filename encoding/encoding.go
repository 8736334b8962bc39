package encoding

import (
	"fmt"

	"github.com/katalvlaran/curver/homology"
	"github.com/katalvlaran/curver/intmatrix"
	"github.com/katalvlaran/curver/lamination"
	"github.com/katalvlaran/curver/move"
	"github.com/katalvlaran/curver/triangulation"
)

// Kind classifies an Encoding after construction, mirroring the
// reference's promotion-by-subclass via composition instead of
// inheritance: Mapping and MappingClass wrap an *Encoding rather than
// extending it.
type Kind int

const (
	// KindEncoding is a generic move sequence (not all moves are
	// flip-graph moves, e.g. it contains a Crush/Lift).
	KindEncoding Kind = iota
	// KindMapping is a flip-graph move sequence with source != target.
	KindMapping
	// KindMappingClass is a flip-graph move sequence with source ==
	// target.
	KindMappingClass
)

func (k Kind) String() string {
	switch k {
	case KindMapping:
		return "Mapping"
	case KindMappingClass:
		return "MappingClass"
	default:
		return "Encoding"
	}
}

// Encoding is a non-empty ordered list of Moves, stored in the order
// they are applied: moves[0] acts first, the last move acts last.
type Encoding struct {
	source, target *triangulation.Triangulation
	moves          []move.Move

	// selfImage, homologyMatrix and intersectionMatrix are computed once,
	// on first use, and kept for the life of e: this module's move graph
	// is explored cooperatively, never across goroutines, so a bare
	// pointer is enough of a cache without a sync.Once.
	selfImage          *SelfImage
	homologyMatrix     *intmatrix.Dense
	intersectionMatrix *intmatrix.Dense
}

// New builds an Encoding from a non-empty, chained move list: each
// move's Target() must equal the next move's Source().
func New(moves []move.Move) (*Encoding, error) {
	if len(moves) == 0 {
		return nil, ErrEmpty
	}
	for i := 0; i+1 < len(moves); i++ {
		if !moves[i].Target().Equal(moves[i+1].Source()) {
			return nil, ErrBrokenChain
		}
	}

	return &Encoding{
		source: moves[0].Source(),
		target: moves[len(moves)-1].Target(),
		moves:  append([]move.Move(nil), moves...),
	}, nil
}

// Identity returns the single-move identity Encoding on t.
func Identity(t *triangulation.Triangulation) *Encoding {
	return &Encoding{source: t, target: t, moves: []move.Move{move.Identity(t)}}
}

func (e *Encoding) Source() *triangulation.Triangulation { return e.source }
func (e *Encoding) Target() *triangulation.Triangulation { return e.target }
func (e *Encoding) Len() int                             { return len(e.moves) }

// Kind classifies e per the Encoding/Mapping/MappingClass promotion
// rule: an Encoding whose every move is flip-graph-type promotes to
// Mapping, and further to MappingClass when its source equals its
// target; any other move in the chain keeps it a plain Encoding.
func (e *Encoding) Kind() Kind {
	for _, m := range e.moves {
		if !m.IsFlipGraphMove() {
			return KindEncoding
		}
	}
	if e.source.Equal(e.target) {
		return KindMappingClass
	}

	return KindMapping
}

// ApplyLamination pushes l forward through every move in order.
func (e *Encoding) ApplyLamination(l *lamination.Lamination) (*lamination.Lamination, error) {
	cur := l
	for _, m := range e.moves {
		next, err := m.ApplyLamination(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}

	return cur, nil
}

// ApplyHomology pushes h forward through every move in order.
func (e *Encoding) ApplyHomology(h *homology.Class) (*homology.Class, error) {
	cur := h
	for _, m := range e.moves {
		next, err := m.ApplyHomology(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}

	return cur, nil
}

// Compose returns the Encoding that applies e's moves and then
// other's, requiring e.Target() == other.Source().
func (e *Encoding) Compose(other *Encoding) (*Encoding, error) {
	if !e.target.Equal(other.source) {
		return nil, ErrNotComposable
	}
	moves := make([]move.Move, 0, len(e.moves)+len(other.moves))
	moves = append(moves, e.moves...)
	moves = append(moves, other.moves...)

	return &Encoding{source: e.source, target: other.target, moves: moves}, nil
}

// Inverse returns the Encoding undoing e: each move inverted, in
// reverse order.
func (e *Encoding) Inverse() *Encoding {
	moves := make([]move.Move, len(e.moves))
	for i, m := range e.moves {
		moves[len(e.moves)-1-i] = m.Inverse()
	}

	return &Encoding{source: e.target, target: e.source, moves: moves}
}

// Slice returns the sub-encoding applying moves[i:j], preserving
// e == e.Slice(0,i).Compose(e.Slice(i,j)).Compose(e.Slice(j,len)) for
// every 0 <= i <= j <= e.Len(). An empty range (i == j) returns the
// identity Encoding on the triangulation at that point in the chain.
func (e *Encoding) Slice(i, j int) (*Encoding, error) {
	if i < 0 || j > len(e.moves) || i > j {
		return nil, ErrBadRange
	}
	if i == j {
		var t *triangulation.Triangulation
		if i < len(e.moves) {
			t = e.moves[i].Source()
		} else {
			t = e.moves[i-1].Target()
		}

		return Identity(t), nil
	}

	return &Encoding{
		source: e.moves[i].Source(),
		target: e.moves[j-1].Target(),
		moves:  append([]move.Move(nil), e.moves[i:j]...),
	}, nil
}

// edgeArc returns the arc-type Lamination parallel to edge index idx
// (weight vector zero except a -1 at idx), the generating family
// Encoding equality is defined over.
func edgeArc(t *triangulation.Triangulation, idx int) *lamination.Lamination {
	g := make([]int64, t.Zeta())
	g[idx] = -1
	l, err := lamination.NewFromInts(t, g)
	if err != nil {
		panic(fmt.Sprintf("encoding: edgeArc: %v", err))
	}

	return l
}

// isOncePuncturedTorus reports whether t is the single exceptional
// surface (genus 1, 1 puncture) where Encoding equality additionally
// requires agreement on first homology.
func isOncePuncturedTorus(t *triangulation.Triangulation) bool {
	surfaces := t.Surface()

	return len(surfaces) == 1 && surfaces[0].Genus == 1 && surfaces[0].Punctures == 1
}

// Equal reports whether e and other are defined on the same source and
// target triangulation and have the same SelfImage: agreement on every
// edge_arc(i).boundary() image, plus (for the once-punctured-torus
// exception) agreement on first homology of the standard basis.
func (e *Encoding) Equal(other *Encoding) bool {
	if other == nil || !e.source.Equal(other.source) || !e.target.Equal(other.target) {
		return false
	}
	a, err := e.SelfImage()
	if err != nil {
		return false
	}
	b, err := other.SelfImage()
	if err != nil {
		return false
	}
	for idx := range a.ArcBoundaries {
		aBoundary, bBoundary := a.ArcBoundaries[idx], b.ArcBoundaries[idx]
		if (aBoundary == nil) != (bBoundary == nil) {
			return false
		}
		if aBoundary != nil && !aBoundary.Equal(bBoundary) {
			return false
		}
	}
	for idx := range a.HomologyBasisImages {
		ha, hb := a.HomologyBasisImages[idx], b.HomologyBasisImages[idx]
		if (ha == nil) != (hb == nil) {
			return false
		}
		if ha != nil && !ha.Equal(hb) {
			return false
		}
	}

	return true
}
