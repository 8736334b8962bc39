package encoding

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/curver/edgelabel"
	"github.com/katalvlaran/curver/lamination"
	"github.com/katalvlaran/curver/move"
	"github.com/katalvlaran/curver/triangulation"
)

// MoveKind tags which concrete move type a MovePackage describes.
type MoveKind string

const (
	MoveKindIdentity      MoveKind = "identity"
	MoveKindEdgeFlip      MoveKind = "edge_flip"
	MoveKindMultiEdgeFlip MoveKind = "multi_edge_flip"
	MoveKindTwist         MoveKind = "twist"
	MoveKindHalfTwist     MoveKind = "half_twist"
)

// ErrNotReconstructible is returned by Decode for a move package that
// cannot be rebuilt from its minimal descriptor alone (an Isometry with
// a non-identity label map, whose target triangulation is not recorded
// in the package, malformed data, or an unknown kind), and, wrapped, by
// Package for a move with no MoveKind, such as a Crush or Lift.
var ErrNotReconstructible = errors.New("encoding: move package is not reconstructible")

// MovePackage is the minimal serialisable descriptor for one move in
// an Encoding.
type MovePackage struct {
	Kind MoveKind
	Data any
}

// Package returns e's minimal descriptor: one MovePackage per move, in
// application order.
func (e *Encoding) Package() ([]MovePackage, error) {
	out := make([]MovePackage, len(e.moves))
	for i, m := range e.moves {
		kind, err := classifyMove(m)
		if err != nil {
			return nil, err
		}
		data, err := m.Package()
		if err != nil {
			return nil, err
		}
		out[i] = MovePackage{Kind: kind, Data: data}
	}

	return out, nil
}

func classifyMove(m move.Move) (MoveKind, error) {
	switch m.(type) {
	case *move.Isometry:
		return MoveKindIdentity, nil
	case *move.EdgeFlip:
		return MoveKindEdgeFlip, nil
	case *move.MultiEdgeFlip:
		return MoveKindMultiEdgeFlip, nil
	case *move.Twist:
		return MoveKindTwist, nil
	case *move.HalfTwist:
		return MoveKindHalfTwist, nil
	default:
		return "", fmt.Errorf("encoding: %T: %w", m, ErrNotReconstructible)
	}
}

// Decode rebuilds an Encoding from source under pkgs, the inverse of
// Package for every reconstructible move kind.
func Decode(source *triangulation.Triangulation, pkgs []MovePackage) (*Encoding, error) {
	if len(pkgs) == 0 {
		return nil, ErrEmpty
	}
	cur := source
	moves := make([]move.Move, 0, len(pkgs))
	for _, p := range pkgs {
		m, err := decodeOne(cur, p)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
		cur = m.Target()
	}

	return New(moves)
}

func decodeOne(t *triangulation.Triangulation, p MovePackage) (move.Move, error) {
	switch p.Kind {
	case MoveKindIdentity:
		if p.Data != nil {
			return nil, ErrNotReconstructible
		}

		return move.Identity(t), nil
	case MoveKindEdgeFlip:
		label, ok := p.Data.(int)
		if !ok {
			return nil, ErrNotReconstructible
		}

		return move.NewEdgeFlip(t, edgeFromLabel(label))
	case MoveKindMultiEdgeFlip:
		labels, ok := p.Data.([]int)
		if !ok {
			return nil, ErrNotReconstructible
		}
		edges := make([]int, len(labels))
		copy(edges, labels)

		return move.NewMultiEdgeFlip(t, toEdges(edges))
	case MoveKindTwist:
		pair, ok := p.Data.([2]int64)
		if !ok {
			return nil, ErrNotReconstructible
		}
		curve, err := unitCurveAt(t, int(pair[0]))
		if err != nil {
			return nil, err
		}

		return move.NewTwist(curve, big.NewInt(pair[1]))
	case MoveKindHalfTwist:
		pair, ok := p.Data.([2]int64)
		if !ok {
			return nil, ErrNotReconstructible
		}
		arc := edgeArc(t, int(pair[0]))

		return move.NewHalfTwist(arc, big.NewInt(pair[1]))
	default:
		return nil, ErrNotReconstructible
	}
}

func edgeFromLabel(label int) edgelabel.Edge { return edgelabel.Edge(label) }

func toEdges(labels []int) []edgelabel.Edge {
	out := make([]edgelabel.Edge, len(labels))
	for i, l := range labels {
		out[i] = edgelabel.Edge(l)
	}

	return out
}

// unitCurveAt rebuilds the short, weight-2 curve parallel to edge
// index idx, the canonical reconstruction of a Twist's stored curve
// from its package() descriptor.
func unitCurveAt(t *triangulation.Triangulation, idx int) (*lamination.Lamination, error) {
	g := make([]int64, t.Zeta())
	g[idx] = 2

	return lamination.NewFromInts(t, g)
}
