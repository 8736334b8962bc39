package shorten

import (
	"math/big"

	"github.com/katalvlaran/curver/edgelabel"
	"github.com/katalvlaran/curver/lamination"
	"github.com/katalvlaran/curver/move"
	"github.com/katalvlaran/curver/triangulation"
)

// Compute runs the shortening engine on l and returns its short form
// together with the Reducer (the composed move sequence) that carries
// l to it. This is registered as lamination.Shortener's implementation
// by this package's init.
//
// The vertex-sweep step is not implemented as a distinct phase:
// this module's
// Lamination.IsShort() is defined by exactly the same score>0
// predicate the main loop below uses to choose its next flip (see
// lamination/short.go), so by construction the main loop cannot exit
// with score==0 while IsShort() is still false. Maintaining a second,
// independent "is short" test for a vertex sweep to act on would risk
// the two predicates disagreeing; see DESIGN.md.
func Compute(l *lamination.Lamination, opts ...Option) (*lamination.Lamination, lamination.Reducer, error) {
	cfg := defaultConfig()
	for _, o := range opts {
		o(cfg)
	}

	t := l.Triangulation()
	zeta := t.Zeta()
	cur := l
	var moves []move.Move

	maxIters := iterationBound(zeta, l.Weight())
	for iter := 0; !cur.IsShort(); iter++ {
		if iter >= maxIters {
			panic("shorten: engine failed to terminate within its bound")
		}

		e, score := bestEdge(cur)
		if score == 0 {
			break
		}

		flip, err := move.NewEdgeFlip(cur.Triangulation(), e)
		if err != nil {
			return nil, nil, err
		}

		var chosen move.Move = flip
		if cfg.dropRate > 0 {
			if accel, ok := tryAccelerate(cur, e, flip, cfg, zeta); ok {
				chosen = accel
			}
		}

		next, err := chosen.ApplyLamination(cur)
		if err != nil {
			return nil, nil, err
		}
		if next.Weight().Cmp(cur.Weight()) >= 0 {
			panic("shorten: chosen move made no progress")
		}

		moves = append(moves, chosen)
		cur = next
	}

	return cur, &reducer{moves: moves}, nil
}

// bestEdge picks the edge maximising the shortening score, ties broken
// by smallest index (the ascending scan below only replaces the
// incumbent on a strictly greater score).
func bestEdge(l *lamination.Lamination) (edgelabel.Edge, float64) {
	t := l.Triangulation()
	var best edgelabel.Edge
	bestScore := 0.0
	for idx := 0; idx < t.Zeta(); idx++ {
		e := edgelabel.FromIndex(idx)
		if !t.IsFlippable(e) {
			continue
		}
		if score := edgeScore(l, t, e); score > bestScore {
			bestScore = score
			best = e
		}
	}

	return best, bestScore
}

func edgeScore(l *lamination.Lamination, t *triangulation.Triangulation, e edgelabel.Edge) float64 {
	switch l.Right(e).Sign() {
	case -1:
		return 1.0
	case 0:
		square, err := t.Square(e)
		if err != nil {
			return 0
		}
		a := square[0]
		if l.Left(a).Sign() > 0 && l.Right(a).Sign() > 0 {
			return 0.5
		}
	}

	return 0
}

// iterationBound is a loop-termination safety net, not part of the
// contract: Mosher's theorem guarantees the unaccelerated algorithm
// terminates, so tripping this indicates a bug rather than a
// legitimately long computation.
func iterationBound(zeta int, weight *big.Int) int {
	bound := zeta*1000 + weight.BitLen()*100000
	if bound < 10000 {
		bound = 10000
	}

	return bound
}

// tryAccelerate handles the case where a flip
// makes poor progress on a large lamination: trace a candidate
// spiralling curve and, if its estimated slope exceeds 2 in absolute
// value, substitute a twist for the flip. The substituted move is only
// used if it is independently verified to still strictly decrease
// total weight, so an inaccurate trace or slope estimate never yields
// a wrong result — only a missed acceleration.
func tryAccelerate(cur *lamination.Lamination, e edgelabel.Edge, flip *move.EdgeFlip, cfg *config, zeta int) (move.Move, bool) {
	w0 := cur.Weight()
	fourZeta := big.NewInt(int64(4 * zeta))
	if fourZeta.Cmp(w0) >= 0 {
		return nil, false
	}

	next, err := flip.ApplyLamination(cur)
	if err != nil {
		return nil, false
	}
	drop := new(big.Int).Sub(w0, next.Weight())
	if !poorProgress(drop, w0, cfg.dropRate) {
		return nil, false
	}

	candidate, err := cur.TraceCurve(e, 2*zeta)
	if err != nil {
		return nil, false
	}

	s := candidate.Slope(cur)
	if new(big.Int).Abs(s).Cmp(big.NewInt(2)) <= 0 {
		return nil, false
	}

	twistMove, err := move.NewTwist(candidate, new(big.Int).Neg(s))
	if err != nil {
		return nil, false
	}

	test, err := twistMove.ApplyLamination(cur)
	if err != nil || test.Weight().Cmp(cur.Weight()) >= 0 {
		return nil, false
	}

	return twistMove, true
}

func poorProgress(drop, w0 *big.Int, dropRate float64) bool {
	rat := new(big.Rat).SetFloat64(dropRate)
	if rat == nil {
		return false
	}
	lhs := new(big.Int).Mul(drop, rat.Denom())
	rhs := new(big.Int).Mul(w0, rat.Num())

	return lhs.Cmp(rhs) < 0
}
