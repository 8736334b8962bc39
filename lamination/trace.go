package lamination

import (
	"math/big"

	"github.com/katalvlaran/curver/edgelabel"
	"github.com/katalvlaran/curver/triangulation"
)

// TraceCurve follows a leaf of l starting by crossing start, turning at
// each triangle toward whichever of the two far edges carries the
// larger dual weight (the "thicker" bundle of parallel leaves), and
// reports the curve obtained when the walk returns to an edge it has
// already crossed. It gives up with ErrTerminates if the leaf runs
// into a parallel arc (negative weight) or a triangle with no dual
// weight to follow, and ErrNoClosure if it exceeds maxSteps without
// closing.
//
// This is a heuristic combinatorial tracer, not a re-derivation of the
// reference kernel's exact leaf-following algorithm (which additionally
// tracks the precise intersection-point index along each edge); it is
// exact enough to find the obviously-spiralling curves the shortening
// engine's acceleration step looks for, and any failure there simply
// falls back to an unaccelerated (but still correct) flip, so an
// imprecise trace never produces a wrong shortening result — only a
// slower one. See DESIGN.md.
func (l *Lamination) TraceCurve(start edgelabel.Edge, maxSteps int) (*Lamination, error) {
	if l.Get(start).Sign() < 0 {
		return nil, ErrTerminates
	}

	cur := start
	var path []edgelabel.Edge
	seen := make(map[edgelabel.Edge]int)

	for step := 0; step < maxSteps; step++ {
		if idx, ok := seen[cur]; ok {
			return curveFromLoop(l.tri, path[idx:])
		}
		seen[cur] = len(path)
		path = append(path, cur)

		corner := l.tri.MustCornerOf(cur.Invert())
		b, c := corner.Second(), corner.Third()
		if l.Get(b).Sign() < 0 || l.Get(c).Sign() < 0 {
			return nil, ErrTerminates
		}
		if l.DualAt(corner).Sign() == 0 {
			return nil, ErrTerminates
		}

		if l.Left(b).Cmp(l.Right(c)) >= 0 {
			cur = b
		} else {
			cur = c
		}
	}

	return nil, ErrNoClosure
}

// curveFromLoop builds the weight-2-per-edge Lamination corresponding
// to the distinct edge indices crossed in loop, the standard
// coordinate shape of a short simple closed curve.
func curveFromLoop(tri *triangulation.Triangulation, loop []edgelabel.Edge) (*Lamination, error) {
	out := make([]*big.Int, tri.Zeta())
	for i := range out {
		out[i] = big.NewInt(0)
	}
	distinct := make(map[int]bool)
	for _, e := range loop {
		distinct[e.Index()] = true
	}
	if len(distinct) < 2 {
		return nil, ErrSelfIntersecting
	}
	for idx := range distinct {
		out[idx] = big.NewInt(2)
	}

	return withWeights(tri, out), nil
}
