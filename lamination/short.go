package lamination

import "github.com/katalvlaran/curver/edgelabel"

// hasReducibleEdge reports whether some flippable edge still admits a
// shortening move: either flipping it would drop a non-parallel arc
// (Right(e) < 0) or would remove a bipod (Right(e) == 0 and both dual
// weights at the square's "a" edge are strictly positive). This is
// exactly the score > 0 condition of the shortening engine's main loop
// (see edgeScore in shorten.Compute's package), lifted here because "is this lamination already
// short" is a pure predicate on weights that callers (move
// preconditions in particular) need without running the engine.
func (l *Lamination) hasReducibleEdge() bool {
	for idx := 0; idx < l.Zeta(); idx++ {
		e := edgelabel.FromIndex(idx)
		if !l.tri.IsFlippable(e) {
			continue
		}
		rw := l.Right(e)
		switch rw.Sign() {
		case -1:
			return true
		case 0:
			square, err := l.tri.Square(e)
			if err != nil {
				continue
			}
			a := square[0]
			if l.Left(a).Sign() > 0 && l.Right(a).Sign() > 0 {
				return true
			}
		}
	}

	return false
}

// IsShort reports whether every non-peripheral component of l is
// already parallel to a single edge of its triangulation, i.e. no
// further flip could make progress shortening it.
func (l *Lamination) IsShort() bool {
	return !l.hasReducibleEdge()
}
