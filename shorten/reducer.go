package shorten

import (
	"github.com/katalvlaran/curver/lamination"
	"github.com/katalvlaran/curver/move"
)

// reducer is the Encoding implied by a shortening run: the ordered
// list of moves taking the original lamination to its short form.
// It implements lamination.Reducer.
type reducer struct {
	moves []move.Move
}

// Apply replays the moves forward, carrying l through the same
// sequence of flips/twists the engine applied to the lamination it
// shortened.
func (r *reducer) Apply(l *lamination.Lamination) (*lamination.Lamination, error) {
	cur := l
	for _, m := range r.moves {
		next, err := m.ApplyLamination(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}

	return cur, nil
}

// ApplyInverse replays the inverse moves in reverse order, carrying a
// lamination given in short-form coordinates back to the original
// triangulation's coordinates.
func (r *reducer) ApplyInverse(l *lamination.Lamination) (*lamination.Lamination, error) {
	cur := l
	for i := len(r.moves) - 1; i >= 0; i-- {
		next, err := r.moves[i].Inverse().ApplyLamination(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}

	return cur, nil
}
