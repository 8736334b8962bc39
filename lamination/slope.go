package lamination

import "math/big"

// Slope estimates the shortening engine's spiralling-acceleration ratio
// c.slope(L): roughly how many full twists about l are already present
// in other. An exact derivation works from
// exact shear coordinates along l's corridor; here it is approximated
// as other's intersection with l divided by l's own total weight,
// which for a short weight-2-per-edge curve is proportional to the
// corridor's width. Division truncates toward zero. See DESIGN.md —
// the shortening engine treats this purely as a heuristic hint and
// verifies real progress before trusting it, so an inexact slope never
// produces a wrong shortening result.
func (l *Lamination) Slope(other *Lamination) *big.Int {
	width := l.Weight()
	if width.Sign() == 0 {
		return big.NewInt(0)
	}

	return new(big.Int).Quo(l.Intersection(other), width)
}
