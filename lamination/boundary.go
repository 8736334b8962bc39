package lamination

import "math/big"

// Boundary returns the boundary of a regular neighbourhood of l, l a
// MultiArc: shorten l, set every entry to 0 if negative (arc-parallel)
// or 2 otherwise, then repeatedly zero out any triangle whose three
// entries sum to 2 until no more apply, and map the stable result back
// across the shortening reduction.
func (l *Lamination) Boundary() (*Lamination, error) {
	if !l.IsMultiArc() {
		return nil, ErrNotArc
	}
	short, reduce := l.shorten()

	weights := make([]*big.Int, short.Zeta())
	for i := range weights {
		if short.At(i).Sign() < 0 {
			weights[i] = big.NewInt(0)
		} else {
			weights[i] = big.NewInt(2)
		}
	}
	cur := withWeights(short.tri, weights)

	for changed := true; changed; {
		changed = false
		for _, tri := range short.tri.Triangles() {
			sum := big.NewInt(0)
			for _, e := range tri.Edges() {
				sum.Add(sum, cur.Get(e))
			}
			if sum.Cmp(big.NewInt(2)) == 0 {
				for _, e := range tri.Edges() {
					idx := e.Index()
					if cur.weights[idx].Sign() != 0 {
						cur.weights[idx] = big.NewInt(0)
						changed = true
					}
				}
			}
		}
	}

	return reduce.ApplyInverse(cur)
}
