package triangulation

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/curver/bigrat"
)

// Sig returns a compact, round-trippable signature string:
//
//	b64(zeta) + "_" + b64(Lehmer index of the flattened canonical
//	signature, viewed as a permutation of {0, ..., 2*zeta-1} by adding
//	zeta to every label).
//
// FromSig(t.Sig()) reconstructs a Triangulation equal to t.
func (t *Triangulation) Sig() string {
	permuted := make([]int, len(t.signature))
	for i, label := range t.signature {
		permuted[i] = label + t.zeta
	}
	index := bigrat.PermutationIndex(permuted)

	return bigrat.B64Encode(big.NewInt(int64(t.zeta))) + "_" + bigrat.B64Encode(index)
}

// FromSig reconstructs the Triangulation identified by sig, the exact
// inverse of Sig.
func FromSig(sig string) (*Triangulation, error) {
	parts := strings.SplitN(sig, "_", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("triangulation: %q: %w", sig, ErrBadSignature)
	}

	zetaBig, err := bigrat.B64Decode(parts[0])
	if err != nil {
		return nil, fmt.Errorf("triangulation: %q: %w", sig, ErrBadSignature)
	}
	index, err := bigrat.B64Decode(parts[1])
	if err != nil {
		return nil, fmt.Errorf("triangulation: %q: %w", sig, ErrBadSignature)
	}

	zeta := int(zetaBig.Int64())
	if zeta <= 0 || (2*zeta)%3 != 0 {
		return nil, fmt.Errorf("triangulation: %q: %w", sig, ErrBadSignature)
	}

	perm := bigrat.PermutationFromIndex(2*zeta, index)
	numTriangles := 2 * zeta / 3
	triples := make([][3]int, numTriangles)
	for i := 0; i < numTriangles; i++ {
		triples[i] = [3]int{
			perm[3*i] - zeta,
			perm[3*i+1] - zeta,
			perm[3*i+2] - zeta,
		}
	}

	return FromTriples(triples)
}
