package ops

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/curver/intmatrix"
)

// Determinant computes det(m) exactly via Bareiss's fraction-free
// elimination, the integer analogue of LU decomposition: rather than
// dividing by floating pivots, each step divides by the previous pivot,
// which Bareiss's theorem guarantees is exact.
func Determinant(m *intmatrix.Dense) (*big.Int, error) {
	n := m.Rows()
	if n != m.Cols() {
		return nil, fmt.Errorf("ops: determinant: %w", intmatrix.ErrNonSquare)
	}

	// Stage 1: copy into a scratch grid of *big.Int we can mutate in place.
	a := make([][]*big.Int, n)
	for i := 0; i < n; i++ {
		a[i] = make([]*big.Int, n)
		for j := 0; j < n; j++ {
			a[i][j] = new(big.Int).Set(m.At(i, j))
		}
	}

	sign := 1
	prev := big.NewInt(1)
	for k := 0; k < n-1; k++ {
		if a[k][k].Sign() == 0 {
			// find a row below with a nonzero pivot column entry and swap
			swapped := false
			for r := k + 1; r < n; r++ {
				if a[r][k].Sign() != 0 {
					a[k], a[r] = a[r], a[k]
					sign = -sign
					swapped = true
					break
				}
			}
			if !swapped {
				return big.NewInt(0), nil
			}
		}
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				num := new(big.Int).Mul(a[i][j], a[k][k])
				num.Sub(num, new(big.Int).Mul(a[i][k], a[k][j]))
				num.Quo(num, prev)
				a[i][j] = num
			}
		}
		prev = a[k][k]
	}

	det := new(big.Int).Set(a[n-1][n-1])
	if sign < 0 {
		det.Neg(det)
	}

	return det, nil
}
