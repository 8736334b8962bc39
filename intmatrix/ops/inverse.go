package ops

import (
	"math/big"

	"github.com/katalvlaran/curver/intmatrix"
)

// RatDense is a row-major matrix of exact rationals, the quotient-field
// counterpart to intmatrix.Dense: Inverse is the one operation in this
// package whose result cannot in general stay integer.
type RatDense struct {
	rows, cols int
	data       [][]*big.Rat
}

func newRatDense(rows, cols int) *RatDense {
	data := make([][]*big.Rat, rows)
	for i := range data {
		row := make([]*big.Rat, cols)
		for j := range row {
			row[j] = new(big.Rat)
		}
		data[i] = row
	}

	return &RatDense{rows: rows, cols: cols, data: data}
}

func (m *RatDense) Rows() int { return m.rows }
func (m *RatDense) Cols() int { return m.cols }

// At returns the value at (i, j), panicking on out-of-range indices,
// the same contract intmatrix.Dense.At uses.
func (m *RatDense) At(i, j int) *big.Rat {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic("ops: RatDense index out of range")
	}

	return m.data[i][j]
}

// Equal reports whether m and other have the same shape and entries.
func (m *RatDense) Equal(other *RatDense) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if m.data[i][j].Cmp(other.data[i][j]) != 0 {
				return false
			}
		}
	}

	return true
}

// minorOf returns the (n-1)x(n-1) matrix obtained by deleting row
// dropRow and column dropCol from m.
func minorOf(m *intmatrix.Dense, dropRow, dropCol int) (*intmatrix.Dense, error) {
	n := m.Rows()
	out, err := intmatrix.NewDense(n-1, n-1)
	if err != nil {
		return nil, err
	}
	oi := 0
	for i := 0; i < n; i++ {
		if i == dropRow {
			continue
		}
		oj := 0
		for j := 0; j < n; j++ {
			if j == dropCol {
				continue
			}
			if err := out.Set(oi, oj, m.At(i, j)); err != nil {
				return nil, err
			}
			oj++
		}
		oi++
	}

	return out, nil
}

// Inverse computes the exact rational inverse of m via the adjugate:
// entry (j, i) of the result is the (i, j) cofactor (a signed
// (n-1)x(n-1) minor determinant, via this package's own Determinant)
// over det(m). It returns intmatrix.ErrSingular when det(m) == 0, and
// intmatrix.ErrNonSquare when m is not square.
func Inverse(m *intmatrix.Dense) (*RatDense, error) {
	n := m.Rows()
	if n != m.Cols() {
		return nil, intmatrix.ErrNonSquare
	}
	det, err := Determinant(m)
	if err != nil {
		return nil, err
	}
	if det.Sign() == 0 {
		return nil, intmatrix.ErrSingular
	}

	out := newRatDense(n, n)
	if n == 1 {
		out.data[0][0] = new(big.Rat).SetFrac(big.NewInt(1), det)

		return out, nil
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			minor, err := minorOf(m, i, j)
			if err != nil {
				return nil, err
			}
			cofactor, err := Determinant(minor)
			if err != nil {
				return nil, err
			}
			if (i+j)%2 != 0 {
				cofactor.Neg(cofactor)
			}
			// The adjugate is the transpose of the cofactor matrix.
			out.data[j][i] = new(big.Rat).SetFrac(cofactor, det)
		}
	}

	return out, nil
}
