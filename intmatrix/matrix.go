package intmatrix

import (
	"fmt"
	"math/big"
)

// Dense is a row-major matrix of exact integers.
type Dense struct {
	rows, cols int
	data       [][]*big.Int
}

// NewDense allocates a rows x cols matrix of zeros.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}
	data := make([][]*big.Int, rows)
	for i := range data {
		row := make([]*big.Int, cols)
		for j := range row {
			row[j] = big.NewInt(0)
		}
		data[i] = row
	}

	return &Dense{rows: rows, cols: cols, data: data}, nil
}

// Identity returns the n x n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i][i] = big.NewInt(1)
	}

	return m, nil
}

func (m *Dense) Rows() int { return m.rows }
func (m *Dense) Cols() int { return m.cols }

// At returns the value at (i, j). It panics on out-of-range indices, the
// same contract core's dense float64 matrix uses for its hot accessor.
func (m *Dense) At(i, j int) *big.Int {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("intmatrix: index (%d,%d) out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}

	return m.data[i][j]
}

// Set assigns v at (i, j), returning ErrOutOfRange on invalid indices.
func (m *Dense) Set(i, j int, v *big.Int) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return ErrOutOfRange
	}
	m.data[i][j] = new(big.Int).Set(v)

	return nil
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	out, _ := NewDense(m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[i][j] = new(big.Int).Set(m.data[i][j])
		}
	}

	return out
}

// Apply returns m*v for a column vector v of length m.Cols().
func (m *Dense) Apply(v []*big.Int) ([]*big.Int, error) {
	if len(v) != m.cols {
		return nil, ErrDimensionMismatch
	}
	out := make([]*big.Int, m.rows)
	for i := 0; i < m.rows; i++ {
		sum := big.NewInt(0)
		for j := 0; j < m.cols; j++ {
			if m.data[i][j].Sign() == 0 {
				continue
			}
			sum.Add(sum, new(big.Int).Mul(m.data[i][j], v[j]))
		}
		out[i] = sum
	}

	return out, nil
}

// Mul returns m*other.
func (m *Dense) Mul(other *Dense) (*Dense, error) {
	if m.cols != other.rows {
		return nil, ErrDimensionMismatch
	}
	out, _ := NewDense(m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			if m.data[i][k].Sign() == 0 {
				continue
			}
			for j := 0; j < other.cols; j++ {
				if other.data[k][j].Sign() == 0 {
					continue
				}
				out.data[i][j].Add(out.data[i][j], new(big.Int).Mul(m.data[i][k], other.data[k][j]))
			}
		}
	}

	return out, nil
}

// Equal reports whether m and other have the same shape and entries.
func (m *Dense) Equal(other *Dense) bool {
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
