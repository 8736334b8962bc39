package intmatrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape has a non-positive
	// dimension.
	ErrBadShape = errors.New("intmatrix: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the matrix.
	ErrOutOfRange = errors.New("intmatrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands (Apply's vector length, Mul's inner dimension, …).
	ErrDimensionMismatch = errors.New("intmatrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("intmatrix: matrix is not square")

	// ErrSingular is returned when a determinant-dependent operation meets
	// a zero pivot.
	ErrSingular = errors.New("intmatrix: singular matrix")
)
