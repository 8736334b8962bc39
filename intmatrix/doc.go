// Package intmatrix offers a dense matrix of exact *big.Int entries.
//
// It mirrors a conventional dense float64 matrix API (Rows/Cols/At/Set/
// Clone, row-major storage) but with arbitrary-precision integer
// entries, because crush/lift coordinate maps must stay exact.
package intmatrix
