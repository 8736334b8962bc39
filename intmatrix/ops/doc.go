// Package ops provides advanced operations over intmatrix.Dense.
package ops
