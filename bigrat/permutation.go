package bigrat

import (
	"math/big"
	"sort"
)

// Factorial returns n! as a *big.Int. Panics for n < 0.
func Factorial(n int) *big.Int {
	if n < 0 {
		panic("bigrat: Factorial of negative integer")
	}
	result := big.NewInt(1)
	for i := 2; i <= n; i++ {
		result.Mul(result, big.NewInt(int64(i)))
	}

	return result
}

// PermutationIndex returns the Lehmer-code index of perm, a permutation of
// {0, ..., len(perm)-1}, among all len(perm)! permutations in lexicographic
// order. It is the exact inverse of PermutationFromIndex.
//
// Complexity: O(n^2) arithmetic operations, each on integers with O(n log n)
// bits; fine for the triangulation sizes this kernel targets, and exact
// throughout (no factorial ever hits a machine-width ceiling).
func PermutationIndex(perm []int) *big.Int {
	symbols := append([]int(nil), perm...)
	sort.Ints(symbols)

	index := big.NewInt(0)
	width := big.NewInt(0)
	for _, p := range perm {
		i := sort.SearchInts(symbols, p)
		width.SetInt64(int64(len(symbols)))
		index.Mul(index, width)
		index.Add(index, big.NewInt(int64(i)))
		symbols = append(symbols[:i], symbols[i+1:]...)
	}

	return index
}

// PermutationFromIndex returns the permutation of {0, ..., n-1} at the given
// Lehmer-code index, the exact inverse of PermutationIndex. index must
// satisfy 0 <= index < n!.
func PermutationFromIndex(n int, index *big.Int) []int {
	remaining := make([]int, n)
	for i := range remaining {
		remaining[i] = i
	}

	fact := Factorial(n)
	idx := new(big.Int).Set(index)
	result := make([]int, 0, n)
	for len(remaining) > 0 {
		fact.Div(fact, big.NewInt(int64(len(remaining))))
		quotient, remainder := new(big.Int).QuoRem(idx, fact, new(big.Int))
		i := int(quotient.Int64())
		result = append(result, remaining[i])
		remaining = append(remaining[:i], remaining[i+1:]...)
		idx = remainder
	}

	return result
}
