package bigrat

import "math/big"

// Max returns the larger of a and b. Neither argument is mutated.
func Max(a, b *big.Int) *big.Int {
	if a.Cmp(b) >= 0 {
		return new(big.Int).Set(a)
	}

	return new(big.Int).Set(b)
}

// Min returns the smaller of a and b. Neither argument is mutated.
func Min(a, b *big.Int) *big.Int {
	if a.Cmp(b) <= 0 {
		return new(big.Int).Set(a)
	}

	return new(big.Int).Set(b)
}

// ClampNonNeg returns max(a, 0); this is the "correct for negatives" step
// applied throughout the shortening engine and the edge-flip formula, where
// a negative geometric coordinate encodes a parallel arc rather than a
// transverse intersection count.
func ClampNonNeg(a *big.Int) *big.Int {
	return Max(a, big.NewInt(0))
}

// Half returns a/2 exactly, panicking if a is odd. Every call site that
// reaches for Half (dual weights, the (A+B-E)/2 edge-flip cases) is
// guaranteed even parity by the surrounding triangle-weight invariant; an
// odd value here indicates a corrupted lamination, not a user error, so this
// panics rather than returning an error, matching this module's Internal
// error kind.
func Half(a *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(a, big.NewInt(2), new(big.Int))
	if r.Sign() != 0 {
		panic("bigrat: Half called on an odd value: " + a.String())
	}

	return q
}

// Add returns a+b without mutating either argument.
func Add(a, b *big.Int) *big.Int {
	return new(big.Int).Add(a, b)
}

// Sub returns a-b without mutating either argument.
func Sub(a, b *big.Int) *big.Int {
	return new(big.Int).Sub(a, b)
}

// Neg returns -a without mutating a.
func Neg(a *big.Int) *big.Int {
	return new(big.Int).Neg(a)
}

// Mul returns a*b without mutating either argument.
func Mul(a, b *big.Int) *big.Int {
	return new(big.Int).Mul(a, b)
}

// MulInt64 returns a*k without mutating a.
func MulInt64(a *big.Int, k int64) *big.Int {
	return new(big.Int).Mul(a, big.NewInt(k))
}

// FloorDiv returns floor(a/b) for a nonzero b, the floored (not truncated)
// quotient. It takes big.Int's truncating QuoRem and steps the quotient
// down by one when the remainder is nonzero and its sign differs from
// b's. big.Int's own Div is Euclidean, which differs from floored
// division when b is negative.
func FloorDiv(a, b *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
	}

	return q
}
