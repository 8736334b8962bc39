package lamination

import "errors"

// ErrWrongLength indicates a weight vector whose length does not equal
// the triangulation's zeta.
var ErrWrongLength = errors.New("lamination: weight vector has wrong length")

// ErrNotShort indicates an operation that requires a short lamination
// (e.g. Parallel) was given one that is not short.
var ErrNotShort = errors.New("lamination: lamination is not short")

// ErrNotArc indicates AsArc was called on a lamination that is not a
// single arc, or AsMultiArc/Boundary on one with at least one
// closed-curve component.
var ErrNotArc = errors.New("lamination: lamination has a non-arc component")

// ErrNotCurve indicates AsCurve was called on a lamination that is not a
// single curve, or AsMultiCurve on one with at least one arc component.
var ErrNotCurve = errors.New("lamination: lamination has a non-curve component")

// ErrNotSingleComponent indicates Parallel was called on a lamination
// whose nonzero entries are not confined to exactly one edge.
var ErrNotSingleComponent = errors.New("lamination: lamination is not a single component")

// ErrTerminates indicates TraceCurve walked into a terminal (parallel)
// arc before closing up.
var ErrTerminates = errors.New("lamination: trace terminated on a parallel arc")

// ErrNoClosure indicates TraceCurve exceeded its step budget without the
// leaf closing up.
var ErrNoClosure = errors.New("lamination: trace did not close within max_steps")

// ErrSelfIntersecting indicates TraceCurve closed onto a path that
// crosses itself, so it does not describe a simple closed curve.
var ErrSelfIntersecting = errors.New("lamination: traced leaf is self-intersecting")

// ErrNoShortener indicates an operation needing the shortening engine
// (Components, Boundary, IsFilling, ...) was called before the shorten
// package was imported anywhere in the program, so lamination.Shortener
// was never registered.
var ErrNoShortener = errors.New("lamination: shortening engine not registered (import the shorten package)")
