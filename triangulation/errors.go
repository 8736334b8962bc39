package triangulation

import "errors"

// ErrMissingLabel indicates that FromTriples was given a set of triples in
// which some label in {-zeta, ..., zeta-1} never appears.
var ErrMissingLabel = errors.New("triangulation: missing edge label")

// ErrDuplicateLabel indicates that FromTriples was given a set of triples in
// which some label appears more than once.
var ErrDuplicateLabel = errors.New("triangulation: duplicate edge label")

// ErrEmptyTriangulation indicates that FromTriples was called with no
// triangles at all.
var ErrEmptyTriangulation = errors.New("triangulation: no triangles given")

// ErrNotFlippable indicates that Square or a move was asked to act on an
// edge that borders a once-punctured monogon (both sides of the edge are
// the same triangle).
var ErrNotFlippable = errors.New("triangulation: edge is not flippable")

// ErrUnknownLabel indicates a label outside {-zeta, ..., zeta-1} was passed
// to a lookup method.
var ErrUnknownLabel = errors.New("triangulation: label out of range")

// ErrBadSignature indicates FromSig was given a string that does not parse
// as "<b64 zeta>_<b64 permutation index>".
var ErrBadSignature = errors.New("triangulation: malformed signature")
