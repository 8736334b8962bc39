// Package move implements the atomic transformations of a triangulation
// and the coordinates bound to it: label-preserving Isometry, EdgeFlip
// (Bell's nine-case normal-coordinate update), MultiEdgeFlip, Twist,
// HalfTwist, and Crush/Lift. Every Move knows how to push a Lamination
// and a HomologyClass forward, how to invert itself, and how to
// serialise to a minimal package for reconstruction.
//
// Moves are composed into Encodings by the encoding package, which
// imports this one; Move implementations therefore never import
// encoding, only lamination, homology, triangulation and intmatrix.
package move
