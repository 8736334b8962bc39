// Package curver is the exact symbolic-computation toolkit for the
// curve complex of a triangulated surface: ideal triangulations,
// integral laminations (multicurves and multiarcs in normal
// coordinates), the elementary moves that act on them (edge flips,
// Dehn twists, half twists, crush/lift), their composition into
// encodings and mapping classes, a shortening engine that reduces any
// lamination to its unique short normal form, and first-homology
// bookkeeping.
//
// Every numeric quantity is an arbitrary-precision integer
// (math/big.Int); nothing in this module rounds, approximates, or uses
// floating point for curve coordinates.
//
// The subpackages are organized by concern:
//
//	edgelabel/    — signed integer edge labels and their involution
//	triangulation/ — ideal triangulations: triangles, corners, vertex
//	                 links, flip squares, isometries
//	lamination/   — normal-coordinate laminations, classification,
//	                 intersection number, shortening, boundary
//	move/         — Isometry, EdgeFlip, MultiEdgeFlip, Twist, HalfTwist,
//	                 Crush, Lift
//	encoding/     — composable move sequences, Mapping / MappingClass
//	shorten/      — the shortening engine (registered into lamination
//	                 via an init-time Shortener hook)
//	homology/     — first-homology classes and their transport under moves
//	bigrat/       — arbitrary-precision integer helpers
//	intmatrix/    — exact integer matrices (Crush/Lift's linear maps)
//	unionfind/    — generic union-find, used by triangulation's
//	                 component and dual-tree computations
//	surface/      — named surface constructors and their standard
//	                 generator curves
//
// This root package is a thin facade over them: it wires the
// shortening engine and re-exports the handful of types and errors a
// caller touches first.
package curver
