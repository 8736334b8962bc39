// Package triangulation implements the combinatorial surface model this
// module's symbolic computation is built on: an ideal triangulation of a
// finite-type punctured surface, given as a set of anticlockwise-ordered
// edge triples with oriented, signed-integer labels.
//
// A Triangulation precomputes everything callers need to stay O(1) per
// lookup: which triangle and which rotated corner contains a given label,
// the cyclic sequence of edges around each vertex, the connected-component
// partition, a deterministic maximal spanning forest of the dual graph, and
// a compact, round-trippable signature string.
//
// Two triangulations are equal iff their sorted-triangle signatures match;
// Sig/FromSig serialize that signature to and from a short printable string
// via a Lehmer-coded permutation index (bigrat.PermutationIndex) and the
// b64 integer codec (bigrat.B64Encode), mirroring how prim_kruskal sorts
// its edge list once up front to make the rest of the algorithm
// deterministic: every enumeration here walks edges and triangles in
// increasing label order for the same reason.
package triangulation
