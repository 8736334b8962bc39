// Package unionfind provides a generic disjoint-set data structure with
// path compression and union by rank.
//
// This is the same structure prim_kruskal/kruskal.go built inline for
// Kruskal's MST, generalized to any comparable key type and reused here by
// Triangulation.Components (grouping mated edge labels and triangles into
// connected components) and Triangulation.DualTree (Kruskal's algorithm on
// the dual 1-skeleton).
//
// Find here walks an explicit loop rather than recursing to compress
// paths: no package in this module uses recursion for a traversal whose
// depth scales with triangulation size.
package unionfind
