// Package homology implements the integer first-homology coordinate
// used alongside Lamination: a vector a in Z^zeta indexed by edge
// index, with a canonical form that is zero on every edge of the
// triangulation's dual spanning tree (triangulation.DualTree).
//
// CanonicalForm collapses every dual-tree edge along the unique
// non-tree return path its removal closes, by solving for a per-triangle
// potential and applying its coboundary in one pass; see DESIGN.md.
package homology
