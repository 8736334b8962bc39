// Package lamination implements the integer normal-coordinate model for
// multicurves and multiarcs on a triangulated surface: a weight vector
// g indexed by edge index, g[i] >= 0 counting transverse intersections
// with edge i and g[i] < 0 encoding -g[i] copies of an arc parallel to
// edge i.
//
// Dual weights, peripheral decomposition, component classification
// (MultiArc/Arc/MultiCurve/Curve), intersection numbers, regular
// neighbourhood boundaries and leaf tracing all live here. Component
// decomposition, boundary, and the filling/polygonalisation tests need
// the shortening engine; to avoid an import cycle (shorten needs
// move and encoding, which need Lamination), this package exposes a
// small Reducer seam (see reduce.go) that the shorten package fills in
// via an init-time registration, the same function-variable trick
// prim_kruskal's Compute dispatch uses for pluggable method selection,
// adapted here to break a package cycle instead of to pick an
// algorithm.
package lamination
