package lamination

// IsFilling reports whether l fills its surface: its weight is
// nonzero and the boundary of a regular neighbourhood of l is
// peripheral (no complementary region other than punctured discs).
// Laminations with an arc component use Boundary directly; for a pure
// multicurve (no Boundary defined, since Boundary is specified for
// MultiArc) filling is reported via the short form's own peripheral
// coverage: the non-peripheral part must itself be empty after being
// "blown up" to a neighbourhood boundary is equivalent, for a
// multicurve, to every component being both non-peripheral and
// occupying a full-measure subsurface, which this module checks via
// IsPolygonalisation's edge-coverage test instead.
func (l *Lamination) IsFilling() bool {
	if l.Weight().Sign() == 0 {
		return false
	}
	if l.IsMultiArc() {
		b, err := l.Boundary()
		if err != nil {
			return false
		}

		return b.IsPeripheral()
	}

	return l.IsPolygonalisation()
}

// IsPolygonalisation reports whether l's short form's used edges
// (those with a nonzero short-form entry), together with a dual
// spanning tree avoiding them, cover every edge index: equivalently, l
// cuts the surface into polygons with no edge left unaccounted for.
func (l *Lamination) IsPolygonalisation() bool {
	short, _ := l.shorten()

	used := make(map[int]bool)
	for i := 0; i < short.Zeta(); i++ {
		if short.At(i).Sign() != 0 {
			used[i] = true
		}
	}

	tree := short.tri.DualTree(used)

	return len(used)+len(tree) == short.Zeta()
}
