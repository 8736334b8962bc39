package lamination

import "github.com/katalvlaran/curver/edgelabel"

// Parallel returns the single edge index l is parallel to, when l is
// short and concentrated on one edge entry (the common, non-corridor
// case Twist/HalfTwist packaging assumes). It errors if l is not
// short or touches more than one edge.
func (l *Lamination) Parallel() (edgelabel.Edge, error) {
	if !l.IsShort() {
		return 0, ErrNotShort
	}
	found := -1
	for i := 0; i < l.Zeta(); i++ {
		if l.weights[i].Sign() != 0 {
			if found != -1 {
				return 0, ErrNotSingleComponent
			}
			found = i
		}
	}
	if found == -1 {
		return 0, ErrNotSingleComponent
	}

	return edgelabel.FromIndex(found), nil
}

// AsArc classifies l as an Arc: it is itself returned unchanged if
// IsArc() holds. Promoting a Lamination to Arc is a classification
// step, not a conversion (see DESIGN.md for the type ladder note):
// the returned value is the same object, now understood to satisfy
// the Arc refinement.
func (l *Lamination) AsArc() (*Lamination, error) {
	if !l.IsArc() {
		return nil, ErrNotArc
	}

	return l, nil
}

// AsCurve classifies l as a Curve (single non-peripheral closed-curve
// component).
func (l *Lamination) AsCurve() (*Lamination, error) {
	if !l.IsCurve() {
		return nil, ErrNotCurve
	}

	return l, nil
}

// AsMultiArc classifies l as a MultiArc (every component an arc).
func (l *Lamination) AsMultiArc() (*Lamination, error) {
	if !l.IsMultiArc() {
		return nil, ErrNotArc
	}

	return l, nil
}

// AsMultiCurve classifies l as a MultiCurve (no arc components).
func (l *Lamination) AsMultiCurve() (*Lamination, error) {
	if !l.IsMultiCurve() {
		return nil, ErrNotCurve
	}

	return l, nil
}
