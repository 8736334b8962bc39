package surface

import "errors"

// ErrUnsupportedConfiguration indicates Build was asked for a
// (genus, punctures) pair this constructor does not synthesize, or a
// generator accessor was asked for an index outside the surface's
// known generating family.
//
// Synthesizing a general S_{g,p} ideal triangulation from scratch means
// getting the corner/vertex-link combinatorics exactly right (which
// labels border which triangle, in which cyclic order); Build only
// synthesizes the specific hand-verified triangulations this module's
// own test suite exercises end-to-end (S_{1,1}, S_{1,2}, S_{0,4}), not
// a general S_{g,p} constructor. See DESIGN.md.
var ErrUnsupportedConfiguration = errors.New("surface: unsupported (genus, punctures) configuration")

// ErrClassificationMismatch indicates a named builder's hand-picked
// triangle set did not classify as the (genus, punctures) it was built
// to realize. Build checks this at construction time rather than
// trusting the hand derivation silently: see DESIGN.md.
var ErrClassificationMismatch = errors.New("surface: triangulation does not match intended classification")
