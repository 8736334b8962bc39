package edgelabel

import "strconv"

// Edge is an oriented edge of a triangulation, identified by a signed
// integer label. For a triangulation with zeta undirected edges, labels
// range over {-zeta, ..., -1, 0, ..., zeta-1}. Two labels with the same
// Index are the two orientations of the same undirected edge.
//
// Edge is a value type: comparisons, map keys, and copies all behave like
// plain ints, which is what it is underneath.
type Edge int

// Invert returns this label's mate: the same undirected edge, opposite
// orientation. Invert is its own inverse: e.Invert().Invert() == e.
func (e Edge) Invert() Edge {
	return ^e // -1 - e, i.e. Go's two's-complement bitwise NOT.
}

// Index normalizes e to the non-negative representative of its mated
// pair: Index(e) == Index(e.Invert()).
func (e Edge) Index() int {
	if inv := e.Invert(); inv > e {
		return int(inv)
	}

	return int(e)
}

// Sign returns +1 if e is its own index (the "positive" orientation) and
// -1 if e is the inverted orientation.
func (e Edge) Sign() int {
	if int(e) == e.Index() {
		return 1
	}

	return -1
}

func (e Edge) String() string {
	if e.Sign() == 1 {
		return strconv.Itoa(int(e))
	}

	return "~" + strconv.Itoa(e.Index())
}

// FromIndex returns the positively oriented label for the given index.
func FromIndex(index int) Edge {
	return Edge(index)
}
