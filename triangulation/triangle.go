package triangulation

import "github.com/katalvlaran/curver/edgelabel"

// Triangle is an ordered triple of edges, listed anticlockwise. Triangles
// stored inside a Triangulation are always held in canonical rotation (the
// rotation starting at the edge with minimum label); a Corner is the same
// triple held at an arbitrary rotation, naming which edge is "first".
type Triangle struct {
	edges [3]edgelabel.Edge
}

// NewTriangle builds a Triangle from three edges listed anticlockwise,
// without altering their rotation. Use Canonical to obtain the
// minimum-label rotation used for storage and comparison.
func NewTriangle(e0, e1, e2 edgelabel.Edge) Triangle {
	return Triangle{edges: [3]edgelabel.Edge{e0, e1, e2}}
}

// Edge returns the i-th edge of the triangle, indices taken modulo 3.
func (t Triangle) Edge(i int) edgelabel.Edge {
	return t.edges[((i%3)+3)%3]
}

// Edges returns the three edges in their current rotation.
func (t Triangle) Edges() [3]edgelabel.Edge {
	return t.edges
}

// Contains reports whether e is one of the triangle's three edges.
func (t Triangle) Contains(e edgelabel.Edge) bool {
	return t.edges[0] == e || t.edges[1] == e || t.edges[2] == e
}

// RotatedTo returns the Corner for this triangle with first set as its
// leading edge. first must be one of t's edges.
func (t Triangle) RotatedTo(first edgelabel.Edge) Corner {
	for i, e := range t.edges {
		if e == first {
			return Corner{Triangle{edges: [3]edgelabel.Edge{t.edges[i], t.edges[(i+1)%3], t.edges[(i+2)%3]}}}
		}
	}
	panic("triangulation: RotatedTo: edge not in triangle")
}

// Canonical returns this triangle rotated so its minimum label comes first;
// this is the rotation Triangulation stores and compares by.
func (t Triangle) Canonical() Triangle {
	best := 0
	for i := 1; i < 3; i++ {
		if t.edges[i] < t.edges[best] {
			best = i
		}
	}

	return t.RotatedTo(t.edges[best]).Triangle
}

// Less orders triangles by their (canonical) label triple, used to sort a
// Triangulation's triangle list deterministically.
func (t Triangle) Less(other Triangle) bool {
	a, b := t.Canonical(), other.Canonical()
	for i := 0; i < 3; i++ {
		if a.edges[i] != b.edges[i] {
			return a.edges[i] < b.edges[i]
		}
	}

	return false
}

// Corner is a Triangle together with a choice of which edge is "first": the
// corner rooted at that edge. Second and Third name the other two edges in
// anticlockwise order from the chosen edge.
type Corner struct {
	Triangle
}

// First is the edge this corner is rooted at.
func (c Corner) First() edgelabel.Edge { return c.edges[0] }

// Second is the next edge anticlockwise from First.
func (c Corner) Second() edgelabel.Edge { return c.edges[1] }

// Third is the edge opposite First, i.e. two steps anticlockwise from it.
func (c Corner) Third() edgelabel.Edge { return c.edges[2] }
