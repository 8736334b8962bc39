package triangulation

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/curver/edgelabel"
	"github.com/katalvlaran/curver/unionfind"
)

// Triangulation is a finite-type ideal triangulation of a punctured
// surface: a set of Triangles such that every label in
// {-zeta, ..., zeta-1} appears in exactly one triangle. It is immutable
// once constructed; every derived structure below is computed once in
// FromTriples and never mutates afterwards, so a *Triangulation may be
// shared freely across laminations, moves, and encodings.
type Triangulation struct {
	zeta      int
	triangles []Triangle // sorted canonical order

	triangleOf map[edgelabel.Edge]Triangle // label -> containing triangle (canonical)
	cornerOf   map[edgelabel.Edge]Corner   // label -> corner rooted at that label

	vertices    [][]edgelabel.Edge         // canonical cyclic vertex link sequences
	vertexIndex map[edgelabel.Edge]int     // label -> index into vertices
	components  [][]edgelabel.Edge         // connected components, as sorted label lists
	compIndex   map[edgelabel.Edge]int     // label -> index into components

	signature []int // flattened canonical triangle labels, for equality/hashing
}

// FromTriples builds a Triangulation from triples of edge labels, one per
// triangle, each triple ordered anticlockwise. Every label in
// {0, ..., zeta-1, ~0, ..., ~(zeta-1)} (where zeta = 3*len(triples)/2) must
// occur exactly once across all triples.
func FromTriples(triples [][3]int) (*Triangulation, error) {
	if len(triples) == 0 {
		return nil, ErrEmptyTriangulation
	}

	zeta := len(triples) * 3 / 2
	seen := make(map[int]bool, 2*zeta)
	triangles := make([]Triangle, 0, len(triples))
	for _, triple := range triples {
		edges := [3]edgelabel.Edge{
			edgelabel.Edge(triple[0]),
			edgelabel.Edge(triple[1]),
			edgelabel.Edge(triple[2]),
		}
		triangles = append(triangles, NewTriangle(edges[0], edges[1], edges[2]))
		for _, e := range edges {
			if seen[int(e)] {
				return nil, fmt.Errorf("triangulation: label %v: %w", e, ErrDuplicateLabel)
			}
			seen[int(e)] = true
		}
	}

	for i := 0; i < zeta; i++ {
		if !seen[i] {
			return nil, fmt.Errorf("triangulation: label %d: %w", i, ErrMissingLabel)
		}
		if !seen[int(edgelabel.Edge(i).Invert())] {
			return nil, fmt.Errorf("triangulation: label ~%d: %w", i, ErrMissingLabel)
		}
	}

	return build(triangles, zeta), nil
}

// build assembles all derived structures from a validated triangle list.
func build(triangles []Triangle, zeta int) *Triangulation {
	sort.Slice(triangles, func(i, j int) bool { return triangles[i].Less(triangles[j]) })
	for i := range triangles {
		triangles[i] = triangles[i].Canonical()
	}

	t := &Triangulation{
		zeta:        zeta,
		triangles:   triangles,
		triangleOf:  make(map[edgelabel.Edge]Triangle, 2*zeta),
		cornerOf:    make(map[edgelabel.Edge]Corner, 2*zeta),
		vertexIndex: make(map[edgelabel.Edge]int, 2*zeta),
		compIndex:   make(map[edgelabel.Edge]int, 2*zeta),
	}

	for _, tri := range triangles {
		for _, e := range tri.edges {
			t.triangleOf[e] = tri
			t.cornerOf[e] = tri.RotatedTo(e)
		}
	}

	t.buildVertices()
	t.buildComponents()
	t.buildSignature()

	return t
}

func (t *Triangulation) buildVertices() {
	allLabels := t.AllLabels()
	unused := make(map[edgelabel.Edge]bool, len(allLabels))
	for _, l := range allLabels {
		unused[l] = true
	}

	for len(unused) > 0 {
		start := minUnused(unused)
		cycle := []edgelabel.Edge{start}
		delete(unused, start)
		for {
			last := cycle[len(cycle)-1]
			neighbour := t.cornerOf[last].Third().Invert()
			if !unused[neighbour] {
				break
			}
			cycle = append(cycle, neighbour)
			delete(unused, neighbour)
		}
		idx := len(t.vertices)
		t.vertices = append(t.vertices, cycle)
		for _, e := range cycle {
			t.vertexIndex[e] = idx
		}
	}
}

func minUnused(unused map[edgelabel.Edge]bool) edgelabel.Edge {
	first := true
	var best edgelabel.Edge
	for e := range unused {
		if first || e < best {
			best = e
			first = false
		}
	}

	return best
}

func (t *Triangulation) buildComponents() {
	allLabels := t.AllLabels()
	uf := unionfind.New(allLabels)
	for _, e := range allLabels {
		uf.Union(e, e.Invert())
	}
	for _, tri := range t.triangles {
		uf.Union(tri.edges[0], tri.edges[1])
		uf.Union(tri.edges[1], tri.edges[2])
	}

	byRoot := make(map[edgelabel.Edge][]edgelabel.Edge)
	for _, e := range allLabels {
		root := uf.Find(e)
		byRoot[root] = append(byRoot[root], e)
	}

	roots := make([]edgelabel.Edge, 0, len(byRoot))
	for r := range byRoot {
		roots = append(roots, r)
	}
	sort.Slice(roots, func(i, j int) bool {
		return minOf(byRoot[roots[i]]) < minOf(byRoot[roots[j]])
	})

	for _, r := range roots {
		group := byRoot[r]
		sort.Slice(group, func(i, j int) bool { return group[i] < group[j] })
		idx := len(t.components)
		t.components = append(t.components, group)
		for _, e := range group {
			t.compIndex[e] = idx
		}
	}
}

func minOf(edges []edgelabel.Edge) edgelabel.Edge {
	best := edges[0]
	for _, e := range edges[1:] {
		if e < best {
			best = e
		}
	}

	return best
}

func (t *Triangulation) buildSignature() {
	sig := make([]int, 0, 3*len(t.triangles))
	for _, tri := range t.triangles {
		for _, e := range tri.edges {
			sig = append(sig, int(e))
		}
	}
	t.signature = sig
}

// Zeta returns the number of undirected edges.
func (t *Triangulation) Zeta() int { return t.zeta }

// NumTriangles returns the number of triangles.
func (t *Triangulation) NumTriangles() int { return len(t.triangles) }

// EulerCharacteristic returns chi = -zeta/3 for this (possibly
// disconnected) triangulation.
func (t *Triangulation) EulerCharacteristic() int { return -t.zeta / 3 }

// Indices returns {0, ..., zeta-1}.
func (t *Triangulation) Indices() []int {
	out := make([]int, t.zeta)
	for i := range out {
		out[i] = i
	}

	return out
}

// AllLabels returns {-zeta, ..., zeta-1} in increasing order.
func (t *Triangulation) AllLabels() []edgelabel.Edge {
	out := make([]edgelabel.Edge, 0, 2*t.zeta)
	for i := -t.zeta; i < t.zeta; i++ {
		out = append(out, edgelabel.Edge(i))
	}

	return out
}

// Triangles returns the triangles in canonical sorted order. The returned
// slice is a copy; mutating it does not affect the Triangulation.
func (t *Triangulation) Triangles() []Triangle {
	out := make([]Triangle, len(t.triangles))
	copy(out, t.triangles)

	return out
}

// TriangleOf returns the triangle containing label e.
func (t *Triangulation) TriangleOf(e edgelabel.Edge) (Triangle, error) {
	tri, ok := t.triangleOf[e]
	if !ok {
		return Triangle{}, fmt.Errorf("triangulation: TriangleOf(%v): %w", e, ErrUnknownLabel)
	}

	return tri, nil
}

// CornerOf returns the corner rooted at label e.
func (t *Triangulation) CornerOf(e edgelabel.Edge) (Corner, error) {
	c, ok := t.cornerOf[e]
	if !ok {
		return Corner{}, fmt.Errorf("triangulation: CornerOf(%v): %w", e, ErrUnknownLabel)
	}

	return c, nil
}

// MustCornerOf is CornerOf without the error return, for call sites that
// already know e belongs to this triangulation (e.g. iterating t.Labels()).
func (t *Triangulation) MustCornerOf(e edgelabel.Edge) Corner {
	c, err := t.CornerOf(e)
	if err != nil {
		panic(err)
	}

	return c
}

// VertexOf returns the cyclic sequence of outgoing edges at the tail vertex
// of e, in canonical (minimum-label-first) rotation.
func (t *Triangulation) VertexOf(e edgelabel.Edge) []edgelabel.Edge {
	idx, ok := t.vertexIndex[e]
	if !ok {
		panic(fmt.Errorf("triangulation: VertexOf(%v): %w", e, ErrUnknownLabel))
	}
	out := make([]edgelabel.Edge, len(t.vertices[idx]))
	copy(out, t.vertices[idx])

	return out
}

// Vertices returns every vertex's cyclic edge sequence, each rooted at its
// own minimum label, ordered by that minimum label.
func (t *Triangulation) Vertices() [][]edgelabel.Edge {
	out := make([][]edgelabel.Edge, len(t.vertices))
	for i, v := range t.vertices {
		cp := make([]edgelabel.Edge, len(v))
		copy(cp, v)
		out[i] = cp
	}

	return out
}

// Components returns the connected components of this triangulation, each
// as a sorted slice of the labels it contains, ordered by each component's
// minimum label.
func (t *Triangulation) Components() [][]edgelabel.Edge {
	out := make([][]edgelabel.Edge, len(t.components))
	for i, c := range t.components {
		cp := make([]edgelabel.Edge, len(c))
		copy(cp, c)
		out[i] = cp
	}

	return out
}

// IsConnected reports whether this triangulation has a single component.
func (t *Triangulation) IsConnected() bool { return len(t.components) == 1 }

// SurfaceType describes one connected component's topological type.
type SurfaceType struct {
	Genus     int
	Punctures int
	Chi       int
}

// Surface returns, for every component (identified by its component index
// from Components), the (genus, punctures, chi) triple the component
// realizes, the full classification the surface package's named builders
// and encoding's once-punctured-torus check both rely on.
func (t *Triangulation) Surface() []SurfaceType {
	out := make([]SurfaceType, len(t.components))
	for i, comp := range t.components {
		edgeCount := len(comp) / 2
		vertexCount := 0
		for _, v := range t.vertices {
			if t.compIndex[v[0]] == i {
				vertexCount++
			}
		}
		chi := -edgeCount / 3
		// chi = 2 - 2g - p, and p = vertexCount (each puncture is a vertex),
		// v - e + f = chi with f = 2e/3 gives g = (2 - v + e/3) / 2.
		genus := (2 - vertexCount + edgeCount/3) / 2
		out[i] = SurfaceType{Genus: genus, Punctures: vertexCount, Chi: chi}
	}

	return out
}

// IsFlippable reports whether e borders two distinct triangles. A
// non-flippable edge borders a once-punctured monogon (both sides the same
// triangle).
func (t *Triangulation) IsFlippable(e edgelabel.Edge) bool {
	return t.triangleOf[e] != t.triangleOf[e.Invert()]
}

// Square returns the four edges surrounding e and e itself: a, b border
// the triangle on e's left, c, d border the triangle on e's right. e
// must be flippable.
func (t *Triangulation) Square(e edgelabel.Edge) ([5]edgelabel.Edge, error) {
	if !t.IsFlippable(e) {
		return [5]edgelabel.Edge{}, fmt.Errorf("triangulation: Square(%v): %w", e, ErrNotFlippable)
	}
	cA := t.MustCornerOf(e)
	cB := t.MustCornerOf(e.Invert())

	return [5]edgelabel.Edge{cA.Second(), cA.Third(), cB.Second(), cB.Third(), e}, nil
}

// DualTree returns a deterministic maximal spanning forest of the dual
// 1-skeleton, as the set of edge indices crossed by the forest: Kruskal's
// algorithm over increasing edge index, skipping any index in avoid.
func (t *Triangulation) DualTree(avoid map[int]bool) map[int]bool {
	tree := make(map[int]bool)
	uf := unionfind.New(t.triangles)
	for index := 0; index < t.zeta; index++ {
		if avoid != nil && avoid[index] {
			continue
		}
		a := t.triangleOf[edgelabel.Edge(index)]
		b := t.triangleOf[edgelabel.Edge(index).Invert()]
		if !uf.Same(a, b) {
			uf.Union(a, b)
			tree[index] = true
		}
	}

	return tree
}

// Equal reports whether t and other have identical sorted-triangle
// signatures, i.e. are the same labelled triangulation.
func (t *Triangulation) Equal(other *Triangulation) bool {
	if other == nil || t.zeta != other.zeta || len(t.signature) != len(other.signature) {
		return false
	}
	for i := range t.signature {
		if t.signature[i] != other.signature[i] {
			return false
		}
	}

	return true
}
