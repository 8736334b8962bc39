package unionfind

// UnionFind is a disjoint-set forest over keys of type T. The zero value is
// not usable; construct one with New.
type UnionFind[T comparable] struct {
	parent map[T]T
	rank   map[T]int
}

// New returns a UnionFind with each of items in its own singleton set.
// Duplicate items are harmless (the second occurrence is a no-op).
func New[T comparable](items []T) *UnionFind[T] {
	uf := &UnionFind[T]{
		parent: make(map[T]T, len(items)),
		rank:   make(map[T]int, len(items)),
	}
	for _, item := range items {
		uf.parent[item] = item
		uf.rank[item] = 0
	}

	return uf
}

// Find returns the canonical representative of x's set, compressing the
// path from x to the root so future Finds are O(1) amortized. Panics if x
// was never added via New or Add.
//
// Implemented with an explicit loop rather than recursion, so it cannot
// overflow the call stack no matter how deep a chain of unions built up.
func (u *UnionFind[T]) Find(x T) T {
	if _, ok := u.parent[x]; !ok {
		panic("unionfind: Find of an item never added via New or Add")
	}
	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}

	// Second pass: compress every node on the path directly to root.
	for u.parent[x] != root {
		next := u.parent[x]
		u.parent[x] = root
		x = next
	}

	return root
}

// Add inserts item as a new singleton set if it is not already tracked.
func (u *UnionFind[T]) Add(item T) {
	if _, ok := u.parent[item]; !ok {
		u.parent[item] = item
		u.rank[item] = 0
	}
}

// Union merges the sets containing x and y, attaching the lower-rank root
// under the higher-rank one (ties broken arbitrarily, rank incremented).
// Both x and y must already be tracked.
func (u *UnionFind[T]) Union(x, y T) {
	rx, ry := u.Find(x), u.Find(y)
	if rx == ry {
		return
	}
	switch {
	case u.rank[rx] < u.rank[ry]:
		u.parent[rx] = ry
	case u.rank[rx] > u.rank[ry]:
		u.parent[ry] = rx
	default:
		u.parent[ry] = rx
		u.rank[rx]++
	}
}

// Same reports whether x and y are currently in the same set.
func (u *UnionFind[T]) Same(x, y T) bool {
	return u.Find(x) == u.Find(y)
}

// Groups returns the current partition as a slice of slices, one per
// distinct set, in no particular order. Callers that need determinism
// should sort each group and the slice of groups themselves.
func (u *UnionFind[T]) Groups() [][]T {
	byRoot := make(map[T][]T)
	for item := range u.parent {
		root := u.Find(item)
		byRoot[root] = append(byRoot[root], item)
	}

	groups := make([][]T, 0, len(byRoot))
	for _, g := range byRoot {
		groups = append(groups, g)
	}

	return groups
}
