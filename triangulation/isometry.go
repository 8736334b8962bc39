package triangulation

import (
	"sort"

	"github.com/katalvlaran/curver/edgelabel"
)

// LabelMap is a bijection on edge labels witnessing an isometry between two
// triangulations: label_map[l] is where label l of the source goes.
type LabelMap map[edgelabel.Edge]edgelabel.Edge

// IsometriesTo enumerates every label-preserving triangulation isomorphism
// from t to other, in a deterministic order. The result is empty iff t and
// other are not isomorphic.
//
// Search proceeds component by component, matched in the canonical order
// Components returns (each component's own minimum label determines its
// rank): for each t-component, every (seed target triangle, rotation) pair
// against the corresponding other-component is tried and propagated by BFS
// across shared edges; inconsistent propagations are discarded. The full
// result is the cross product of each component's candidate maps.
//
// Note: components are paired positionally (t's i-th component only ever
// maps to other's i-th component). A triangulation whose automorphism group
// permutes isomorphic components into each other will still find the
// "aligned" isometries but not ones that additionally permute components;
// every scenario this module drives (connected surfaces) is unaffected.
func (t *Triangulation) IsometriesTo(other *Triangulation) []LabelMap {
	if t.zeta != other.zeta {
		return nil
	}
	tComps, oComps := t.Components(), other.Components()
	if len(tComps) != len(oComps) {
		return nil
	}

	perComponent := make([][]LabelMap, len(tComps))
	for i := range tComps {
		if len(tComps[i]) != len(oComps[i]) {
			return nil
		}
		maps := t.componentIsometries(other, tComps[i])
		if len(maps) == 0 {
			return nil
		}
		perComponent[i] = maps
	}

	return combineLabelMaps(perComponent)
}

// componentIsometries finds every isomorphism from the component of t
// containing seedComponent's labels onto the matching component of other,
// trying every (target triangle, rotation) seed and propagating via BFS.
func (t *Triangulation) componentIsometries(other *Triangulation, component []edgelabel.Edge) []LabelMap {
	seedLabel := component[0]
	for _, l := range component {
		if l < seedLabel {
			seedLabel = l
		}
	}
	seedTriangle := t.triangleOf[seedLabel]
	// Root the seed triangle at its own minimum label for determinism.
	seedRooted := seedTriangle.Canonical()

	var results []LabelMap
	for _, candidate := range other.triangles {
		for rotation := 0; rotation < 3; rotation++ {
			target := candidate.RotatedTo(candidate.Edge(rotation))
			m, ok := t.propagate(other, seedRooted, target.Triangle)
			if ok {
				results = append(results, m)
			}
		}
	}

	return dedupeLabelMaps(results)
}

// propagate attempts to extend the correspondence seed -> target (matching
// edge-for-edge in the given rotations) to the full connected component via
// breadth-first traversal across shared edges, using an explicit queue
// rather than recursion.
func (t *Triangulation) propagate(other *Triangulation, seed, target Triangle) (LabelMap, bool) {
	labelMap := make(LabelMap)
	visited := make(map[Triangle]bool)

	assign := func(a, b edgelabel.Edge) bool {
		if existing, ok := labelMap[a]; ok {
			return existing == b
		}
		if existing, ok := labelMap[a.Invert()]; ok {
			return existing == b.Invert()
		}
		labelMap[a] = b
		labelMap[a.Invert()] = b.Invert()

		return true
	}

	for i := 0; i < 3; i++ {
		if !assign(seed.Edge(i), target.Edge(i)) {
			return nil, false
		}
	}

	queue := []Triangle{seed}
	visited[seed] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		curTarget := t.mappedTriangle(other, cur, labelMap)
		for i := 0; i < 3; i++ {
			e := cur.Edge(i)
			nb := t.triangleOf[e.Invert()]
			if nb == cur {
				continue // non-flippable edge, same triangle both sides
			}
			me := labelMap[e]
			nbTarget := other.triangleOf[me.Invert()]
			nbRotated := nbTarget.RotatedTo(me.Invert())
			nbRooted := nb.RotatedTo(e.Invert())
			for j := 0; j < 3; j++ {
				if !assign(nbRooted.Edge(j), nbRotated.Edge(j)) {
					return nil, false
				}
			}
			_ = curTarget
			if !visited[nb] {
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}

	return labelMap, true
}

func (t *Triangulation) mappedTriangle(other *Triangulation, tri Triangle, labelMap LabelMap) Triangle {
	return other.triangleOf[labelMap[tri.Edge(0)]]
}

func dedupeLabelMaps(maps []LabelMap) []LabelMap {
	type key = string
	seen := make(map[key]bool)
	var out []LabelMap
	for _, m := range maps {
		k := labelMapKey(m)
		if !seen[k] {
			seen[k] = true
			out = append(out, m)
		}
	}

	return out
}

func labelMapKey(m LabelMap) string {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, int(k))
	}
	sort.Ints(keys)
	buf := make([]byte, 0, len(keys)*8)
	for _, k := range keys {
		buf = appendInt(buf, k)
		buf = append(buf, ':')
		buf = appendInt(buf, int(m[edgelabel.Edge(k)]))
		buf = append(buf, ',')
	}

	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	neg := v < 0
	if neg {
		v = -v
		buf = append(buf, '-')
	}
	if v == 0 {
		return append(buf, '0')
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	// Reverse the digits just appended.
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return buf
}

// combineLabelMaps returns the cross product of per-component candidate
// maps, merged into whole-triangulation label maps, in deterministic
// (lexicographic-by-component-choice) order.
func combineLabelMaps(perComponent [][]LabelMap) []LabelMap {
	results := []LabelMap{make(LabelMap)}
	for _, candidates := range perComponent {
		var next []LabelMap
		for _, partial := range results {
			for _, candidate := range candidates {
				merged := make(LabelMap, len(partial)+len(candidate))
				for k, v := range partial {
					merged[k] = v
				}
				for k, v := range candidate {
					merged[k] = v
				}
				next = append(next, merged)
			}
		}
		results = next
	}

	return results
}
