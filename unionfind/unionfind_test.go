package unionfind_test

import (
	"testing"

	"github.com/katalvlaran/curver/unionfind"
	"github.com/stretchr/testify/assert"
)

func TestUnionFindBasic(t *testing.T) {
	uf := unionfind.New([]int{1, 2, 3, 4, 5})
	assert.False(t, uf.Same(1, 2))

	uf.Union(1, 2)
	uf.Union(2, 3)
	assert.True(t, uf.Same(1, 3))
	assert.False(t, uf.Same(1, 4))

	uf.Union(4, 5)
	assert.True(t, uf.Same(4, 5))
	assert.False(t, uf.Same(1, 4))

	uf.Union(3, 4)
	assert.True(t, uf.Same(1, 5))
}

func TestUnionFindGroups(t *testing.T) {
	uf := unionfind.New([]string{"a", "b", "c", "d"})
	uf.Union("a", "b")
	uf.Union("c", "d")

	groups := uf.Groups()
	assert.Len(t, groups, 2)
	for _, g := range groups {
		assert.Len(t, g, 2)
	}
}

func TestUnionFindDeepChainDoesNotRecurse(t *testing.T) {
	const n = 200000
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	uf := unionfind.New(items)
	for i := 1; i < n; i++ {
		uf.Union(i-1, i)
	}
	assert.True(t, uf.Same(0, n-1))
}
