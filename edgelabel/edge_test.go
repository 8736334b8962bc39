package edgelabel_test

import (
	"testing"

	"github.com/katalvlaran/curver/edgelabel"
	"github.com/stretchr/testify/assert"
)

func TestInvertIsInvolution(t *testing.T) {
	for _, raw := range []int{0, 1, 2, -1, -2, -3, 41, -42} {
		e := edgelabel.Edge(raw)
		assert.Equal(t, e, e.Invert().Invert())
		assert.NotEqual(t, e, e.Invert())
	}
}

func TestIndexAgreesOnMatedPair(t *testing.T) {
	e := edgelabel.Edge(2)
	assert.Equal(t, e.Index(), e.Invert().Index())
	assert.Equal(t, 2, e.Index())
}

func TestSignDistinguishesOrientation(t *testing.T) {
	e := edgelabel.FromIndex(5)
	assert.Equal(t, 1, e.Sign())
	assert.Equal(t, -1, e.Invert().Sign())
}

func TestFromIndexRoundTrip(t *testing.T) {
	e := edgelabel.FromIndex(7)
	assert.Equal(t, 7, int(e))
	assert.Equal(t, 7, e.Index())
	assert.Equal(t, 1, e.Sign())
}

func TestStringFormatsPositiveAndInverted(t *testing.T) {
	e := edgelabel.FromIndex(3)
	assert.Equal(t, "3", e.String())
	assert.Equal(t, "~3", e.Invert().String())
}
