package bigrat_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/katalvlaran/curver/bigrat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestB64RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		n := big.NewInt(r.Int63n(1 << 40))
		s := bigrat.B64Encode(n)
		got, err := bigrat.B64Decode(s)
		require.NoError(t, err)
		assert.Equal(t, n, got, "round trip of %s", n)
	}
}

func TestB64EncodeZero(t *testing.T) {
	assert.Equal(t, "0", bigrat.B64Encode(big.NewInt(0)))
}

func TestB64DecodeBadDigit(t *testing.T) {
	_, err := bigrat.B64Decode("0_0")
	assert.ErrorIs(t, err, bigrat.ErrBadDigit)

	_, err = bigrat.B64Decode("")
	assert.ErrorIs(t, err, bigrat.ErrBadDigit)
}

func TestB64IsLeastSignificantDigitFirst(t *testing.T) {
	// base is 64, so 64 itself should encode as "0" then digit-1 ("1"): i.e. "01".
	s := bigrat.B64Encode(big.NewInt(64))
	assert.Equal(t, "01", s)
}
