package bigrat

import (
	"errors"
	"math/big"
	"strings"
)

// alphabet is the digit order used by b64: 0-9, a-z, A-Z, +, -. Encoding is
// least-significant digit first and carries no padding; it exists purely to
// make Triangulation signatures short and URL-safe, not to match any
// standard base64 variant.
const alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ+-"

const base = int64(len(alphabet))

// ErrBadDigit is returned by B64Decode when the input contains a character
// outside the alphabet.
var ErrBadDigit = errors.New("bigrat: invalid b64 digit")

var digitValue [256]int8

func init() {
	for i := range digitValue {
		digitValue[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		digitValue[alphabet[i]] = int8(i)
	}
}

// B64Encode returns the least-significant-digit-first, unpadded encoding of
// n in the alphabet above. n must be non-negative. Zero encodes as "0".
func B64Encode(n *big.Int) string {
	if n.Sign() == 0 {
		return "0"
	}
	if n.Sign() < 0 {
		panic("bigrat: B64Encode of negative integer")
	}

	rem := new(big.Int).Set(n)
	b := big.NewInt(base)
	mod := new(big.Int)
	var out strings.Builder
	for rem.Sign() > 0 {
		rem.QuoRem(rem, b, mod)
		out.WriteByte(alphabet[mod.Int64()])
	}

	return out.String()
}

// B64Decode inverts B64Encode. It returns ErrBadDigit if s contains a
// character outside the alphabet, or if s is empty.
func B64Decode(s string) (*big.Int, error) {
	if s == "" {
		return nil, ErrBadDigit
	}

	result := new(big.Int)
	place := big.NewInt(1)
	b := big.NewInt(base)
	for i := 0; i < len(s); i++ {
		v := digitValue[s[i]]
		if v < 0 {
			return nil, ErrBadDigit
		}
		result.Add(result, new(big.Int).Mul(place, big.NewInt(int64(v))))
		place.Mul(place, b)
	}

	return result, nil
}
