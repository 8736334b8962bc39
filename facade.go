package curver

import (
	"github.com/katalvlaran/curver/edgelabel"
	"github.com/katalvlaran/curver/encoding"
	"github.com/katalvlaran/curver/homology"
	"github.com/katalvlaran/curver/lamination"
	"github.com/katalvlaran/curver/move"
	_ "github.com/katalvlaran/curver/shorten" // registers lamination.Shortener
	"github.com/katalvlaran/curver/triangulation"
)

// Triangulation wraps triangulation.Triangulation with a convenience
// constructor for building a Lamination directly from an integer
// weight vector.
type Triangulation struct {
	*triangulation.Triangulation
}

// NewTriangulation builds a Triangulation from triangle triples; see
// triangulation.FromTriples for the exact label convention.
func NewTriangulation(triples [][3]int) (*Triangulation, error) {
	t, err := triangulation.FromTriples(triples)
	if err != nil {
		return nil, err
	}

	return &Triangulation{Triangulation: t}, nil
}

// Lamination builds the lamination with the given integer weight
// vector on t.
func (t *Triangulation) Lamination(weights []int64) (*lamination.Lamination, error) {
	return lamination.NewFromInts(t.Triangulation, weights)
}

// Encode rebuilds an Encoding from source under pkgs, the facade
// entry point for encoding.Decode.
func Encode(source *triangulation.Triangulation, pkgs []encoding.MovePackage) (*encoding.Encoding, error) {
	return encoding.Decode(source, pkgs)
}

// Re-exported error kinds a caller is expected to check first.
var (
	ErrNotShort       = lamination.ErrNotShort
	ErrWrongLength    = lamination.ErrWrongLength
	ErrNoShortener    = lamination.ErrNoShortener
	ErrNotFlippable   = move.ErrNotFlippable
	ErrPrecondition   = move.ErrPreconditionViolated
	ErrNotPackageable = move.ErrNotPackageable
)

// Re-exported types a caller constructs directly.
type (
	Lamination = lamination.Lamination
	Move       = move.Move
	Encoding   = encoding.Encoding
	Class      = homology.Class
	Edge       = edgelabel.Edge
)
