package shorten

import "github.com/katalvlaran/curver/lamination"

// init registers this package's engine as the lamination package's
// Shortener, the dependency-injection seam lamination/reduce.go
// documents (lamination cannot import shorten: shorten needs move,
// and move needs lamination).
func init() {
	lamination.Shortener = func(l *lamination.Lamination) (*lamination.Lamination, lamination.Reducer, error) {
		return Compute(l)
	}
}
