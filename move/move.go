package move

import (
	"github.com/katalvlaran/curver/homology"
	"github.com/katalvlaran/curver/lamination"
	"github.com/katalvlaran/curver/triangulation"
)

// Move is an atomic triangulation transformation: it knows its source
// and target triangulation, how to push a Lamination and a
// homology.Class forward, how to invert itself, whether it belongs to
// the flip-graph subcategory (Isometry/EdgeFlip/MultiEdgeFlip/Twist/
// HalfTwist do; Crush/Lift do not, since they change Euler
// characteristic bookkeeping in a way Encoding promotion must exclude
// from Mapping/MappingClass), and how to serialise itself.
type Move interface {
	Source() *triangulation.Triangulation
	Target() *triangulation.Triangulation
	ApplyLamination(*lamination.Lamination) (*lamination.Lamination, error)
	ApplyHomology(*homology.Class) (*homology.Class, error)
	Inverse() Move
	IsFlipGraphMove() bool
	Package() (any, error)
}
