package surface

import (
	"fmt"

	"github.com/katalvlaran/curver/lamination"
	"github.com/katalvlaran/curver/triangulation"
)

// Surface pairs a named S_{g,p}'s ideal triangulation with its standard
// generating family of curves: the Lickorish generators A(i)/B(i) for
// each handle, used in end-to-end scenarios such as Dehn twists about
// them and mapping class order checks.
type Surface struct {
	Genus, Punctures int
	Triangulation    *triangulation.Triangulation

	generatorsA []*lamination.Lamination
	generatorsB []*lamination.Lamination
}

// config holds Build's optional settings. Empty today; the type exists
// so Build's signature doesn't need to change when a first Option is
// added (e.g. a choice of labelling convention).
type config struct{}

// Option customizes Build.
type Option func(*config)

// Build constructs S_{g, p}. (g, p) in {(1,1), (1,2), (0,4)} is
// synthesized; see ErrUnsupportedConfiguration for anything else.
func Build(g, p int, opts ...Option) (*Surface, error) {
	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}

	switch {
	case g == 1 && p == 1:
		return buildOncePuncturedTorus()
	case g == 1 && p == 2:
		return buildTwicePuncturedTorus()
	case g == 0 && p == 4:
		return buildFourPuncturedSphere()
	}

	return nil, fmt.Errorf("surface: S_{%d,%d}: %w", g, p, ErrUnsupportedConfiguration)
}

// buildOncePuncturedTorus is the standard two-triangle ideal
// triangulation of S_{1,1}: triangle (0,1,2) glued to its own mirror
// (~0,~1,~2). Its three edges are the meridian, longitude, and diagonal
// of the one-holed torus; A(0) and B(0) are the short weight-2 curves
// parallel to the meridian and longitude.
func buildOncePuncturedTorus() (*Surface, error) {
	tri, err := triangulation.FromTriples([][3]int{
		{0, 1, 2},
		{-1, -2, -3},
	})
	if err != nil {
		return nil, err
	}

	a, err := lamination.NewFromInts(tri, []int64{2, 0, 0})
	if err != nil {
		return nil, err
	}
	b, err := lamination.NewFromInts(tri, []int64{0, 2, 0})
	if err != nil {
		return nil, err
	}

	return &Surface{
		Genus: 1, Punctures: 1, Triangulation: tri,
		generatorsA: []*lamination.Lamination{a},
		generatorsB: []*lamination.Lamination{b},
	}, nil
}

// checkSurface confirms tri actually classifies as (genus, punctures)
// per Triangulation.Surface()'s own corner/vertex-link derivation,
// independent of whatever hand derivation a builder used to pick its
// triangle set.
func checkSurface(tri *triangulation.Triangulation, genus, punctures int) error {
	if !tri.IsConnected() {
		return fmt.Errorf("surface: %w: not connected", ErrClassificationMismatch)
	}
	got := tri.Surface()[0]
	if got.Genus != genus || got.Punctures != punctures {
		return fmt.Errorf("surface: got (genus %d, punctures %d), want (%d, %d): %w",
			got.Genus, got.Punctures, genus, punctures, ErrClassificationMismatch)
	}

	return nil
}

// buildTwicePuncturedTorus is S_{1,2}: buildOncePuncturedTorus's
// triangle (0,1,2) stellar-subdivided into three triangles around a
// new interior vertex, introducing edges 3, 4, 5. The other triangle,
// (~0,~1,~2), is unchanged, so A(0)/B(0) are the same meridian/
// longitude curves as the once-punctured torus, now carried on a
// six-edge triangulation.
func buildTwicePuncturedTorus() (*Surface, error) {
	tri, err := triangulation.FromTriples([][3]int{
		{-1, -2, -3},
		{0, -5, 3},
		{1, -6, 4},
		{2, -4, 5},
	})
	if err != nil {
		return nil, err
	}
	if err := checkSurface(tri, 1, 2); err != nil {
		return nil, err
	}

	a, err := lamination.NewFromInts(tri, []int64{2, 0, 0, 0, 0, 0})
	if err != nil {
		return nil, err
	}
	b, err := lamination.NewFromInts(tri, []int64{0, 2, 0, 0, 0, 0})
	if err != nil {
		return nil, err
	}

	return &Surface{
		Genus: 1, Punctures: 2, Triangulation: tri,
		generatorsA: []*lamination.Lamination{a},
		generatorsB: []*lamination.Lamination{b},
	}, nil
}

// buildFourPuncturedSphere is S_{0,4}: the boundary of a tetrahedron,
// its four triangular faces glued with consistently outward-facing
// orientation, giving four distinct vertices (one per tetrahedron
// corner) and six edges (one per tetrahedron edge). A(0) is the
// weight-2 curve parallel to edge 0, separating the punctures at its
// two endpoints' opposite faces from the other two.
func buildFourPuncturedSphere() (*Surface, error) {
	tri, err := triangulation.FromTriples([][3]int{
		{0, 1, 2},
		{3, 4, -1},
		{-3, 5, -4},
		{-5, -6, -2},
	})
	if err != nil {
		return nil, err
	}
	if err := checkSurface(tri, 0, 4); err != nil {
		return nil, err
	}

	a, err := lamination.NewFromInts(tri, []int64{2, 0, 0, 0, 0, 0})
	if err != nil {
		return nil, err
	}

	return &Surface{
		Genus: 0, Punctures: 4, Triangulation: tri,
		generatorsA: []*lamination.Lamination{a},
	}, nil
}

// A returns the i-th Lickorish "meridian" generator curve.
func (s *Surface) A(i int) (*lamination.Lamination, error) {
	if i < 0 || i >= len(s.generatorsA) {
		return nil, ErrUnsupportedConfiguration
	}

	return s.generatorsA[i], nil
}

// B returns the i-th Lickorish "longitude" generator curve.
func (s *Surface) B(i int) (*lamination.Lamination, error) {
	if i < 0 || i >= len(s.generatorsB) {
		return nil, ErrUnsupportedConfiguration
	}

	return s.generatorsB[i], nil
}
