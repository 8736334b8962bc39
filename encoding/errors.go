package encoding

import "errors"

var (
	// ErrEmpty is returned when New is given no moves; an Encoding is a
	// non-empty ordered list by definition.
	ErrEmpty = errors.New("encoding: empty move list")

	// ErrBrokenChain indicates that consecutive moves do not chain
	// (moves[i].Target() != moves[i+1].Source()).
	ErrBrokenChain = errors.New("encoding: moves do not chain")

	// ErrBadRange is returned by Slice for an out-of-bounds or inverted
	// range.
	ErrBadRange = errors.New("encoding: slice range out of bounds")

	// ErrNotComposable is returned by Compose when self.Target() !=
	// other.Source().
	ErrNotComposable = errors.New("encoding: target/source mismatch")

	// ErrNotMapping is returned by Kind-gated operations when the
	// Encoding is not promoted to Mapping/MappingClass.
	ErrNotMapping = errors.New("encoding: not a flip-graph mapping")

	// ErrNotMappingClass is returned by AsMappingClass when the Encoding
	// is not of KindMappingClass.
	ErrNotMappingClass = errors.New("encoding: not a mapping class")

	// ErrZetaChanged is returned by HomologyMatrix/IntersectionMatrix
	// when source and target do not share the same edge count, e.g. a
	// Crush/Lift in the chain: the generating families these matrices are
	// built from are indexed by edge index, which only lines up between
	// source and target when zeta is preserved.
	ErrZetaChanged = errors.New("encoding: source and target zeta differ")
)
