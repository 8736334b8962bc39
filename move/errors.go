package move

import "errors"

// ErrNotFlippable indicates EdgeFlip/MultiEdgeFlip was asked to flip an
// edge bordering a once-punctured monogon.
var ErrNotFlippable = errors.New("move: edge is not flippable")

// ErrOverlappingFlips indicates MultiEdgeFlip was given edges whose
// supporting triangles are not pairwise disjoint.
var ErrOverlappingFlips = errors.New("move: multi-flip edges share a triangle")

// ErrPreconditionViolated indicates a move precondition failed: a
// non-short curve/arc passed to Twist/HalfTwist, a peripheral curve
// passed to Twist, an arc not connecting distinct vertices passed to
// HalfTwist, or a curve with weight != 2 passed to Crush.
var ErrPreconditionViolated = errors.New("move: precondition violated")

// ErrUnsupportedConfiguration indicates Crush was asked to collapse an
// isolating curve, which the core does not handle.
var ErrUnsupportedConfiguration = errors.New("move: unsupported configuration")

// ErrNotPackageable indicates Package was called on a Crush or Lift,
// neither of which can be reduced to a minimal reconstructible descriptor.
var ErrNotPackageable = errors.New("move: this move cannot be packaged")

// ErrHomologyUnsupported indicates ApplyHomology was called on a Crush
// or Lift, whose homology transport is intentionally left undefined;
// see DESIGN.md.
var ErrHomologyUnsupported = errors.New("move: homology transport is undefined for Crush/Lift")
