package shorten

import "errors"

// ErrNoProgress is an internal invariant violation: the main loop
// selected an edge with positive score but applying its flip made no
// measurable progress. It should never occur; seeing it indicates a
// bug in the scoring function, not a user error.
var ErrNoProgress = errors.New("shorten: selected move made no progress")
