package homology

import "errors"

// ErrWrongLength indicates a value vector whose length does not equal
// the triangulation's zeta.
var ErrWrongLength = errors.New("homology: value vector has wrong length")
