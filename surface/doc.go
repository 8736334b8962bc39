// Package surface constructs named surfaces S_{g,p} and exposes the
// standard Lickorish generator curves end-to-end scenarios act on,
// mirroring the functional-option constructor pattern used elsewhere
// in this module for graph construction.
package surface
