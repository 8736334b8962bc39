// Package shorten implements the shortening engine: it drives a
// sequence of edge flips (and, when profitable, spiralling-accelerated
// twists) that reduces any lamination to its short form, and registers
// itself as the lamination package's Shortener so Components,
// Intersection, and Boundary can call it without an import cycle.
package shorten
