// Package encoding assembles Moves into Encodings: non-empty ordered
// move sequences that classify themselves into plain Encoding,
// Mapping, or MappingClass, support slicing, composition, inversion,
// and generator-based equality.
package encoding
