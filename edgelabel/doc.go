// Package edgelabel provides the signed-integer edge labelling shared by
// every other package in this module: triangulations, laminations, moves,
// and homology classes are all indexed by Edge labels defined here.
//
// An Edge is nothing more than an int with fancy printing and orientation
// arithmetic attached: two labels with the same Index are a mated pair of
// opposite orientations of the same undirected edge, and Invert flips
// between them.
package edgelabel
