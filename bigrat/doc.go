// Package bigrat collects the arbitrary-precision numeric helpers shared by
// the triangulation, lamination, encoding, and homology packages: coordinate
// arithmetic over *big.Int (no fixed-width overflow is permitted anywhere in
// this module, per the numeric model this core promises its callers),
// Lehmer-code permutation indexing for triangulation signatures, and the
// compact b64 integer codec used by Triangulation.Sig.
//
// None of these are novel: they are the same factorial-indexing trick
// gonum.org/v1/gonum/stat/combin uses for combinatorial enumeration, just
// carried out over *big.Int because the permutations being indexed here are
// on 2*zeta symbols and factorial(2*zeta) overflows a machine int long
// before zeta gets interesting.
package bigrat
