// Package block provides growable, random-access sequences of integers
// that adaptively pick the narrowest representation able to hold the
// values seen so far.
//
// Three families are provided: FixedWidth (8/16/32/64-bit signed
// two's-complement slots), Bit (1..32-bit packed entries in three
// variants: Unsigned, Signed, UnsignedOrNull), and Inflatable, an
// adapter that transparently widens its inner block in place when a
// value no longer fits.
//
// None of the types in this package are safe for concurrent mutation;
// see the package-level concurrency note in the tree package for the
// policy callers are expected to apply on top.
package block
