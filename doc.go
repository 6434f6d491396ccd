// Package huffman builds minimum-redundancy prefix codes (Huffman codes)
// from weighted alphabets and uses them to transform symbol sequences into
// bitstreams and back.  It is an in-memory codec primitive: no file format,
// no framing, no code-table serialization.
//
// An Encoding is immutable once built and may be shared freely across
// goroutines; every encode/decode stream owns its own cursor state.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
//
//	D. A. Huffman, "A Method for the Construction of Minimum-Redundancy
//	Codes", Proceedings of the IRE, 1952
package huffman
