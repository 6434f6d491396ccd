package huffman

import (
	"errors"
)

var (
	// ErrLengthMismatch is returned by New when the weights and alphabet
	// arguments have different lengths.
	ErrLengthMismatch = errors.New("huffman: weights and alphabet differ in length")

	// ErrEmptyAlphabet is returned by New when the alphabet is empty.
	ErrEmptyAlphabet = errors.New("huffman: empty alphabet")

	// ErrDuplicateSymbol is returned by New when the alphabet contains the
	// same symbol more than once.
	ErrDuplicateSymbol = errors.New("huffman: duplicate symbol in alphabet")

	// ErrTreeTooDeep is returned by New when some codeword would be longer
	// than MaxCodeBits.
	ErrTreeTooDeep = errors.New("huffman: code tree deeper than MaxCodeBits")

	// ErrUnknownSymbol is returned by Encode and Codeword, and reported by
	// Encoder.Err, when a symbol is not part of the alphabet.
	ErrUnknownSymbol = errors.New("huffman: symbol not in alphabet")
)
