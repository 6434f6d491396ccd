package huffman

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// MaxCodeBits is the longest supported codeword, in bits.  It is the
// payload capacity of a packed single-word codeword representation that
// reserves a small high-order field for the length, and it bounds the
// depth of any code tree this package will build.
const MaxCodeBits = 57

// Code represents one codeword as a (length, bit pattern) pair.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The least significant
	// bit of Bits is the first bit, i.e. the edge taken at the root.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= MaxCodeBits, "size %d > MaxCodeBits %d", size, MaxCodeBits)
	return Code{Size: size, Bits: bits & mask(int(size))}
}

// MakeReversedCode constructs a Code from a sequence of bits that's in the
// wrong order, i.e. the least significant bit is the *last* bit in the
// sequence, instead of the first.
func MakeReversedCode(size byte, bits uint64) Code {
	return MakeCode(size, reverseBits(size, bits))
}

// Reversed returns the corresponding Code with the bits in reverse order.
func (hc Code) Reversed() Code {
	return MakeReversedCode(hc.Size, hc.Bits)
}

// Seq returns the codeword as a BitSeq, first bit at the front.
func (hc Code) Seq() BitSeq {
	return Bits(hc.Bits, int(hc.Size))
}

// String returns the string representation of this Code, bits in
// transmission order (root to leaf).
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, reverseBits(hc.Size, hc.Bits)))
}

var _ fmt.Stringer = Code{}
