package huffman

import (
	"strings"

	"github.com/chronos-tachyon/assert"
)

// WordSize is the width, in bits, of the integer underlying a BitSeq.
const WordSize = 64

// BitSeq is a view of the bits of a uint64 with a logical length, least
// significant bit first.  It is a value type: copying a BitSeq yields an
// independent cursor over the same bits, and every operation is O(1) with
// no allocation.
//
// The zero BitSeq is the empty sequence.
type BitSeq struct {
	bits uint64
	size byte
}

// Bits constructs a BitSeq over the low size bits of value.  Pass WordSize
// for a view of the full width.
func Bits(value uint64, size int) BitSeq {
	assert.Assertf(size >= 0 && size <= WordSize, "size %d out of range [0, %d]", size, WordSize)
	return BitSeq{bits: value & mask(size), size: byte(size)}
}

// Len is the number of bits in the sequence.
func (bs BitSeq) Len() int {
	return int(bs.size)
}

// Empty is true iff the sequence has no bits.
func (bs BitSeq) Empty() bool {
	return bs.size == 0
}

// Uint64 returns the bits packed into a uint64, first bit in the least
// significant position.
func (bs BitSeq) Uint64() uint64 {
	return bs.bits
}

// Front is the first bit of the sequence.
func (bs BitSeq) Front() bool {
	assert.Assertf(bs.size != 0, "Front of empty BitSeq")
	return bs.bits&1 != 0
}

// Back is the last bit of the sequence.
func (bs BitSeq) Back() bool {
	assert.Assertf(bs.size != 0, "Back of empty BitSeq")
	return bs.bits>>(bs.size-1)&1 != 0
}

// PopFront removes the first bit.
func (bs *BitSeq) PopFront() {
	assert.Assertf(bs.size != 0, "PopFront of empty BitSeq")
	bs.bits >>= 1
	bs.size--
}

// PopBack removes the last bit.
func (bs *BitSeq) PopBack() {
	assert.Assertf(bs.size != 0, "PopBack of empty BitSeq")
	bs.size--
	bs.bits &= mask(int(bs.size))
}

// At is the bit at position i, where position 0 is the front.
func (bs BitSeq) At(i int) bool {
	assert.Assertf(i >= 0 && i < int(bs.size), "index %d out of range [0, %d)", i, bs.size)
	return bs.bits>>uint(i)&1 != 0
}

// Slice returns the sub-sequence [i, j) as a fresh BitSeq.
func (bs BitSeq) Slice(i, j int) BitSeq {
	assert.Assertf(i >= 0 && i <= j && j <= int(bs.size), "slice [%d, %d) out of range [0, %d]", i, j, bs.size)
	return BitSeq{bits: bs.bits >> uint(i) & mask(j-i), size: byte(j - i)}
}

// Reversed returns the sequence with its bits in the opposite order.
func (bs BitSeq) Reversed() BitSeq {
	return BitSeq{bits: reverseBits(bs.size, bs.bits), size: bs.size}
}

// ReadBit pops and returns the front bit.  It reports ok == false once the
// sequence is empty, making *BitSeq a BitReader.
func (bs *BitSeq) ReadBit() (bit bool, ok bool) {
	if bs.size == 0 {
		return false, false
	}
	bit = bs.bits&1 != 0
	bs.bits >>= 1
	bs.size--
	return bit, true
}

// String returns the bits front to back, e.g. "0110".
func (bs BitSeq) String() string {
	var sb strings.Builder
	sb.Grow(int(bs.size))
	for i := 0; i < int(bs.size); i++ {
		if bs.At(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func mask(size int) uint64 {
	if size >= WordSize {
		return ^uint64(0)
	}
	return uint64(1)<<uint(size) - 1
}
