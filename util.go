package huffman

import (
	mathbits "math/bits"
)

func reverseBits(size byte, bits uint64) uint64 {
	if size == 0 {
		return 0
	}
	return mathbits.Reverse64(bits) >> (64 - uint(size))
}
