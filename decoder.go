package huffman

// Decoder is a lazy, single-pass symbol stream decoded from a bit stream
// by walking the code tree: from the root, a 0 bit selects the left child
// and a 1 bit the right child, and reaching a leaf emits its symbol and
// restarts at the root.
//
// If the bit stream ends mid-codeword, the truncated trailing bits are
// dropped and the stream simply ends; this is not an error.
//
// For a single-symbol alphabet the sole codeword is empty, so the decoder
// emits that symbol on every ReadSymbol without consuming any input; the
// caller is responsible for bounding such a stream.
//
// Decoder implements SymbolReader.
type Decoder[S comparable] struct {
	enc  *Encoding[S]
	src  BitReader
	node int32
	done bool
}

// ReadSymbol decodes and returns the next symbol.  It reports ok == false
// once the remaining bits cannot reach a leaf.
func (it *Decoder[S]) ReadSymbol() (sym S, ok bool) {
	if it.done {
		var zero S
		return zero, false
	}
	for {
		nd := &it.enc.arena[it.node]
		if nd.leaf {
			it.node = it.enc.root
			return it.enc.alphabet[nd.symbol], true
		}
		bit, more := it.src.ReadBit()
		if !more {
			it.done = true
			var zero S
			return zero, false
		}
		if bit {
			it.node = nd.right
		} else {
			it.node = nd.left
		}
	}
}

var _ SymbolReader[rune] = (*Decoder[rune])(nil)
