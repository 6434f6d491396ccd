package huffman

// Encoder is a lazy, single-pass bit stream over the concatenated
// codewords of a symbol stream.  It suspends only at codeword boundaries:
// within a codeword, each bit is produced in O(1) from the pending BitSeq.
//
// Encoder implements BitReader.  After ReadBit reports ok == false, Err
// distinguishes end of input (nil) from an unknown symbol.
type Encoder[S comparable] struct {
	enc *Encoding[S]
	src SymbolReader[S]
	cur BitSeq
	err error
}

// ReadBit produces the next bit of the encoded stream.  It reports
// ok == false when the symbol stream is exhausted or a symbol outside the
// alphabet is encountered.
func (it *Encoder[S]) ReadBit() (bit bool, ok bool) {
	for it.cur.Empty() {
		if it.err != nil {
			return false, false
		}
		sym, more := it.src.ReadSymbol()
		if !more {
			return false, false
		}
		seq, err := it.enc.Encode(sym)
		if err != nil {
			it.err = err
			return false, false
		}
		it.cur = seq
	}
	bit = it.cur.Front()
	it.cur.PopFront()
	return bit, true
}

// Err returns the error that terminated the stream, if any.  The only
// possible error is a wrapped ErrUnknownSymbol.
func (it *Encoder[S]) Err() error {
	return it.err
}

var _ BitReader = (*Encoder[rune])(nil)
