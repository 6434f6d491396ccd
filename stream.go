package huffman

// SymbolReader is a pull cursor over a sequence of symbols.  ReadSymbol
// reports ok == false at end of input; implementations are single-pass.
type SymbolReader[S any] interface {
	ReadSymbol() (sym S, ok bool)
}

// BitReader is a pull cursor over a sequence of bits.  ReadBit reports
// ok == false at end of input; implementations are single-pass.
//
// *BitSeq implements BitReader, so ad hoc bit inputs can be built with
// Bits.
type BitReader interface {
	ReadBit() (bit bool, ok bool)
}

// Symbols returns a SymbolReader that yields the given symbols in order.
func Symbols[S any](syms ...S) SymbolReader[S] {
	return &sliceReader[S]{syms: syms}
}

type sliceReader[S any] struct {
	syms []S
	next int
}

func (r *sliceReader[S]) ReadSymbol() (S, bool) {
	if r.next >= len(r.syms) {
		var zero S
		return zero, false
	}
	sym := r.syms[r.next]
	r.next++
	return sym, true
}

var _ BitReader = (*BitSeq)(nil)
