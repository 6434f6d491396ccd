package huffman

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// CopyBits drains src into w one bit at a time, returning the number of
// bits written.  It does not close or flush w.
func CopyBits(w *bitio.Writer, src BitReader) (n int64, err error) {
	for {
		bit, ok := src.ReadBit()
		if !ok {
			return n, nil
		}
		if err := w.WriteBool(bit); err != nil {
			return n, errors.Wrap(err, "huffman: write bit")
		}
		n++
	}
}

// IOBits adapts a byte stream to the BitReader interface via a
// bitio.Reader.  The stream ends at the first read error; Err reports
// that error if it was anything other than io.EOF.
type IOBits struct {
	r   *bitio.Reader
	err error
}

// NewIOBits returns an IOBits reading bits from r, most significant bit
// of each byte first (the convention used by EncodeTo).
func NewIOBits(r io.Reader) *IOBits {
	return &IOBits{r: bitio.NewReader(r)}
}

// ReadBit implements BitReader.
func (x *IOBits) ReadBit() (bit bool, ok bool) {
	if x.err != nil {
		return false, false
	}
	bit, err := x.r.ReadBool()
	if err != nil {
		x.err = err
		return false, false
	}
	return bit, true
}

// Err returns the read error that ended the stream, if it was not io.EOF.
func (x *IOBits) Err() error {
	if x.err == io.EOF {
		return nil
	}
	return errors.Wrap(x.err, "huffman: read bit")
}

var _ BitReader = (*IOBits)(nil)

// EncodeTo encodes syms and packs the resulting bits into w, zero-padding
// the final byte.  It returns the number of code bits written, excluding
// padding.  The padding is not self-delimiting: to decode, the caller
// must bound the symbol count, as DecodeFrom does.
func (e *Encoding[S]) EncodeTo(w io.Writer, syms []S) (int64, error) {
	bw := bitio.NewWriter(w)
	it := e.EncodeStream(Symbols(syms...))
	n, err := CopyBits(bw, it)
	if err == nil {
		err = it.Err()
	}
	if err != nil {
		return n, err
	}
	return n, errors.Wrap(bw.Close(), "huffman: flush bits")
}

// DecodeFrom reads exactly count symbols from the bit-packed stream r, as
// produced by EncodeTo.
func (e *Encoding[S]) DecodeFrom(r io.Reader, count int) ([]S, error) {
	src := NewIOBits(r)
	it := e.DecodeStream(src)
	out := make([]S, 0, count)
	for len(out) < count {
		sym, ok := it.ReadSymbol()
		if !ok {
			if err := src.Err(); err != nil {
				return out, err
			}
			return out, errors.Wrapf(io.ErrUnexpectedEOF, "huffman: %d of %d symbols decoded", len(out), count)
		}
		out = append(out, sym)
	}
	return out, nil
}
