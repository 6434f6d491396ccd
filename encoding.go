package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Encoding is an immutable Huffman code over an alphabet of symbols.
// Once built by New it is never mutated, so a single Encoding may serve
// any number of concurrent encode and decode streams.
type Encoding[S comparable] struct {
	arena    []node
	root     int32
	alphabet []S
	codes    []Code
	index    map[S]int32
	minSize  byte
	maxSize  byte
}

// New builds an Encoding from parallel weights and alphabet slices:
// weights[i] is the weight of alphabet[i], and heavier symbols receive
// shorter codewords.  The alphabet must be non-empty and free of
// duplicates, and both slices must have the same length.  New copies the
// alphabet; the caller keeps ownership of both arguments.
func New[S comparable](weights []uint64, alphabet []S) (*Encoding[S], error) {
	if len(weights) != len(alphabet) {
		return nil, errors.Wrapf(ErrLengthMismatch, "%d weights, %d symbols", len(weights), len(alphabet))
	}
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}

	index := make(map[S]int32, len(alphabet))
	for i, sym := range alphabet {
		if _, dup := index[sym]; dup {
			return nil, errors.Wrapf(ErrDuplicateSymbol, "%v", sym)
		}
		index[sym] = int32(i)
	}

	arena, root := buildTree(weights)

	e := &Encoding[S]{
		arena:    arena,
		root:     root,
		alphabet: append([]S(nil), alphabet...),
		codes:    make([]Code, len(alphabet)),
		index:    index,
	}
	if err := e.fillCodes(root, 0, 0); err != nil {
		return nil, err
	}

	e.minSize, e.maxSize = e.codes[0].Size, e.codes[0].Size
	for _, hc := range e.codes[1:] {
		if e.minSize > hc.Size {
			e.minSize = hc.Size
		}
		if e.maxSize < hc.Size {
			e.maxSize = hc.Size
		}
	}
	return e, nil
}

// fillCodes derives the code table with one depth-first walk.  Taking the
// right edge at depth d sets bit d of the accumulator, so a codeword read
// from bit 0 upward spells the root-to-leaf path.
func (e *Encoding[S]) fillCodes(idx int32, depth byte, acc uint64) error {
	nd := &e.arena[idx]
	if nd.leaf {
		e.codes[nd.symbol] = Code{Size: depth, Bits: acc}
		return nil
	}
	if depth >= MaxCodeBits {
		return errors.Wrapf(ErrTreeTooDeep, "internal node at depth %d", depth)
	}
	if err := e.fillCodes(nd.left, depth+1, acc); err != nil {
		return err
	}
	return e.fillCodes(nd.right, depth+1, acc|uint64(1)<<depth)
}

// Len is the number of symbols in the alphabet.
func (e *Encoding[S]) Len() int {
	return len(e.alphabet)
}

// MinSize is the bit length of the shortest codeword.
func (e *Encoding[S]) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest codeword.
func (e *Encoding[S]) MaxSize() byte {
	return e.maxSize
}

// Codeword returns the packed codeword for the given symbol.
func (e *Encoding[S]) Codeword(sym S) (Code, error) {
	i, found := e.index[sym]
	if !found {
		return Code{}, errors.Wrapf(ErrUnknownSymbol, "%v", sym)
	}
	return e.codes[i], nil
}

// Encode encodes a single symbol into its codeword's bit sequence.
func (e *Encoding[S]) Encode(sym S) (BitSeq, error) {
	hc, err := e.Codeword(sym)
	if err != nil {
		return BitSeq{}, err
	}
	return hc.Seq(), nil
}

// EncodeStream returns a lazy bit stream that concatenates the codewords
// of the symbols read from src, in order.  One symbol is consumed from src
// only once its predecessor's bits are exhausted, so src may be unbounded.
func (e *Encoding[S]) EncodeStream(src SymbolReader[S]) *Encoder[S] {
	return &Encoder[S]{enc: e, src: src}
}

// DecodeStream returns a lazy symbol stream decoded from the bits read
// from src.  Trailing bits that do not complete a codeword are dropped
// silently.
func (e *Encoding[S]) DecodeStream(src BitReader) *Decoder[S] {
	return &Decoder[S]{enc: e, src: src, node: e.root}
}

// Dump writes a programmer-readable debugging dump of the Encoding's
// current state to the given writer.
func (e *Encoding[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoding{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for i, sym := range e.alphabet {
		fmt.Fprintf(&buf, "\tEncode(%v) = %s\n", sym, e.codes[i])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
