package huffman

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/icza/bitio"
)

func TestEncodeTo_DecodeFrom(t *testing.T) {
	e := makeTestEncoding()

	msg := strings.Split("ebbaaeaafc", "")

	var buf bytes.Buffer
	n, err := e.EncodeTo(&buf, msg)
	if err != nil {
		t.Fatalf("EncodeTo failed: %v", err)
	}
	if n != 24 {
		t.Errorf("expected 24 code bits, got %d", n)
	}
	if buf.Len() != 3 {
		t.Errorf("expected 3 packed bytes, got %d", buf.Len())
	}

	actual, err := e.DecodeFrom(&buf, len(msg))
	if err != nil {
		t.Fatalf("DecodeFrom failed: %v", err)
	}
	if strings.Join(actual, "") != "ebbaaeaafc" {
		t.Errorf("expected \"ebbaaeaafc\", got %q", strings.Join(actual, ""))
	}
}

func TestEncodeTo_Padding(t *testing.T) {
	e := makeTestEncoding()

	// "b" is 3 bits, so the packed form is one zero-padded byte.
	var buf bytes.Buffer
	n, err := e.EncodeTo(&buf, []string{"b"})
	if err != nil {
		t.Fatalf("EncodeTo failed: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 code bits, got %d", n)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0b100_00000}) {
		t.Errorf("expected packed byte 0b10000000, got %08b", buf.Bytes())
	}
}

func TestDecodeFrom_ShortInput(t *testing.T) {
	e := makeTestEncoding()

	var buf bytes.Buffer
	if _, err := e.EncodeTo(&buf, []string{"a", "c"}); err != nil {
		t.Fatalf("EncodeTo failed: %v", err)
	}

	_, err := e.DecodeFrom(&buf, 100)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
	}
}

func TestEncodeTo_UnknownSymbol(t *testing.T) {
	e := makeTestEncoding()

	var buf bytes.Buffer
	_, err := e.EncodeTo(&buf, []string{"a", "nope"})
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestCopyBits(t *testing.T) {
	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)

	seq := Bits(0b1101, 4) // stream order: 1, 0, 1, 1
	n, err := CopyBits(w, &seq)
	if err != nil {
		t.Fatalf("CopyBits failed: %v", err)
	}
	if n != 4 {
		t.Errorf("expected 4 bits copied, got %d", n)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0b1011_0000}) {
		t.Errorf("expected packed byte 0b10110000, got %08b", buf.Bytes())
	}
}

func TestIOBits(t *testing.T) {
	src := NewIOBits(bytes.NewReader([]byte{0b1010_0000}))

	expect := []bool{true, false, true, false, false, false, false, false}
	for i, want := range expect {
		bit, ok := src.ReadBit()
		if !ok {
			t.Fatalf("ReadBit #%d: unexpected end of stream", i)
		}
		if bit != want {
			t.Errorf("ReadBit #%d: expected %v, got %v", i, want, bit)
		}
	}
	if _, ok := src.ReadBit(); ok {
		t.Error("expected end of stream")
	}
	if err := src.Err(); err != nil {
		t.Errorf("expected clean EOF, got %v", err)
	}
}
