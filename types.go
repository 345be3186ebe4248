package packing

import "fmt"

// BitWidth is the width of a packed or unpacked scalar.
type BitWidth uint8

const (
	Bits8  BitWidth = 8
	Bits16 BitWidth = 16
	Bits32 BitWidth = 32
	Bits64 BitWidth = 64
)

// Valid reports whether w is one of the supported widths
func (w BitWidth) Valid() bool {
	switch w {
	case Bits8, Bits16, Bits32, Bits64:
		return true
	default:
		return false
	}
}

// Size returns the number of bytes a scalar of this width occupies
func (w BitWidth) Size() int {
	return int(w) / 8
}

// fits reports whether u is below 2**w
func (w BitWidth) fits(u uint64) bool {
	if w >= Bits64 {
		return true
	}
	return u < uint64(1)<<w
}

// ParseBitWidth accepts 8, 16, 32 or 64.
func ParseBitWidth(n int) (BitWidth, error) {
	w := BitWidth(n)
	if n < 0 || n > 64 || !w.Valid() {
		return 0, fmt.Errorf("unsupported bit width %d, must be one of 8, 16, 32, 64", n)
	}
	return w, nil
}

// PackValue is the closed set of shapes the packer understands: PackUint,
// PackBytes, PackString and PackSeq. Arbitrary Go values are classified into
// one of these before being written.
type PackValue interface {
	packValue()
}

// PackUint is an unsigned integer, range checked against the target width.
type PackUint uint64

// PackBytes is emitted verbatim, whatever its length.
type PackBytes []byte

// PackString is emitted as its UTF-8 bytes.
type PackString string

// PackSeq is packed element by element, in order.
type PackSeq []interface{}

func (PackUint) packValue()   {}
func (PackBytes) packValue()  {}
func (PackString) packValue() {}
func (PackSeq) packValue()    {}
