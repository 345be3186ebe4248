package packing

import (
	"fmt"
	"reflect"
)

// Unpack8 decodes exactly one byte.
func (c Codec) Unpack8(b []byte) (uint8, error) {
	u, err := c.unpack(Bits8, b)
	return uint8(u), err
}

// Unpack16 decodes exactly two bytes.
func (c Codec) Unpack16(b []byte) (uint16, error) {
	u, err := c.unpack(Bits16, b)
	return uint16(u), err
}

// Unpack32 decodes exactly four bytes.
func (c Codec) Unpack32(b []byte) (uint32, error) {
	u, err := c.unpack(Bits32, b)
	return uint32(u), err
}

// Unpack64 decodes exactly eight bytes.
func (c Codec) Unpack64(b []byte) (uint64, error) {
	return c.unpack(Bits64, b)
}

// Unpack8Many returns every byte of b as an integer. Any length is accepted.
func (c Codec) Unpack8Many(b []byte) ([]uint8, error) {
	return unpackMany[uint8](c, Bits8, b)
}

// Unpack16Many decodes b as consecutive 16-bit integers.
func (c Codec) Unpack16Many(b []byte) ([]uint16, error) {
	return unpackMany[uint16](c, Bits16, b)
}

// Unpack32Many decodes b as consecutive 32-bit integers.
func (c Codec) Unpack32Many(b []byte) ([]uint32, error) {
	return unpackMany[uint32](c, Bits32, b)
}

// Unpack64Many decodes b as consecutive 64-bit integers.
func (c Codec) Unpack64Many(b []byte) ([]uint64, error) {
	return unpackMany[uint64](c, Bits64, b)
}

// Unpack decodes a single w-bit integer from v, which must be a byte
// sequence of exactly w.Size() bytes. Text is rejected even when its
// encoding would have the right length.
func (c Codec) Unpack(w BitWidth, v interface{}) (uint64, error) {
	if err := checkWidth(w); err != nil {
		return 0, err
	}
	b, err := asBytes(v)
	if err != nil {
		return 0, err
	}
	return c.unpack(w, b)
}

// UnpackMany decodes v as consecutive w-bit integers. v must be a byte
// sequence whose length is a multiple of w.Size().
func (c Codec) UnpackMany(w BitWidth, v interface{}) ([]uint64, error) {
	if err := checkWidth(w); err != nil {
		return nil, err
	}
	b, err := asBytes(v)
	if err != nil {
		return nil, err
	}
	return unpackMany[uint64](c, w, b)
}

func (c Codec) unpack(w BitWidth, b []byte) (uint64, error) {
	// Ensure the slice is exactly one scalar long
	if len(b) != w.Size() {
		return 0, errLength(w.Size())
	}
	return c.readUint(w, b), nil
}

func unpackMany[T uint8 | uint16 | uint32 | uint64](c Codec, w BitWidth, b []byte) ([]T, error) {
	size := w.Size()

	// Ensure the input splits evenly into scalars
	if len(b)%size != 0 {
		return nil, errDivisible(size)
	}

	// Decode each group in input order
	out := make([]T, 0, len(b)/size)
	for i := 0; i < len(b); i += size {
		out = append(out, T(c.readUint(w, b[i:i+size])))
	}
	return out, nil
}

func checkWidth(w BitWidth) error {
	if !w.Valid() {
		return &RangeError{Msg: fmt.Sprintf("Bit width must be one of 8, 16, 32, 64, but width == %d", w)}
	}
	return nil
}

// asBytes accepts []byte, PackBytes, named byte slices and byte arrays
func asBytes(v interface{}) ([]byte, error) {
	switch x := v.(type) {
	case []byte:
		return x, nil
	case PackBytes:
		return x, nil
	case string, PackString, nil:
		return nil, errNotBytes
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return rv.Bytes(), nil
		}
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return copyByteArray(rv), nil
		}
	}
	return nil, errNotBytes
}
