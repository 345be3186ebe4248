// Package packing converts values to and from flat byte strings of
// fixed-width unsigned integers.
//
// Packing accepts integers, byte slices, strings and arbitrarily nested
// sequences of those, and concatenates them in order:
//
//	b, err := packing.BigEndian.Pack8([]interface{}{0x41, 0x42, []interface{}{"hello"}})
//	// b == []byte("ABhello")
//
// Integers are range checked against the bit width and written in the
// codec's byte order. Byte slices and strings are written verbatim, which
// lets already packed buffers be embedded in larger payloads.
//
// Unpacking is the reverse for integers only: a byte slice of exactly one
// scalar, or a slice whose length divides evenly into scalars.
//
// The bigendian and littleendian subpackages expose the same operations as
// plain functions.
package packing
