// Package littleendian packs and unpacks fixed-width unsigned integers little-endian.
package littleendian

import "github.com/justicz/packing"

var codec = packing.LittleEndian

// Pack8 packs v with 8-bit integers.
func Pack8(v interface{}) ([]byte, error) { return codec.Pack8(v) }

// Pack16 packs v with 16-bit little-endian integers.
func Pack16(v interface{}) ([]byte, error) { return codec.Pack16(v) }

// Pack32 packs v with 32-bit little-endian integers.
func Pack32(v interface{}) ([]byte, error) { return codec.Pack32(v) }

// Pack64 packs v with 64-bit little-endian integers.
func Pack64(v interface{}) ([]byte, error) { return codec.Pack64(v) }

// Unpack8 decodes exactly one byte as a little-endian integer.
func Unpack8(b []byte) (uint8, error) { return codec.Unpack8(b) }

// Unpack16 decodes exactly two bytes as a little-endian integer.
func Unpack16(b []byte) (uint16, error) { return codec.Unpack16(b) }

// Unpack32 decodes exactly four bytes as a little-endian integer.
func Unpack32(b []byte) (uint32, error) { return codec.Unpack32(b) }

// Unpack64 decodes exactly eight bytes as a little-endian integer.
func Unpack64(b []byte) (uint64, error) { return codec.Unpack64(b) }

// Unpack8Many decodes b as consecutive 8-bit little-endian integers.
func Unpack8Many(b []byte) ([]uint8, error) { return codec.Unpack8Many(b) }

// Unpack16Many decodes b as consecutive 16-bit little-endian integers.
func Unpack16Many(b []byte) ([]uint16, error) { return codec.Unpack16Many(b) }

// Unpack32Many decodes b as consecutive 32-bit little-endian integers.
func Unpack32Many(b []byte) ([]uint32, error) { return codec.Unpack32Many(b) }

// Unpack64Many decodes b as consecutive 64-bit little-endian integers.
func Unpack64Many(b []byte) ([]uint64, error) { return codec.Unpack64Many(b) }
