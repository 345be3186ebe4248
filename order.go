package packing

import (
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/sys/cpu"
)

// ByteOrder selects how multi-byte scalars are laid out.
type ByteOrder uint8

const (
	BigEndianOrder ByteOrder = iota
	LittleEndianOrder
)

func (o ByteOrder) String() string {
	switch o {
	case BigEndianOrder:
		return "big"
	case LittleEndianOrder:
		return "little"
	default:
		return fmt.Sprintf("ByteOrder(%d)", uint8(o))
	}
}

// NativeOrder returns the byte order of the host.
func NativeOrder() ByteOrder {
	if cpu.IsBigEndian {
		return BigEndianOrder
	}
	return LittleEndianOrder
}

// ParseByteOrder accepts "big", "little" or "native" (case insensitive, with
// an optional "-endian" suffix).
func ParseByteOrder(s string) (ByteOrder, error) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "-endian")
	switch name {
	case "big", "be":
		return BigEndianOrder, nil
	case "little", "le":
		return LittleEndianOrder, nil
	case "native":
		return NativeOrder(), nil
	default:
		return 0, fmt.Errorf("unknown byte order %q, must be big, little or native", s)
	}
}

// Codec packs and unpacks fixed-width scalars in one byte order. The zero
// value is big-endian. Codecs hold no state and are safe for concurrent use.
type Codec struct {
	order ByteOrder
}

var (
	// BigEndian lays out scalars most significant byte first
	BigEndian = Codec{order: BigEndianOrder}

	// LittleEndian lays out scalars least significant byte first
	LittleEndian = Codec{order: LittleEndianOrder}
)

// NewCodec returns the codec for o.
func NewCodec(o ByteOrder) Codec {
	return Codec{order: o}
}

// Native returns the codec matching the host byte order.
func Native() Codec {
	return NewCodec(NativeOrder())
}

// Order returns the byte order of c
func (c Codec) Order() ByteOrder {
	return c.order
}

func (c Codec) binaryOrder() binary.AppendByteOrder {
	if c.order == LittleEndianOrder {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// appendUint writes the low w bits of u to dst
func (c Codec) appendUint(dst []byte, w BitWidth, u uint64) []byte {
	bo := c.binaryOrder()
	switch w {
	case Bits8:
		return append(dst, byte(u))
	case Bits16:
		return bo.AppendUint16(dst, uint16(u))
	case Bits32:
		return bo.AppendUint32(dst, uint32(u))
	default:
		return bo.AppendUint64(dst, u)
	}
}

// readUint decodes exactly w.Size() bytes of b
func (c Codec) readUint(w BitWidth, b []byte) uint64 {
	var bo binary.ByteOrder = binary.BigEndian
	if c.order == LittleEndianOrder {
		bo = binary.LittleEndian
	}
	switch w {
	case Bits8:
		return uint64(b[0])
	case Bits16:
		return uint64(bo.Uint16(b))
	case Bits32:
		return uint64(bo.Uint32(b))
	default:
		return bo.Uint64(b)
	}
}
