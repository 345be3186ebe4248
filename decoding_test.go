package packing

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnpackFixedWidth(t *testing.T) {
	v8, err := BigEndian.Unpack8([]byte("A"))
	require.NoError(t, err)
	require.Equal(t, uint8(65), v8)

	v16, err := BigEndian.Unpack16([]byte("AB"))
	require.NoError(t, err)
	require.Equal(t, uint16(0x4142), v16)

	v16, err = LittleEndian.Unpack16([]byte("AB"))
	require.NoError(t, err)
	require.Equal(t, uint16(0x4241), v16)

	v32, err := BigEndian.Unpack32([]byte("ABCD"))
	require.NoError(t, err)
	require.Equal(t, uint32(1094861636), v32)

	v32, err = BigEndian.Unpack32([]byte{1, 0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, uint32(16777216), v32)

	v64, err := BigEndian.Unpack64([]byte("ABCDEFGH"))
	require.NoError(t, err)
	require.Equal(t, uint64(4702394921427289928), v64)

	v64, err = LittleEndian.Unpack64([]byte{1, 0, 0, 0, 0, 0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, uint64(1), v64)
}

func TestUnpackLengthMustBeExact(t *testing.T) {
	_, err := BigEndian.Unpack8(nil)
	require.EqualError(t, err, "Argument must be of length 1")

	_, err = BigEndian.Unpack16([]byte("A"))
	require.EqualError(t, err, "Argument must be of length 2")
	require.True(t, errors.Is(err, ErrRange))

	_, err = LittleEndian.Unpack32([]byte("ABCDE"))
	require.EqualError(t, err, "Argument must be of length 4")

	_, err = BigEndian.Unpack64([]byte{})
	require.EqualError(t, err, "Argument must be of length 8")
}

func TestUnpackMany(t *testing.T) {
	// Empty input is not an error
	many32, err := BigEndian.Unpack32Many([]byte{})
	require.NoError(t, err)
	require.NotNil(t, many32)
	require.Empty(t, many32)

	_, err = BigEndian.Unpack32Many([]byte("A"))
	require.EqualError(t, err, "Argument must be divisible into groups of 4 bytes")
	require.ErrorIs(t, err, ErrRange)

	many8, err := BigEndian.Unpack8Many([]byte("ABC"))
	require.NoError(t, err)
	require.Equal(t, []uint8{65, 66, 67}, many8)

	many16, err := BigEndian.Unpack16Many([]byte("ABCD"))
	require.NoError(t, err)
	require.Equal(t, []uint16{0x4142, 0x4344}, many16)

	many16, err = LittleEndian.Unpack16Many([]byte("ABCD"))
	require.NoError(t, err)
	require.Equal(t, []uint16{0x4241, 0x4443}, many16)

	_, err = LittleEndian.Unpack16Many([]byte("ABC"))
	require.EqualError(t, err, "Argument must be divisible into groups of 2 bytes")

	many64, err := BigEndian.Unpack64Many([]byte("ABCDEFGHABCDEFGH"))
	require.NoError(t, err)
	require.Equal(t, []uint64{4702394921427289928, 4702394921427289928}, many64)

	_, err = BigEndian.Unpack64Many(make([]byte, 12))
	require.EqualError(t, err, "Argument must be divisible into groups of 8 bytes")
}

func TestUnpackRejectsText(t *testing.T) {
	_, err := BigEndian.Unpack(Bits8, "A")
	require.EqualError(t, err, "Argument must be a bytestring")
	require.True(t, errors.Is(err, ErrType))

	_, err = BigEndian.Unpack(Bits16, PackString("AB"))
	require.ErrorIs(t, err, ErrType)

	_, err = BigEndian.UnpackMany(Bits8, "ABC")
	require.EqualError(t, err, "Argument must be a bytestring")

	_, err = BigEndian.UnpackMany(Bits8, []int{1, 2})
	require.ErrorIs(t, err, ErrType)

	// The type check comes before the length check
	_, err = BigEndian.Unpack(Bits64, nil)
	require.EqualError(t, err, "Argument must be a bytestring")
}

func TestUnpackDynamic(t *testing.T) {
	type raw []byte

	v, err := BigEndian.Unpack(Bits16, raw("AB"))
	require.NoError(t, err)
	require.Equal(t, uint64(0x4142), v)

	v, err = LittleEndian.Unpack(Bits32, [4]byte{1, 0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, uint64(1), v)

	_, err = BigEndian.Unpack(Bits16, PackBytes("A"))
	require.EqualError(t, err, "Argument must be of length 2")

	many, err := BigEndian.UnpackMany(Bits32, []byte("ABCDABCD"))
	require.NoError(t, err)
	require.Equal(t, []uint64{1094861636, 1094861636}, many)

	_, err = BigEndian.Unpack(BitWidth(7), []byte("A"))
	require.ErrorIs(t, err, ErrRange)
}

func TestPackUnpackRoundTrip(t *testing.T) {
	samples := map[BitWidth][]uint64{
		Bits8:  {0, 1, 0x7F, 0x80, math.MaxUint8},
		Bits16: {0, 1, 0x100, 0x8000, math.MaxUint16},
		Bits32: {0, 1, 0x10000, 0x80000000, math.MaxUint32},
		Bits64: {0, 1, 1 << 32, 1 << 63, math.MaxUint64},
	}

	for _, c := range []Codec{BigEndian, LittleEndian} {
		for w, values := range samples {
			for _, v := range values {
				t.Run(fmt.Sprintf("%s/%d/%d", c.Order(), w, v), func(t *testing.T) {
					b, err := c.Pack(w, v)
					require.NoError(t, err)
					require.Len(t, b, w.Size())

					got, err := c.Unpack(w, b)
					require.NoError(t, err)
					assert.Equal(t, v, got)
				})
			}
		}

		// Packing a sequence and unpacking many yields the same sequence
		values := []uint32{0, 1, 0xDEADBEEF, math.MaxUint32}
		b, err := c.Pack32(values)
		require.NoError(t, err)
		got, err := c.Unpack32Many(b)
		require.NoError(t, err)
		require.Equal(t, values, got)
	}
}
