package packing

import (
	"encoding"
	"fmt"
	"iter"
	"math/big"
	"reflect"
	"slices"
)

// MaxDepth is the deepest sequence nesting a single Pack call accepts. A
// slice that contains itself hits this limit instead of looping forever.
const MaxDepth = 1024

// sequence is a PackValue whose elements are packed one after another
type sequence interface {
	PackValue
	length() int
	at(i int) interface{}
}

func (s PackSeq) length() int { return len(s) }

func (s PackSeq) at(i int) interface{} { return s[i] }

// reflectSeq walks any slice or array kind without copying it into a PackSeq
type reflectSeq struct {
	v reflect.Value
}

func (reflectSeq) packValue() {}

func (s reflectSeq) length() int { return s.v.Len() }

func (s reflectSeq) at(i int) interface{} { return s.v.Index(i).Interface() }

// classify maps v onto one of the PackValue shapes. The checks run in a fixed
// priority: integers, raw bytes, text, sequences. Integers are range checked
// against w here, while the caller's original value is still at hand for the
// error message.
func classify(w BitWidth, v interface{}) (PackValue, error) {
	// Fast path for the common concrete types
	switch x := v.(type) {
	case PackUint:
		return checkUint(w, uint64(x))
	case PackBytes, PackString, PackSeq:
		return x.(PackValue), nil
	case uint8:
		return checkUint(w, uint64(x))
	case uint16:
		return checkUint(w, uint64(x))
	case uint32:
		return checkUint(w, uint64(x))
	case uint64:
		return checkUint(w, x)
	case uint:
		return checkUint(w, uint64(x))
	case int:
		return checkInt(w, int64(x))
	case int64:
		return checkInt(w, x)
	case *big.Int:
		if x == nil {
			return nil, errCannotPack(v)
		}
		return checkBig(w, x)
	case big.Int:
		return checkBig(w, &x)
	case []byte:
		return PackBytes(x), nil
	case string:
		return PackString(x), nil
	case []interface{}:
		return PackSeq(x), nil
	case iter.Seq[interface{}]:
		return PackSeq(slices.Collect(x)), nil
	case func(func(interface{}) bool):
		return PackSeq(slices.Collect(iter.Seq[interface{}](x))), nil
	}

	// Everything else goes by its underlying kind
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, errCannotPack(v)
	}

	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return checkUint(w, rv.Uint())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return checkInt(w, rv.Int())
	}

	// A nil pointer has nothing to marshal, even if its type could
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, errCannotPack(v)
	}

	// Already packed sub-structures are raw bytes
	if m, ok := v.(encoding.BinaryMarshaler); ok {
		b, err := m.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("marshaling %T: %w", v, err)
		}
		return PackBytes(b), nil
	}

	switch rv.Kind() {
	case reflect.Slice:
		// Named byte slices are raw bytes, not sequences of small integers
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return PackBytes(rv.Bytes()), nil
		}
		return reflectSeq{v: rv}, nil
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return PackBytes(copyByteArray(rv)), nil
		}
		return reflectSeq{v: rv}, nil
	case reflect.String:
		return PackString(rv.String()), nil
	default:
		return nil, errCannotPack(v)
	}
}

func checkUint(w BitWidth, u uint64) (PackValue, error) {
	if !w.fits(u) {
		return nil, errNumberRange(w, u)
	}
	return PackUint(u), nil
}

func checkInt(w BitWidth, i int64) (PackValue, error) {
	if i < 0 || !w.fits(uint64(i)) {
		return nil, errNumberRange(w, i)
	}
	return PackUint(uint64(i)), nil
}

func checkBig(w BitWidth, b *big.Int) (PackValue, error) {
	if b.Sign() < 0 || b.BitLen() > int(w) {
		return nil, errNumberRange(w, b)
	}
	return PackUint(b.Uint64()), nil
}

// copyByteArray copies a byte array value, which may not be addressable and
// so cannot be sliced in place
func copyByteArray(rv reflect.Value) []byte {
	b := make([]byte, rv.Len())
	for i := range b {
		b[i] = byte(rv.Index(i).Uint())
	}
	return b
}
