package packing

import (
	"errors"
	"fmt"
)

var (
	// ErrRange matches every *RangeError via errors.Is
	ErrRange = errors.New("value out of range")

	// ErrType matches every *TypeError via errors.Is
	ErrType = errors.New("unsupported type")
)

// RangeError reports a value or length outside the domain of an operation.
type RangeError struct {
	Msg string
}

func (e *RangeError) Error() string { return e.Msg }

func (e *RangeError) Is(target error) bool { return target == ErrRange }

// TypeError reports a value whose shape the packer or unpacker does not accept.
type TypeError struct {
	Msg string
}

func (e *TypeError) Error() string { return e.Msg }

func (e *TypeError) Is(target error) bool { return target == ErrType }

func errNumberRange(bits BitWidth, number interface{}) error {
	return &RangeError{Msg: fmt.Sprintf("Number must be positive and below 2**%d, but number == %v", bits, number)}
}

func errLength(size int) error {
	return &RangeError{Msg: fmt.Sprintf("Argument must be of length %d", size)}
}

func errDivisible(size int) error {
	return &RangeError{Msg: fmt.Sprintf("Argument must be divisible into groups of %d bytes", size)}
}

func errDepth() error {
	return &RangeError{Msg: fmt.Sprintf("Nesting depth exceeds %d", MaxDepth)}
}

func errCannotPack(v interface{}) error {
	return &TypeError{Msg: fmt.Sprintf("Cannot pack value %v of type %T", v, v)}
}

var errNotBytes = &TypeError{Msg: "Argument must be a bytestring"}
