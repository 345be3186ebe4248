package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

const (
	hexPrefix = "hex:"
	strPrefix = "str:"
)

// parseArg turns one command line word into a value for the packer.
// Integers use Go literal syntax (0x, 0o, 0b, underscores) and are kept at
// arbitrary size so out of range input reaches the packer's range check.
func parseArg(s string) (interface{}, error) {
	switch {
	case strings.HasPrefix(s, hexPrefix):
		b, err := decodeHex(strings.TrimPrefix(s, hexPrefix))
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", s, err)
		}
		return b, nil
	case strings.HasPrefix(s, strPrefix):
		return strings.TrimPrefix(s, strPrefix), nil
	}

	if n, ok := new(big.Int).SetString(s, 0); ok {
		return n, nil
	}
	return s, nil
}

func parseArgs(args []string) ([]interface{}, error) {
	values := make([]interface{}, 0, len(args))
	for _, a := range args {
		v, err := parseArg(a)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// decodeHex accepts an optional 0x prefix and ignores whitespace and colons
func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':':
			return -1
		}
		return r
	}, s)
	return hex.DecodeString(s)
}
