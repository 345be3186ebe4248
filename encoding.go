package packing

// frame tracks progress through one sequence on the pack stack
type frame struct {
	seq  sequence
	next int
}

// Pack flattens v into bytes. Integers become w.Size() bytes in c's byte
// order, byte slices and strings are copied verbatim, and sequences are
// packed element by element and concatenated. The first invalid element
// aborts the call and no output is returned.
func (c Codec) Pack(w BitWidth, v interface{}) ([]byte, error) {
	if err := checkWidth(w); err != nil {
		return nil, err
	}

	out := make([]byte, 0, w.Size())
	stack := make([]frame, 0, 8)
	pending := v

	for {
		// Classify and write the pending value
		pv, err := classify(w, pending)
		if err != nil {
			return nil, err
		}

		switch x := pv.(type) {
		case PackUint:
			out = c.appendUint(out, w, uint64(x))
		case PackBytes:
			out = append(out, x...)
		case PackString:
			out = append(out, x...)
		case sequence:
			if len(stack) >= MaxDepth {
				return nil, errDepth()
			}
			stack = append(stack, frame{seq: x})
		}

		// Find the next element, popping every exhausted sequence
		for {
			if len(stack) == 0 {
				return out, nil
			}
			top := &stack[len(stack)-1]
			if top.next < top.seq.length() {
				pending = top.seq.at(top.next)
				top.next++
				break
			}
			stack = stack[:len(stack)-1]
		}
	}
}

// Pack8 packs v with 8-bit integers.
func (c Codec) Pack8(v interface{}) ([]byte, error) { return c.Pack(Bits8, v) }

// Pack16 packs v with 16-bit integers.
func (c Codec) Pack16(v interface{}) ([]byte, error) { return c.Pack(Bits16, v) }

// Pack32 packs v with 32-bit integers.
func (c Codec) Pack32(v interface{}) ([]byte, error) { return c.Pack(Bits32, v) }

// Pack64 packs v with 64-bit integers.
func (c Codec) Pack64(v interface{}) ([]byte, error) { return c.Pack(Bits64, v) }

// MustPack is like Pack but panics on error. It is meant for values that are
// known to be valid, such as literals.
func (c Codec) MustPack(w BitWidth, v interface{}) []byte {
	b, err := c.Pack(w, v)
	if err != nil {
		panic(err)
	}
	return b
}
