package buffer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// MarshalJSONSeq renders b as a JSON array of integers in storage order.
// This is the same form encoding/json uses for plain byte arrays.
func MarshalJSONSeq(b []byte) []byte {
	out := make([]byte, 0, 2+4*len(b))
	out = append(out, '[')
	for i, c := range b {
		if i > 0 {
			out = append(out, ',')
		}
		out = strconv.AppendUint(out, uint64(c), 10)
	}
	return append(out, ']')
}

// IsJSONNull reports whether data is the JSON literal null.  Generated
// UnmarshalJSON methods treat null as a no-op, following encoding/json.
func IsJSONNull(data []byte) bool {
	return string(bytes.TrimSpace(data)) == "null"
}

// UnmarshalJSONSeq decodes a JSON array of exactly len(dst) integers into
// dst.
//
// encoding/json silently zero-fills short arrays and drops extra elements
// when decoding into a Go array.  This decoder does neither: a short array
// fails at the index of the first missing element and a long one fails at
// len(dst)+1.  dst is written element by element, so callers decode into a
// scratch value and only keep it on success.
func UnmarshalJSONSeq(dst, data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		desc := fmt.Sprintf("invalid type %v, expected a sequence of %d "+
			"elements", tok, len(dst))
		return makeError(ErrNotSequence, 0, desc)
	}

	for i := range dst {
		if !dec.More() {
			return lengthError(i, len(dst))
		}
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		v, err := jsonElement(tok, i)
		if err != nil {
			return err
		}
		dst[i] = v
	}
	if dec.More() {
		return lengthError(len(dst)+1, len(dst))
	}

	// Consume the closing bracket.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// jsonElement converts a decoded token into a byte.
func jsonElement(tok json.Token, i int) (byte, error) {
	num, ok := tok.(json.Number)
	if !ok {
		desc := fmt.Sprintf("invalid element %v at index %d, expected an "+
			"integer in 0..255", tok, i)
		return 0, makeError(ErrInvalidElement, i, desc)
	}
	v, err := strconv.ParseUint(num.String(), 10, 8)
	if err != nil {
		desc := fmt.Sprintf("invalid element %s at index %d, expected an "+
			"integer in 0..255", num, i)
		return 0, makeError(ErrInvalidElement, i, desc)
	}
	return byte(v), nil
}
