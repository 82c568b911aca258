package buffer

import "encoding/hex"

// Pretty renders b as name followed by the lowercase hex of every byte in
// parentheses, e.g. Foo(0aff).
func Pretty(name string, b []byte) string {
	out := make([]byte, 0, len(name)+2+hex.EncodedLen(len(b)))
	out = append(out, name...)
	out = append(out, '(')
	out = hex.AppendEncode(out, b)
	out = append(out, ')')
	return string(out)
}

// Raw renders b as bare lowercase hex, two digits per byte.
func Raw(b []byte) string {
	return hex.EncodeToString(b)
}
