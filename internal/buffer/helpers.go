package buffer

// Map returns a new slice holding fn applied to every element of in, in
// order.
func Map[E, R any](in []E, fn func(E) R) []R {
	out := make([]R, len(in))
	for i, e := range in {
		out[i] = fn(e)
	}
	return out
}

// Concat returns the concatenation of the given byte views in a freshly
// allocated slice.
func Concat(views ...[]byte) []byte {
	n := 0
	for _, v := range views {
		n += len(v)
	}
	out := make([]byte, 0, n)
	for _, v := range views {
		out = append(out, v...)
	}
	return out
}
