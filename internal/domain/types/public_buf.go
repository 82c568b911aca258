// Code generated by "bufgen --type=X25519Public:32,Ed25519Public:32,Ed25519Signature:64,PublicKey:33,Signature:64,RecoverableSignature:65 --debug=pretty --codec --json --yaml --output=public_buf.go"; DO NOT EDIT.

package types

import (
	"bytes"
	"hash"
	"hash/maphash"
	"io"
	"unsafe"

	"keybuf/internal/buffer"

	"gopkg.in/yaml.v3"
)

// X25519PublicLen is the fixed length of X25519Public in bytes.
const X25519PublicLen = 32

// X25519PublicFromSlice returns a X25519Public holding a copy of b.  It fails with
// buffer.ErrInvalidLength unless len(b) == X25519PublicLen.
func X25519PublicFromSlice(b []byte) (X25519Public, error) {
	var t X25519Public
	if err := buffer.Copy(t[:], b); err != nil {
		return X25519Public{}, err
	}
	return t, nil
}

// MustX25519PublicFromSlice is like X25519PublicFromSlice but panics on a length
// mismatch.
func MustX25519PublicFromSlice(b []byte) X25519Public {
	t, err := X25519PublicFromSlice(b)
	if err != nil {
		panic(err)
	}
	return t
}

// Ptr returns the address of the first byte of t for read-only use by
// native code.  t must outlive every use of the pointer.
func (t *X25519Public) Ptr() *byte { return &t[0] }

// MutPtr returns the address of the first byte of t.  Writers must stay
// within X25519PublicLen bytes.
func (t *X25519Public) MutPtr() *byte { return &t[0] }

// WithPointer calls fn with the address and length of t.  The pointer is
// only valid until fn returns.
func (t *X25519Public) WithPointer(fn func(ptr unsafe.Pointer, n int)) {
	buffer.Borrow(t[:], fn)
}

// Len returns X25519PublicLen.
func (X25519Public) Len() int { return X25519PublicLen }

// IsEmpty always returns false.
func (X25519Public) IsEmpty() bool { return false }

// Slice returns the bytes of t as a []byte.
func (t X25519Public) Slice() []byte { return t[:] }

// Bytes returns a view aliasing the storage of t.
func (t *X25519Public) Bytes() []byte { return t[:] }

// Equal reports whether t and o hold the same bytes.
func (t X25519Public) Equal(o X25519Public) bool { return t == o }

// Compare orders t and o lexicographically by their bytes.
func (t X25519Public) Compare(o X25519Public) int { return bytes.Compare(t[:], o[:]) }

// Less reports whether t sorts before o.
func (t X25519Public) Less(o X25519Public) bool { return t.Compare(o) < 0 }

// Clone returns an independent copy of t.
func (t X25519Public) Clone() X25519Public { return t }

// At returns the byte at index i.
func (t X25519Public) At(i int) byte { return t[i] }

// Range returns bytes lo through hi-1.
func (t X25519Public) Range(lo, hi int) []byte { return t[lo:hi] }

// To returns the bytes before index hi.
func (t X25519Public) To(hi int) []byte { return t[:hi] }

// From returns the bytes from index lo on.
func (t X25519Public) From(lo int) []byte { return t[lo:] }

// Full returns every byte of t.
func (t X25519Public) Full() []byte { return t[:] }

// Hash returns the maphash of the bytes of t under seed.
func (t X25519Public) Hash(seed maphash.Seed) uint64 { return maphash.Bytes(seed, t[:]) }

// WriteHash feeds the bytes of t, in order, to h.
func (t X25519Public) WriteHash(h hash.Hash) { h.Write(t[:]) }

// String returns X25519Public(hex).
func (t X25519Public) String() string { return buffer.Pretty("X25519Public", t[:]) }

// GoString returns X25519Public(hex).
func (t X25519Public) GoString() string { return buffer.Pretty("X25519Public", t[:]) }

// MarshalBinary encodes t as uvarint(X25519PublicLen) followed by its bytes.
func (t X25519Public) MarshalBinary() ([]byte, error) {
	return buffer.AppendSeq(nil, t[:]), nil
}

// UnmarshalBinary decodes the MarshalBinary form.  It rejects any other
// length and any trailing data, leaving t unchanged on error.
func (t *X25519Public) UnmarshalBinary(data []byte) error {
	var v X25519Public
	if err := buffer.DecodeSeq(v[:], data); err != nil {
		return err
	}
	*t = v
	return nil
}

// EncodeTo writes the MarshalBinary form of t to w.
func (t X25519Public) EncodeTo(w io.Writer) error { return buffer.WriteSeq(w, t[:]) }

// DecodeFrom reads one MarshalBinary form from r, leaving t unchanged on
// error.
func (t *X25519Public) DecodeFrom(r io.Reader) error {
	var v X25519Public
	if err := buffer.ReadSeq(r, v[:]); err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalJSON encodes t as an array of X25519PublicLen integers.
func (t X25519Public) MarshalJSON() ([]byte, error) { return buffer.MarshalJSONSeq(t[:]), nil }

// UnmarshalJSON decodes an array of exactly X25519PublicLen integers, leaving t
// unchanged on error.
func (t *X25519Public) UnmarshalJSON(data []byte) error {
	if buffer.IsJSONNull(data) {
		return nil
	}
	var v X25519Public
	if err := buffer.UnmarshalJSONSeq(v[:], data); err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalYAML encodes t as a flow sequence of X25519PublicLen integers.
func (t X25519Public) MarshalYAML() (interface{}, error) { return buffer.MarshalYAMLSeq(t[:]), nil }

// UnmarshalYAML decodes a sequence of exactly X25519PublicLen integers, leaving t
// unchanged on error.
func (t *X25519Public) UnmarshalYAML(value *yaml.Node) error {
	var v X25519Public
	if err := buffer.UnmarshalYAMLSeq(v[:], value); err != nil {
		return err
	}
	*t = v
	return nil
}

// Ed25519PublicLen is the fixed length of Ed25519Public in bytes.
const Ed25519PublicLen = 32

// Ed25519PublicFromSlice returns a Ed25519Public holding a copy of b.  It fails with
// buffer.ErrInvalidLength unless len(b) == Ed25519PublicLen.
func Ed25519PublicFromSlice(b []byte) (Ed25519Public, error) {
	var t Ed25519Public
	if err := buffer.Copy(t[:], b); err != nil {
		return Ed25519Public{}, err
	}
	return t, nil
}

// MustEd25519PublicFromSlice is like Ed25519PublicFromSlice but panics on a length
// mismatch.
func MustEd25519PublicFromSlice(b []byte) Ed25519Public {
	t, err := Ed25519PublicFromSlice(b)
	if err != nil {
		panic(err)
	}
	return t
}

// Ptr returns the address of the first byte of t for read-only use by
// native code.  t must outlive every use of the pointer.
func (t *Ed25519Public) Ptr() *byte { return &t[0] }

// MutPtr returns the address of the first byte of t.  Writers must stay
// within Ed25519PublicLen bytes.
func (t *Ed25519Public) MutPtr() *byte { return &t[0] }

// WithPointer calls fn with the address and length of t.  The pointer is
// only valid until fn returns.
func (t *Ed25519Public) WithPointer(fn func(ptr unsafe.Pointer, n int)) {
	buffer.Borrow(t[:], fn)
}

// Len returns Ed25519PublicLen.
func (Ed25519Public) Len() int { return Ed25519PublicLen }

// IsEmpty always returns false.
func (Ed25519Public) IsEmpty() bool { return false }

// Slice returns the bytes of t as a []byte.
func (t Ed25519Public) Slice() []byte { return t[:] }

// Bytes returns a view aliasing the storage of t.
func (t *Ed25519Public) Bytes() []byte { return t[:] }

// Equal reports whether t and o hold the same bytes.
func (t Ed25519Public) Equal(o Ed25519Public) bool { return t == o }

// Compare orders t and o lexicographically by their bytes.
func (t Ed25519Public) Compare(o Ed25519Public) int { return bytes.Compare(t[:], o[:]) }

// Less reports whether t sorts before o.
func (t Ed25519Public) Less(o Ed25519Public) bool { return t.Compare(o) < 0 }

// Clone returns an independent copy of t.
func (t Ed25519Public) Clone() Ed25519Public { return t }

// At returns the byte at index i.
func (t Ed25519Public) At(i int) byte { return t[i] }

// Range returns bytes lo through hi-1.
func (t Ed25519Public) Range(lo, hi int) []byte { return t[lo:hi] }

// To returns the bytes before index hi.
func (t Ed25519Public) To(hi int) []byte { return t[:hi] }

// From returns the bytes from index lo on.
func (t Ed25519Public) From(lo int) []byte { return t[lo:] }

// Full returns every byte of t.
func (t Ed25519Public) Full() []byte { return t[:] }

// Hash returns the maphash of the bytes of t under seed.
func (t Ed25519Public) Hash(seed maphash.Seed) uint64 { return maphash.Bytes(seed, t[:]) }

// WriteHash feeds the bytes of t, in order, to h.
func (t Ed25519Public) WriteHash(h hash.Hash) { h.Write(t[:]) }

// String returns Ed25519Public(hex).
func (t Ed25519Public) String() string { return buffer.Pretty("Ed25519Public", t[:]) }

// GoString returns Ed25519Public(hex).
func (t Ed25519Public) GoString() string { return buffer.Pretty("Ed25519Public", t[:]) }

// MarshalBinary encodes t as uvarint(Ed25519PublicLen) followed by its bytes.
func (t Ed25519Public) MarshalBinary() ([]byte, error) {
	return buffer.AppendSeq(nil, t[:]), nil
}

// UnmarshalBinary decodes the MarshalBinary form.  It rejects any other
// length and any trailing data, leaving t unchanged on error.
func (t *Ed25519Public) UnmarshalBinary(data []byte) error {
	var v Ed25519Public
	if err := buffer.DecodeSeq(v[:], data); err != nil {
		return err
	}
	*t = v
	return nil
}

// EncodeTo writes the MarshalBinary form of t to w.
func (t Ed25519Public) EncodeTo(w io.Writer) error { return buffer.WriteSeq(w, t[:]) }

// DecodeFrom reads one MarshalBinary form from r, leaving t unchanged on
// error.
func (t *Ed25519Public) DecodeFrom(r io.Reader) error {
	var v Ed25519Public
	if err := buffer.ReadSeq(r, v[:]); err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalJSON encodes t as an array of Ed25519PublicLen integers.
func (t Ed25519Public) MarshalJSON() ([]byte, error) { return buffer.MarshalJSONSeq(t[:]), nil }

// UnmarshalJSON decodes an array of exactly Ed25519PublicLen integers, leaving t
// unchanged on error.
func (t *Ed25519Public) UnmarshalJSON(data []byte) error {
	if buffer.IsJSONNull(data) {
		return nil
	}
	var v Ed25519Public
	if err := buffer.UnmarshalJSONSeq(v[:], data); err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalYAML encodes t as a flow sequence of Ed25519PublicLen integers.
func (t Ed25519Public) MarshalYAML() (interface{}, error) { return buffer.MarshalYAMLSeq(t[:]), nil }

// UnmarshalYAML decodes a sequence of exactly Ed25519PublicLen integers, leaving t
// unchanged on error.
func (t *Ed25519Public) UnmarshalYAML(value *yaml.Node) error {
	var v Ed25519Public
	if err := buffer.UnmarshalYAMLSeq(v[:], value); err != nil {
		return err
	}
	*t = v
	return nil
}

// Ed25519SignatureLen is the fixed length of Ed25519Signature in bytes.
const Ed25519SignatureLen = 64

// Ed25519SignatureFromSlice returns a Ed25519Signature holding a copy of b.  It fails with
// buffer.ErrInvalidLength unless len(b) == Ed25519SignatureLen.
func Ed25519SignatureFromSlice(b []byte) (Ed25519Signature, error) {
	var t Ed25519Signature
	if err := buffer.Copy(t[:], b); err != nil {
		return Ed25519Signature{}, err
	}
	return t, nil
}

// MustEd25519SignatureFromSlice is like Ed25519SignatureFromSlice but panics on a length
// mismatch.
func MustEd25519SignatureFromSlice(b []byte) Ed25519Signature {
	t, err := Ed25519SignatureFromSlice(b)
	if err != nil {
		panic(err)
	}
	return t
}

// Ptr returns the address of the first byte of t for read-only use by
// native code.  t must outlive every use of the pointer.
func (t *Ed25519Signature) Ptr() *byte { return &t[0] }

// MutPtr returns the address of the first byte of t.  Writers must stay
// within Ed25519SignatureLen bytes.
func (t *Ed25519Signature) MutPtr() *byte { return &t[0] }

// WithPointer calls fn with the address and length of t.  The pointer is
// only valid until fn returns.
func (t *Ed25519Signature) WithPointer(fn func(ptr unsafe.Pointer, n int)) {
	buffer.Borrow(t[:], fn)
}

// Len returns Ed25519SignatureLen.
func (Ed25519Signature) Len() int { return Ed25519SignatureLen }

// IsEmpty always returns false.
func (Ed25519Signature) IsEmpty() bool { return false }

// Slice returns the bytes of t as a []byte.
func (t Ed25519Signature) Slice() []byte { return t[:] }

// Bytes returns a view aliasing the storage of t.
func (t *Ed25519Signature) Bytes() []byte { return t[:] }

// Equal reports whether t and o hold the same bytes.
func (t Ed25519Signature) Equal(o Ed25519Signature) bool { return t == o }

// Compare orders t and o lexicographically by their bytes.
func (t Ed25519Signature) Compare(o Ed25519Signature) int { return bytes.Compare(t[:], o[:]) }

// Less reports whether t sorts before o.
func (t Ed25519Signature) Less(o Ed25519Signature) bool { return t.Compare(o) < 0 }

// Clone returns an independent copy of t.
func (t Ed25519Signature) Clone() Ed25519Signature { return t }

// At returns the byte at index i.
func (t Ed25519Signature) At(i int) byte { return t[i] }

// Range returns bytes lo through hi-1.
func (t Ed25519Signature) Range(lo, hi int) []byte { return t[lo:hi] }

// To returns the bytes before index hi.
func (t Ed25519Signature) To(hi int) []byte { return t[:hi] }

// From returns the bytes from index lo on.
func (t Ed25519Signature) From(lo int) []byte { return t[lo:] }

// Full returns every byte of t.
func (t Ed25519Signature) Full() []byte { return t[:] }

// Hash returns the maphash of the bytes of t under seed.
func (t Ed25519Signature) Hash(seed maphash.Seed) uint64 { return maphash.Bytes(seed, t[:]) }

// WriteHash feeds the bytes of t, in order, to h.
func (t Ed25519Signature) WriteHash(h hash.Hash) { h.Write(t[:]) }

// String returns Ed25519Signature(hex).
func (t Ed25519Signature) String() string { return buffer.Pretty("Ed25519Signature", t[:]) }

// GoString returns Ed25519Signature(hex).
func (t Ed25519Signature) GoString() string { return buffer.Pretty("Ed25519Signature", t[:]) }

// MarshalBinary encodes t as uvarint(Ed25519SignatureLen) followed by its bytes.
func (t Ed25519Signature) MarshalBinary() ([]byte, error) {
	return buffer.AppendSeq(nil, t[:]), nil
}

// UnmarshalBinary decodes the MarshalBinary form.  It rejects any other
// length and any trailing data, leaving t unchanged on error.
func (t *Ed25519Signature) UnmarshalBinary(data []byte) error {
	var v Ed25519Signature
	if err := buffer.DecodeSeq(v[:], data); err != nil {
		return err
	}
	*t = v
	return nil
}

// EncodeTo writes the MarshalBinary form of t to w.
func (t Ed25519Signature) EncodeTo(w io.Writer) error { return buffer.WriteSeq(w, t[:]) }

// DecodeFrom reads one MarshalBinary form from r, leaving t unchanged on
// error.
func (t *Ed25519Signature) DecodeFrom(r io.Reader) error {
	var v Ed25519Signature
	if err := buffer.ReadSeq(r, v[:]); err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalJSON encodes t as an array of Ed25519SignatureLen integers.
func (t Ed25519Signature) MarshalJSON() ([]byte, error) { return buffer.MarshalJSONSeq(t[:]), nil }

// UnmarshalJSON decodes an array of exactly Ed25519SignatureLen integers, leaving t
// unchanged on error.
func (t *Ed25519Signature) UnmarshalJSON(data []byte) error {
	if buffer.IsJSONNull(data) {
		return nil
	}
	var v Ed25519Signature
	if err := buffer.UnmarshalJSONSeq(v[:], data); err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalYAML encodes t as a flow sequence of Ed25519SignatureLen integers.
func (t Ed25519Signature) MarshalYAML() (interface{}, error) { return buffer.MarshalYAMLSeq(t[:]), nil }

// UnmarshalYAML decodes a sequence of exactly Ed25519SignatureLen integers, leaving t
// unchanged on error.
func (t *Ed25519Signature) UnmarshalYAML(value *yaml.Node) error {
	var v Ed25519Signature
	if err := buffer.UnmarshalYAMLSeq(v[:], value); err != nil {
		return err
	}
	*t = v
	return nil
}

// PublicKeyLen is the fixed length of PublicKey in bytes.
const PublicKeyLen = 33

// PublicKeyFromSlice returns a PublicKey holding a copy of b.  It fails with
// buffer.ErrInvalidLength unless len(b) == PublicKeyLen.
func PublicKeyFromSlice(b []byte) (PublicKey, error) {
	var t PublicKey
	if err := buffer.Copy(t[:], b); err != nil {
		return PublicKey{}, err
	}
	return t, nil
}

// MustPublicKeyFromSlice is like PublicKeyFromSlice but panics on a length
// mismatch.
func MustPublicKeyFromSlice(b []byte) PublicKey {
	t, err := PublicKeyFromSlice(b)
	if err != nil {
		panic(err)
	}
	return t
}

// Ptr returns the address of the first byte of t for read-only use by
// native code.  t must outlive every use of the pointer.
func (t *PublicKey) Ptr() *byte { return &t[0] }

// MutPtr returns the address of the first byte of t.  Writers must stay
// within PublicKeyLen bytes.
func (t *PublicKey) MutPtr() *byte { return &t[0] }

// WithPointer calls fn with the address and length of t.  The pointer is
// only valid until fn returns.
func (t *PublicKey) WithPointer(fn func(ptr unsafe.Pointer, n int)) {
	buffer.Borrow(t[:], fn)
}

// Len returns PublicKeyLen.
func (PublicKey) Len() int { return PublicKeyLen }

// IsEmpty always returns false.
func (PublicKey) IsEmpty() bool { return false }

// Slice returns the bytes of t as a []byte.
func (t PublicKey) Slice() []byte { return t[:] }

// Bytes returns a view aliasing the storage of t.
func (t *PublicKey) Bytes() []byte { return t[:] }

// Equal reports whether t and o hold the same bytes.
func (t PublicKey) Equal(o PublicKey) bool { return t == o }

// Compare orders t and o lexicographically by their bytes.
func (t PublicKey) Compare(o PublicKey) int { return bytes.Compare(t[:], o[:]) }

// Less reports whether t sorts before o.
func (t PublicKey) Less(o PublicKey) bool { return t.Compare(o) < 0 }

// Clone returns an independent copy of t.
func (t PublicKey) Clone() PublicKey { return t }

// At returns the byte at index i.
func (t PublicKey) At(i int) byte { return t[i] }

// Range returns bytes lo through hi-1.
func (t PublicKey) Range(lo, hi int) []byte { return t[lo:hi] }

// To returns the bytes before index hi.
func (t PublicKey) To(hi int) []byte { return t[:hi] }

// From returns the bytes from index lo on.
func (t PublicKey) From(lo int) []byte { return t[lo:] }

// Full returns every byte of t.
func (t PublicKey) Full() []byte { return t[:] }

// Hash returns the maphash of the bytes of t under seed.
func (t PublicKey) Hash(seed maphash.Seed) uint64 { return maphash.Bytes(seed, t[:]) }

// WriteHash feeds the bytes of t, in order, to h.
func (t PublicKey) WriteHash(h hash.Hash) { h.Write(t[:]) }

// String returns PublicKey(hex).
func (t PublicKey) String() string { return buffer.Pretty("PublicKey", t[:]) }

// GoString returns PublicKey(hex).
func (t PublicKey) GoString() string { return buffer.Pretty("PublicKey", t[:]) }

// MarshalBinary encodes t as uvarint(PublicKeyLen) followed by its bytes.
func (t PublicKey) MarshalBinary() ([]byte, error) {
	return buffer.AppendSeq(nil, t[:]), nil
}

// UnmarshalBinary decodes the MarshalBinary form.  It rejects any other
// length and any trailing data, leaving t unchanged on error.
func (t *PublicKey) UnmarshalBinary(data []byte) error {
	var v PublicKey
	if err := buffer.DecodeSeq(v[:], data); err != nil {
		return err
	}
	*t = v
	return nil
}

// EncodeTo writes the MarshalBinary form of t to w.
func (t PublicKey) EncodeTo(w io.Writer) error { return buffer.WriteSeq(w, t[:]) }

// DecodeFrom reads one MarshalBinary form from r, leaving t unchanged on
// error.
func (t *PublicKey) DecodeFrom(r io.Reader) error {
	var v PublicKey
	if err := buffer.ReadSeq(r, v[:]); err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalJSON encodes t as an array of PublicKeyLen integers.
func (t PublicKey) MarshalJSON() ([]byte, error) { return buffer.MarshalJSONSeq(t[:]), nil }

// UnmarshalJSON decodes an array of exactly PublicKeyLen integers, leaving t
// unchanged on error.
func (t *PublicKey) UnmarshalJSON(data []byte) error {
	if buffer.IsJSONNull(data) {
		return nil
	}
	var v PublicKey
	if err := buffer.UnmarshalJSONSeq(v[:], data); err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalYAML encodes t as a flow sequence of PublicKeyLen integers.
func (t PublicKey) MarshalYAML() (interface{}, error) { return buffer.MarshalYAMLSeq(t[:]), nil }

// UnmarshalYAML decodes a sequence of exactly PublicKeyLen integers, leaving t
// unchanged on error.
func (t *PublicKey) UnmarshalYAML(value *yaml.Node) error {
	var v PublicKey
	if err := buffer.UnmarshalYAMLSeq(v[:], value); err != nil {
		return err
	}
	*t = v
	return nil
}

// SignatureLen is the fixed length of Signature in bytes.
const SignatureLen = 64

// SignatureFromSlice returns a Signature holding a copy of b.  It fails with
// buffer.ErrInvalidLength unless len(b) == SignatureLen.
func SignatureFromSlice(b []byte) (Signature, error) {
	var t Signature
	if err := buffer.Copy(t[:], b); err != nil {
		return Signature{}, err
	}
	return t, nil
}

// MustSignatureFromSlice is like SignatureFromSlice but panics on a length
// mismatch.
func MustSignatureFromSlice(b []byte) Signature {
	t, err := SignatureFromSlice(b)
	if err != nil {
		panic(err)
	}
	return t
}

// Ptr returns the address of the first byte of t for read-only use by
// native code.  t must outlive every use of the pointer.
func (t *Signature) Ptr() *byte { return &t[0] }

// MutPtr returns the address of the first byte of t.  Writers must stay
// within SignatureLen bytes.
func (t *Signature) MutPtr() *byte { return &t[0] }

// WithPointer calls fn with the address and length of t.  The pointer is
// only valid until fn returns.
func (t *Signature) WithPointer(fn func(ptr unsafe.Pointer, n int)) {
	buffer.Borrow(t[:], fn)
}

// Len returns SignatureLen.
func (Signature) Len() int { return SignatureLen }

// IsEmpty always returns false.
func (Signature) IsEmpty() bool { return false }

// Slice returns the bytes of t as a []byte.
func (t Signature) Slice() []byte { return t[:] }

// Bytes returns a view aliasing the storage of t.
func (t *Signature) Bytes() []byte { return t[:] }

// Equal reports whether t and o hold the same bytes.
func (t Signature) Equal(o Signature) bool { return t == o }

// Compare orders t and o lexicographically by their bytes.
func (t Signature) Compare(o Signature) int { return bytes.Compare(t[:], o[:]) }

// Less reports whether t sorts before o.
func (t Signature) Less(o Signature) bool { return t.Compare(o) < 0 }

// Clone returns an independent copy of t.
func (t Signature) Clone() Signature { return t }

// At returns the byte at index i.
func (t Signature) At(i int) byte { return t[i] }

// Range returns bytes lo through hi-1.
func (t Signature) Range(lo, hi int) []byte { return t[lo:hi] }

// To returns the bytes before index hi.
func (t Signature) To(hi int) []byte { return t[:hi] }

// From returns the bytes from index lo on.
func (t Signature) From(lo int) []byte { return t[lo:] }

// Full returns every byte of t.
func (t Signature) Full() []byte { return t[:] }

// Hash returns the maphash of the bytes of t under seed.
func (t Signature) Hash(seed maphash.Seed) uint64 { return maphash.Bytes(seed, t[:]) }

// WriteHash feeds the bytes of t, in order, to h.
func (t Signature) WriteHash(h hash.Hash) { h.Write(t[:]) }

// String returns Signature(hex).
func (t Signature) String() string { return buffer.Pretty("Signature", t[:]) }

// GoString returns Signature(hex).
func (t Signature) GoString() string { return buffer.Pretty("Signature", t[:]) }

// MarshalBinary encodes t as uvarint(SignatureLen) followed by its bytes.
func (t Signature) MarshalBinary() ([]byte, error) {
	return buffer.AppendSeq(nil, t[:]), nil
}

// UnmarshalBinary decodes the MarshalBinary form.  It rejects any other
// length and any trailing data, leaving t unchanged on error.
func (t *Signature) UnmarshalBinary(data []byte) error {
	var v Signature
	if err := buffer.DecodeSeq(v[:], data); err != nil {
		return err
	}
	*t = v
	return nil
}

// EncodeTo writes the MarshalBinary form of t to w.
func (t Signature) EncodeTo(w io.Writer) error { return buffer.WriteSeq(w, t[:]) }

// DecodeFrom reads one MarshalBinary form from r, leaving t unchanged on
// error.
func (t *Signature) DecodeFrom(r io.Reader) error {
	var v Signature
	if err := buffer.ReadSeq(r, v[:]); err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalJSON encodes t as an array of SignatureLen integers.
func (t Signature) MarshalJSON() ([]byte, error) { return buffer.MarshalJSONSeq(t[:]), nil }

// UnmarshalJSON decodes an array of exactly SignatureLen integers, leaving t
// unchanged on error.
func (t *Signature) UnmarshalJSON(data []byte) error {
	if buffer.IsJSONNull(data) {
		return nil
	}
	var v Signature
	if err := buffer.UnmarshalJSONSeq(v[:], data); err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalYAML encodes t as a flow sequence of SignatureLen integers.
func (t Signature) MarshalYAML() (interface{}, error) { return buffer.MarshalYAMLSeq(t[:]), nil }

// UnmarshalYAML decodes a sequence of exactly SignatureLen integers, leaving t
// unchanged on error.
func (t *Signature) UnmarshalYAML(value *yaml.Node) error {
	var v Signature
	if err := buffer.UnmarshalYAMLSeq(v[:], value); err != nil {
		return err
	}
	*t = v
	return nil
}

// RecoverableSignatureLen is the fixed length of RecoverableSignature in bytes.
const RecoverableSignatureLen = 65

// RecoverableSignatureFromSlice returns a RecoverableSignature holding a copy of b.  It fails with
// buffer.ErrInvalidLength unless len(b) == RecoverableSignatureLen.
func RecoverableSignatureFromSlice(b []byte) (RecoverableSignature, error) {
	var t RecoverableSignature
	if err := buffer.Copy(t[:], b); err != nil {
		return RecoverableSignature{}, err
	}
	return t, nil
}

// MustRecoverableSignatureFromSlice is like RecoverableSignatureFromSlice but panics on a length
// mismatch.
func MustRecoverableSignatureFromSlice(b []byte) RecoverableSignature {
	t, err := RecoverableSignatureFromSlice(b)
	if err != nil {
		panic(err)
	}
	return t
}

// Ptr returns the address of the first byte of t for read-only use by
// native code.  t must outlive every use of the pointer.
func (t *RecoverableSignature) Ptr() *byte { return &t[0] }

// MutPtr returns the address of the first byte of t.  Writers must stay
// within RecoverableSignatureLen bytes.
func (t *RecoverableSignature) MutPtr() *byte { return &t[0] }

// WithPointer calls fn with the address and length of t.  The pointer is
// only valid until fn returns.
func (t *RecoverableSignature) WithPointer(fn func(ptr unsafe.Pointer, n int)) {
	buffer.Borrow(t[:], fn)
}

// Len returns RecoverableSignatureLen.
func (RecoverableSignature) Len() int { return RecoverableSignatureLen }

// IsEmpty always returns false.
func (RecoverableSignature) IsEmpty() bool { return false }

// Slice returns the bytes of t as a []byte.
func (t RecoverableSignature) Slice() []byte { return t[:] }

// Bytes returns a view aliasing the storage of t.
func (t *RecoverableSignature) Bytes() []byte { return t[:] }

// Equal reports whether t and o hold the same bytes.
func (t RecoverableSignature) Equal(o RecoverableSignature) bool { return t == o }

// Compare orders t and o lexicographically by their bytes.
func (t RecoverableSignature) Compare(o RecoverableSignature) int { return bytes.Compare(t[:], o[:]) }

// Less reports whether t sorts before o.
func (t RecoverableSignature) Less(o RecoverableSignature) bool { return t.Compare(o) < 0 }

// Clone returns an independent copy of t.
func (t RecoverableSignature) Clone() RecoverableSignature { return t }

// At returns the byte at index i.
func (t RecoverableSignature) At(i int) byte { return t[i] }

// Range returns bytes lo through hi-1.
func (t RecoverableSignature) Range(lo, hi int) []byte { return t[lo:hi] }

// To returns the bytes before index hi.
func (t RecoverableSignature) To(hi int) []byte { return t[:hi] }

// From returns the bytes from index lo on.
func (t RecoverableSignature) From(lo int) []byte { return t[lo:] }

// Full returns every byte of t.
func (t RecoverableSignature) Full() []byte { return t[:] }

// Hash returns the maphash of the bytes of t under seed.
func (t RecoverableSignature) Hash(seed maphash.Seed) uint64 { return maphash.Bytes(seed, t[:]) }

// WriteHash feeds the bytes of t, in order, to h.
func (t RecoverableSignature) WriteHash(h hash.Hash) { h.Write(t[:]) }

// String returns RecoverableSignature(hex).
func (t RecoverableSignature) String() string { return buffer.Pretty("RecoverableSignature", t[:]) }

// GoString returns RecoverableSignature(hex).
func (t RecoverableSignature) GoString() string { return buffer.Pretty("RecoverableSignature", t[:]) }

// MarshalBinary encodes t as uvarint(RecoverableSignatureLen) followed by its bytes.
func (t RecoverableSignature) MarshalBinary() ([]byte, error) {
	return buffer.AppendSeq(nil, t[:]), nil
}

// UnmarshalBinary decodes the MarshalBinary form.  It rejects any other
// length and any trailing data, leaving t unchanged on error.
func (t *RecoverableSignature) UnmarshalBinary(data []byte) error {
	var v RecoverableSignature
	if err := buffer.DecodeSeq(v[:], data); err != nil {
		return err
	}
	*t = v
	return nil
}

// EncodeTo writes the MarshalBinary form of t to w.
func (t RecoverableSignature) EncodeTo(w io.Writer) error { return buffer.WriteSeq(w, t[:]) }

// DecodeFrom reads one MarshalBinary form from r, leaving t unchanged on
// error.
func (t *RecoverableSignature) DecodeFrom(r io.Reader) error {
	var v RecoverableSignature
	if err := buffer.ReadSeq(r, v[:]); err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalJSON encodes t as an array of RecoverableSignatureLen integers.
func (t RecoverableSignature) MarshalJSON() ([]byte, error) { return buffer.MarshalJSONSeq(t[:]), nil }

// UnmarshalJSON decodes an array of exactly RecoverableSignatureLen integers, leaving t
// unchanged on error.
func (t *RecoverableSignature) UnmarshalJSON(data []byte) error {
	if buffer.IsJSONNull(data) {
		return nil
	}
	var v RecoverableSignature
	if err := buffer.UnmarshalJSONSeq(v[:], data); err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalYAML encodes t as a flow sequence of RecoverableSignatureLen integers.
func (t RecoverableSignature) MarshalYAML() (interface{}, error) {
	return buffer.MarshalYAMLSeq(t[:]), nil
}

// UnmarshalYAML decodes a sequence of exactly RecoverableSignatureLen integers, leaving t
// unchanged on error.
func (t *RecoverableSignature) UnmarshalYAML(value *yaml.Node) error {
	var v RecoverableSignature
	if err := buffer.UnmarshalYAMLSeq(v[:], value); err != nil {
		return err
	}
	*t = v
	return nil
}
