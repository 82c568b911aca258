package gen

import "text/template"

const fileTemplate = `// Code generated by "{{.Command}}"; DO NOT EDIT.

package {{.Package}}

import (
	"bytes"
	"hash"
	"hash/maphash"
{{- if .Codec}}
	"io"
{{- end}}
	"unsafe"

	"keybuf/internal/buffer"
{{- if .YAML}}

	"gopkg.in/yaml.v3"
{{- end}}
)
{{range .Types}}{{template "type" (typeData $ .)}}{{end}}`

const typeTemplate = `{{define "type"}}{{$t := .Spec.Name}}
// {{$t}}Len is the fixed length of {{$t}} in bytes.
const {{$t}}Len = {{.Spec.Len}}

// {{$t}}FromSlice returns a {{$t}} holding a copy of b.  It fails with
// buffer.ErrInvalidLength unless len(b) == {{$t}}Len.
func {{$t}}FromSlice(b []byte) ({{$t}}, error) {
	var t {{$t}}
	if err := buffer.Copy(t[:], b); err != nil {
		return {{$t}}{}, err
	}
	return t, nil
}

// Must{{$t}}FromSlice is like {{$t}}FromSlice but panics on a length
// mismatch.
func Must{{$t}}FromSlice(b []byte) {{$t}} {
	t, err := {{$t}}FromSlice(b)
	if err != nil {
		panic(err)
	}
	return t
}

// Ptr returns the address of the first byte of t for read-only use by
// native code.  t must outlive every use of the pointer.
func (t *{{$t}}) Ptr() *byte { return &t[0] }

// MutPtr returns the address of the first byte of t.  Writers must stay
// within {{$t}}Len bytes.
func (t *{{$t}}) MutPtr() *byte { return &t[0] }

// WithPointer calls fn with the address and length of t.  The pointer is
// only valid until fn returns.
func (t *{{$t}}) WithPointer(fn func(ptr unsafe.Pointer, n int)) {
	buffer.Borrow(t[:], fn)
}

// Len returns {{$t}}Len.
func ({{$t}}) Len() int { return {{$t}}Len }

// IsEmpty always returns false.
func ({{$t}}) IsEmpty() bool { return false }

// Slice returns the bytes of t as a []byte.
func (t {{$t}}) Slice() []byte { return t[:] }

// Bytes returns a view aliasing the storage of t.
func (t *{{$t}}) Bytes() []byte { return t[:] }

// Equal reports whether t and o hold the same bytes.
func (t {{$t}}) Equal(o {{$t}}) bool { return t == o }

// Compare orders t and o lexicographically by their bytes.
func (t {{$t}}) Compare(o {{$t}}) int { return bytes.Compare(t[:], o[:]) }

// Less reports whether t sorts before o.
func (t {{$t}}) Less(o {{$t}}) bool { return t.Compare(o) < 0 }

// Clone returns an independent copy of t.
func (t {{$t}}) Clone() {{$t}} { return t }

// At returns the byte at index i.
func (t {{$t}}) At(i int) byte { return t[i] }

// Range returns bytes lo through hi-1.
func (t {{$t}}) Range(lo, hi int) []byte { return t[lo:hi] }

// To returns the bytes before index hi.
func (t {{$t}}) To(hi int) []byte { return t[:hi] }

// From returns the bytes from index lo on.
func (t {{$t}}) From(lo int) []byte { return t[lo:] }

// Full returns every byte of t.
func (t {{$t}}) Full() []byte { return t[:] }

// Hash returns the maphash of the bytes of t under seed.
func (t {{$t}}) Hash(seed maphash.Seed) uint64 { return maphash.Bytes(seed, t[:]) }

// WriteHash feeds the bytes of t, in order, to h.
func (t {{$t}}) WriteHash(h hash.Hash) { h.Write(t[:]) }
{{- if .Opts.Pretty}}

// String returns {{$t}}(hex).
func (t {{$t}}) String() string { return buffer.Pretty("{{$t}}", t[:]) }
{{- else if .Opts.Raw}}

// String returns the bytes of t as hex.
func (t {{$t}}) String() string { return buffer.Raw(t[:]) }
{{- end}}
{{- if or .Opts.Pretty .Opts.Raw}}

// GoString returns {{$t}}(hex).
func (t {{$t}}) GoString() string { return buffer.Pretty("{{$t}}", t[:]) }
{{- end}}
{{- if .Opts.Codec}}

// MarshalBinary encodes t as uvarint({{$t}}Len) followed by its bytes.
func (t {{$t}}) MarshalBinary() ([]byte, error) {
	return buffer.AppendSeq(nil, t[:]), nil
}

// UnmarshalBinary decodes the MarshalBinary form.  It rejects any other
// length and any trailing data, leaving t unchanged on error.
func (t *{{$t}}) UnmarshalBinary(data []byte) error {
	var v {{$t}}
	if err := buffer.DecodeSeq(v[:], data); err != nil {
		return err
	}
	*t = v
	return nil
}

// EncodeTo writes the MarshalBinary form of t to w.
func (t {{$t}}) EncodeTo(w io.Writer) error { return buffer.WriteSeq(w, t[:]) }

// DecodeFrom reads one MarshalBinary form from r, leaving t unchanged on
// error.
func (t *{{$t}}) DecodeFrom(r io.Reader) error {
	var v {{$t}}
	if err := buffer.ReadSeq(r, v[:]); err != nil {
		return err
	}
	*t = v
	return nil
}
{{- end}}
{{- if .Opts.JSON}}

// MarshalJSON encodes t as an array of {{$t}}Len integers.
func (t {{$t}}) MarshalJSON() ([]byte, error) { return buffer.MarshalJSONSeq(t[:]), nil }

// UnmarshalJSON decodes an array of exactly {{$t}}Len integers, leaving t
// unchanged on error.
func (t *{{$t}}) UnmarshalJSON(data []byte) error {
	if buffer.IsJSONNull(data) {
		return nil
	}
	var v {{$t}}
	if err := buffer.UnmarshalJSONSeq(v[:], data); err != nil {
		return err
	}
	*t = v
	return nil
}
{{- end}}
{{- if .Opts.YAML}}

// MarshalYAML encodes t as a flow sequence of {{$t}}Len integers.
func (t {{$t}}) MarshalYAML() (interface{}, error) { return buffer.MarshalYAMLSeq(t[:]), nil }

// UnmarshalYAML decodes a sequence of exactly {{$t}}Len integers, leaving t
// unchanged on error.
func (t *{{$t}}) UnmarshalYAML(value *yaml.Node) error {
	var v {{$t}}
	if err := buffer.UnmarshalYAMLSeq(v[:], value); err != nil {
		return err
	}
	*t = v
	return nil
}
{{- end}}
{{end}}`

// typeArgs is the dot value of the "type" template.
type typeArgs struct {
	Opts Options
	Spec TypeSpec
}

var fileTmpl = template.Must(template.New("file").
	Funcs(template.FuncMap{
		"typeData": func(o Options, s TypeSpec) typeArgs {
			return typeArgs{Opts: o, Spec: s}
		},
	}).
	Parse(fileTemplate + typeTemplate))
