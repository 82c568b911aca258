package buffer_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"hash/maphash"
	"testing"
	"testing/quick"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"keybuf/internal/buffer"
	"keybuf/internal/buffer/buffertest"
)

var sample = Sample{0x00, 0x01, 0xab, 0xff}

func TestSampleScenario(t *testing.T) {
	assert.Equal(t, "Sample(0001abff)", sample.String())
	assert.Equal(t, "Sample(0001abff)", fmt.Sprint(sample))
	assert.Equal(t, "Sample(0001abff)", fmt.Sprintf("%#v", sample))
	assert.Equal(t, "0001abff", RawSample(sample).String())
	assert.Equal(t, "RawSample(0001abff)", fmt.Sprintf("%#v", RawSample(sample)))
	assert.Equal(t, 4, sample.Len())
	assert.Equal(t, SampleLen, sample.Len())
	assert.False(t, sample.IsEmpty())
	assert.Equal(t, []byte{0x01, 0xab}, sample.Range(1, 3))
}

func TestFromSlice(t *testing.T) {
	b := []byte{0x00, 0x01, 0xab, 0xff}
	got, err := SampleFromSlice(b)
	require.NoError(t, err)
	assert.Equal(t, sample, got)
	assert.Equal(t, b, got.Slice())

	// The buffer must not alias its source.
	b[0] = 0x99
	assert.Equal(t, byte(0x00), got[0])

	tests := []struct {
		in        []byte
		wantIndex int
	}{
		{nil, 0},
		{[]byte{1, 2, 3}, 3},
		{[]byte{1, 2, 3, 4, 5}, 5},
		{make([]byte, 64), 5},
	}
	for _, test := range tests {
		_, err := SampleFromSlice(test.in)
		require.Error(t, err)
		assert.True(t, errors.Is(err, buffer.ErrInvalidLength))
		var berr buffer.Error
		require.True(t, errors.As(err, &berr))
		assert.Equal(t, test.wantIndex, berr.Index, "input len %d", len(test.in))
	}

	assert.Panics(t, func() { MustSampleFromSlice([]byte{1}) })
	assert.NotPanics(t, func() { MustSampleFromSlice(make([]byte, SampleLen)) })
}

func TestSliceRoundTripProperty(t *testing.T) {
	f := func(b [4]byte) bool {
		s, err := SampleFromSlice(b[:])
		return err == nil && bytes.Equal(s.Slice(), b[:]) && bytes.Equal(s.Full(), b[:])
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestCloneDoesNotAlias(t *testing.T) {
	f := func(x Sample, i uint8, flip byte) bool {
		idx := int(i) % SampleLen
		c := x.Clone()
		if c != x || !c.Equal(x) {
			return false
		}
		orig := x[idx]
		c[idx] ^= flip | 1
		return x[idx] == orig && c[idx] != orig
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestViewsAliasing(t *testing.T) {
	s := sample

	// Slice views a copy.
	view := s.Slice()
	view[0] = 0x42
	assert.Equal(t, byte(0x00), s[0])

	// Bytes views the storage itself.
	alias := s.Bytes()
	alias[0] = 0x42
	assert.Equal(t, byte(0x42), s[0])
}

func TestEqualityAndOrdering(t *testing.T) {
	f := func(x, y Sample) bool {
		cmp := bytes.Compare(x[:], y[:])
		return x.Equal(y) == (cmp == 0) &&
			x.Compare(y) == cmp &&
			x.Less(y) == (cmp < 0) &&
			y.Compare(x) == -cmp
	}
	require.NoError(t, quick.Check(f, nil))

	a := Sample{0, 0, 0, 1}
	b := Sample{0, 0, 1, 0}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.Equal(t, 0, a.Compare(a.Clone()))
	assert.True(t, a.Equal(a))
}

func TestHashConsistentWithEqual(t *testing.T) {
	seed := maphash.MakeSeed()
	f := func(x Sample) bool {
		y := x.Clone()
		return x.Hash(seed) == y.Hash(seed)
	}
	require.NoError(t, quick.Check(f, nil))

	h := sha256.New()
	sample.WriteHash(h)
	want := sha256.Sum256(sample[:])
	assert.Equal(t, want[:], h.Sum(nil))

	// Buffers work as map keys directly.
	seen := map[Sample]int{sample: 1}
	assert.Equal(t, 1, seen[sample.Clone()])
}

func TestIndexing(t *testing.T) {
	s := sample
	assert.Equal(t, byte(0xab), s.At(2))
	assert.Equal(t, []byte{0x00, 0x01}, s.To(2))
	assert.Equal(t, []byte{0xab, 0xff}, s.From(2))
	assert.Equal(t, s[:], s.Range(0, SampleLen))
	assert.Equal(t, s[:], s.Full())
	assert.Empty(t, s.From(SampleLen))

	end := SampleLen
	assert.Panics(t, func() { s.At(end) })
	assert.Panics(t, func() { s.At(-1) })
	assert.Panics(t, func() { s.Range(0, end+1) })
	assert.Panics(t, func() { s.Range(3, 2) })
	assert.Panics(t, func() { s.To(end + 1) })
	assert.Panics(t, func() { s.From(end + 1) })
}

func TestRawPointers(t *testing.T) {
	s := sample
	assert.Equal(t, s[:], unsafe.Slice(s.Ptr(), s.Len()))

	*s.MutPtr() = 0x42
	assert.Equal(t, byte(0x42), s[0])

	var gotLen int
	var got []byte
	s.WithPointer(func(ptr unsafe.Pointer, n int) {
		gotLen = n
		got = append(got, unsafe.Slice((*byte)(ptr), n)...)
		*(*byte)(ptr) = 0x07
	})
	assert.Equal(t, SampleLen, gotLen)
	assert.Equal(t, []byte{0x42, 0x01, 0xab, 0xff}, got)
	assert.Equal(t, byte(0x07), s[0])
}

func TestJSON(t *testing.T) {
	encoded, err := json.Marshal(sample)
	require.NoError(t, err)
	assert.Equal(t, "[0,1,171,255]", string(encoded))

	buffertest.RoundTripJSON(t, sample)
	buffertest.RoundTripJSON(t, RawSample{9, 8, 7, 6})
	f := func(x Wide) bool {
		buffertest.RoundTripJSON(t, x)
		return true
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 20}))

	// Embedded in a struct, through a pointer too.
	type holder struct {
		Key  Sample  `json:"key"`
		Opt  *Sample `json:"opt,omitempty"`
		Note string  `json:"note"`
	}
	buffertest.RoundTripJSON(t, holder{Key: sample, Opt: &Sample{1, 2, 3, 4}, Note: "x"})
}

func TestJSONStrictLength(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantKind  buffer.ErrorKind
		wantIndex int
	}{
		{"empty", `[]`, buffer.ErrInvalidLength, 0},
		{"three of four", `[0,1,2]`, buffer.ErrInvalidLength, 3},
		{"five of four", `[0,1,2,3,4]`, buffer.ErrInvalidLength, 5},
		{"many", `[0,1,2,3,4,5,6,7]`, buffer.ErrInvalidLength, 5},
		{"too large", `[0,1,2,256]`, buffer.ErrInvalidElement, 3},
		{"negative", `[0,-1,2,3]`, buffer.ErrInvalidElement, 1},
		{"fraction", `[0,1.5,2,3]`, buffer.ErrInvalidElement, 1},
		{"string element", `["a",1,2,3]`, buffer.ErrInvalidElement, 0},
		{"nested", `[[0],1,2,3]`, buffer.ErrInvalidElement, 0},
		{"object", `{"a":1}`, buffer.ErrNotSequence, 0},
		{"string", `"00010203"`, buffer.ErrNotSequence, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			orig := Sample{9, 9, 9, 9}
			s := orig
			err := json.Unmarshal([]byte(test.in), &s)
			require.Error(t, err)
			assert.True(t, errors.Is(err, test.wantKind), "got %v", err)

			var berr buffer.Error
			require.True(t, errors.As(err, &berr))
			assert.Equal(t, test.wantIndex, berr.Index)

			// Nothing partially decoded escapes.
			assert.Equal(t, orig, s)
		})
	}

	var s Sample
	err := json.Unmarshal([]byte(`[0,1,2]`), &s)
	assert.EqualError(t, err, "invalid length 3, expected a sequence of 4 elements")
	err = json.Unmarshal([]byte(`[0,1,2,3,4]`), &s)
	assert.EqualError(t, err, "invalid length 5, expected a sequence of 4 elements")
}

func TestJSONNullIsNoop(t *testing.T) {
	s := sample
	require.NoError(t, json.Unmarshal([]byte(`null`), &s))
	assert.Equal(t, sample, s)

	var p *Sample
	require.NoError(t, json.Unmarshal([]byte(`null`), &p))
	assert.Nil(t, p)
}

func TestYAML(t *testing.T) {
	encoded, err := yaml.Marshal(sample)
	require.NoError(t, err)
	assert.Equal(t, "[0, 1, 171, 255]\n", string(encoded))

	buffertest.RoundTripYAML(t, sample)
	buffertest.RoundTripYAML(t, RawSample{9, 8, 7, 6})

	type holder struct {
		Key Sample `yaml:"key"`
	}
	encoded, err = yaml.Marshal(holder{Key: sample})
	require.NoError(t, err)
	assert.Equal(t, "key: [0, 1, 171, 255]\n", string(encoded))
	buffertest.RoundTripYAML(t, holder{Key: sample})

	// Block sequences decode too.
	var s Sample
	require.NoError(t, yaml.Unmarshal([]byte("- 0\n- 1\n- 171\n- 255\n"), &s))
	assert.Equal(t, sample, s)
}

func TestYAMLStrictLength(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantKind  buffer.ErrorKind
		wantIndex int
	}{
		{"three of four", `[0, 1, 2]`, buffer.ErrInvalidLength, 3},
		{"five of four", `[0, 1, 2, 3, 4]`, buffer.ErrInvalidLength, 5},
		{"too large", `[0, 1, 2, 256]`, buffer.ErrInvalidElement, 3},
		{"negative", `[0, -1, 2, 3]`, buffer.ErrInvalidElement, 1},
		{"word", `[0, one, 2, 3]`, buffer.ErrInvalidElement, 1},
		{"mapping", `{a: 1}`, buffer.ErrNotSequence, 0},
		{"scalar", `7`, buffer.ErrNotSequence, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			orig := Sample{9, 9, 9, 9}
			s := orig
			err := yaml.Unmarshal([]byte(test.in), &s)
			require.Error(t, err)
			assert.True(t, errors.Is(err, test.wantKind), "got %v", err)

			var berr buffer.Error
			require.True(t, errors.As(err, &berr))
			assert.Equal(t, test.wantIndex, berr.Index)
			assert.Equal(t, orig, s)
		})
	}
}

func TestBinaryCodec(t *testing.T) {
	encoded, err := sample.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 0x00, 0x01, 0xab, 0xff}, encoded)

	buffertest.RoundTripBinary(t, sample)
	f := func(x Wide) bool {
		buffertest.RoundTripBinary(t, x)
		return true
	}
	require.NoError(t, quick.Check(f, &quick.Config{MaxCount: 20}))

	var w Wide
	wideEncoded, err := w.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xc8, 0x01}, wideEncoded[:2])
	assert.Len(t, wideEncoded, WideLen+2)
}

func TestBinaryCodecStrictLength(t *testing.T) {
	tests := []struct {
		name      string
		in        []byte
		wantKind  buffer.ErrorKind
		wantIndex int
	}{
		{"empty", nil, buffer.ErrMalformedPrefix, 0},
		{"truncated prefix", []byte{0x80}, buffer.ErrMalformedPrefix, 0},
		{"declares three", []byte{3, 0, 1, 2}, buffer.ErrInvalidLength, 3},
		{"declares five", []byte{5, 0, 1, 2, 3, 4}, buffer.ErrInvalidLength, 5},
		{"short payload", []byte{4, 0, 1, 2}, buffer.ErrInvalidLength, 3},
		{"trailing data", []byte{4, 0, 1, 2, 3, 9}, buffer.ErrTrailingData, 4},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			orig := Sample{9, 9, 9, 9}
			s := orig
			err := s.UnmarshalBinary(test.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, test.wantKind), "got %v", err)

			var berr buffer.Error
			require.True(t, errors.As(err, &berr))
			assert.Equal(t, test.wantIndex, berr.Index)
			assert.Equal(t, orig, s)
		})
	}
}

func TestBinaryStream(t *testing.T) {
	var stream bytes.Buffer
	a, b := sample, Sample{1, 2, 3, 4}
	require.NoError(t, a.EncodeTo(&stream))
	require.NoError(t, b.EncodeTo(&stream))

	var gotA, gotB Sample
	require.NoError(t, gotA.DecodeFrom(&stream))
	require.NoError(t, gotB.DecodeFrom(&stream))
	assert.Equal(t, a, gotA)
	assert.Equal(t, b, gotB)

	var end Sample
	assert.Error(t, end.DecodeFrom(&stream))

	short := Sample{9, 9, 9, 9}
	err := short.DecodeFrom(bytes.NewReader([]byte{4, 1, 2}))
	assert.True(t, errors.Is(err, buffer.ErrInvalidLength))
	assert.Equal(t, Sample{9, 9, 9, 9}, short)

	// A reader that is not an io.ByteReader must not be over-read.
	r := onlyReader{bytes.NewReader([]byte{4, 1, 2, 3, 4, 0xee})}
	var s Sample
	require.NoError(t, s.DecodeFrom(r))
	assert.Equal(t, Sample{1, 2, 3, 4}, s)
	rest := make([]byte, 2)
	n, _ := r.Read(rest)
	assert.Equal(t, []byte{0xee}, rest[:n])
}

// onlyReader hides every method but Read.
type onlyReader struct {
	r *bytes.Reader
}

func (o onlyReader) Read(p []byte) (int, error) { return o.r.Read(p) }
