// Package buffertest provides round-trip assertions for generated buffer
// types.  It is meant to be imported from _test.go files only.
package buffertest

import (
	"bytes"
	"encoding"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// RoundTripJSON marshals start to JSON, unmarshals the result into a fresh T
// and requires it to equal start.
func RoundTripJSON[T any](t testing.TB, start T) {
	t.Helper()

	encoded, err := json.Marshal(start)
	require.NoError(t, err)

	var decoded T
	require.NoError(t, json.Unmarshal(encoded, &decoded), "decoding %s", encoded)
	require.Equal(t, start, decoded)
}

// RoundTripYAML is RoundTripJSON for YAML.
func RoundTripYAML[T any](t testing.TB, start T) {
	t.Helper()

	encoded, err := yaml.Marshal(start)
	require.NoError(t, err)

	var decoded T
	require.NoError(t, yaml.Unmarshal(encoded, &decoded), "decoding %s", encoded)
	require.Equal(t, start, decoded)
}

// binaryBuffer is satisfied by every buffer type generated with the binary
// codec.
type binaryBuffer interface {
	encoding.BinaryMarshaler
	EncodeTo(w io.Writer) error
}

// binaryDecoder is satisfied by the pointer of a binaryBuffer.
type binaryDecoder[T any] interface {
	*T
	encoding.BinaryUnmarshaler
	DecodeFrom(r io.Reader) error
}

// RoundTripBinary pushes start through MarshalBinary/UnmarshalBinary and
// through the streaming EncodeTo/DecodeFrom pair, requiring both to agree.
func RoundTripBinary[T binaryBuffer, PT binaryDecoder[T]](t testing.TB, start T) {
	t.Helper()

	encoded, err := start.MarshalBinary()
	require.NoError(t, err)

	var decoded T
	require.NoError(t, PT(&decoded).UnmarshalBinary(encoded))
	require.Equal(t, start, decoded)

	var stream bytes.Buffer
	require.NoError(t, start.EncodeTo(&stream))
	require.Equal(t, encoded, stream.Bytes())

	var streamed T
	require.NoError(t, PT(&streamed).DecodeFrom(&stream))
	require.Equal(t, start, streamed)
	require.Zero(t, stream.Len(), "DecodeFrom left unread bytes")
}
