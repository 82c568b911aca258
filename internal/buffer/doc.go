// Package buffer is the runtime half of the fixed-size buffer bundle.
//
// Named array types such as
//
//	type PublicKey [33]byte
//
// get their methods from bufgen (see cmd/bufgen). The generated methods are
// thin: anything beyond a one-line array operation is delegated to the
// helpers in this package so that every buffer type shares one
// implementation of formatting, length checking and decoding.
//
// # Capabilities
//
//   - Debug formatting in pretty (TypeName(hex)) or raw (hex) form
//   - A length-prefixed binary codec (uvarint length || bytes)
//   - Strict JSON and YAML sequence forms that reject short and long input
//   - Scoped raw-pointer borrowing for native interop
//
// # Errors
//
// Length mismatches are reported as an Error wrapping ErrInvalidLength.
// Index holds the position at which the mismatch was detected. For a short
// sequence that is the index of the first missing element. For a long
// sequence it is the fixed length plus one.
// Out-of-range indexing is never reported as an error. It panics like any
// Go array access.
package buffer
