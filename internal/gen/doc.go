// Package gen renders the Go source that bufgen writes for fixed-size buffer
// types.
//
// For every named array type it emits constructors, raw-pointer accessors,
// length queries, equality, ordering, cloning, indexing and hashing.
// Depending on Options it also emits a debug formatter (pretty or raw), the
// length-prefixed binary codec, and strict JSON and YAML sequence forms.
// The emitted methods delegate to keybuf/internal/buffer.
package gen
