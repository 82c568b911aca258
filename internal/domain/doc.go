// Package domain defines the key material and contracts shared across
// keybuf.  It contains plain types (fixed-size buffers, identities, keyring
// entries) and interfaces only.
package domain
