// Package store provides on-disk persistence for keybuf's key material.
//
// It contains concrete implementations of the domain storage interfaces.
// All methods are concurrency-safe via internal locking. Stored files
// typically live under the user's configured home directory.
//
// The package includes stores for:
//   - Identity keys, encrypted under a passphrase (IdentityFileStore)
//   - Peer public keys as a JSON document (KeyringFileStore)
//   - Peer public keys in a pebble database (KeyringPebbleStore)
package store
