// Package keyring manages the secp256k1 public keys of your peers.
//
// Entries are identified three ways: a KSUID assigned when the key is
// first added, the key's content identifier (KeyID) and a unique label.
// Any of them, or the key itself in hex, can be used to look an entry up.
package keyring
