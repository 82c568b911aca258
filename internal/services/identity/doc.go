// Package identity manages creation, encryption and loading of the local identity.
//
// It enforces passphrase policy, generates X25519, Ed25519, secp256k1 and
// Dilithium mode 3 key pairs, and persists them via the domain.IdentityStore.
package identity
