package interfaces

import domaintypes "keybuf/internal/domain/types"

// IdentityService creates, retrieves, and inspects your identity keys.
type IdentityService interface {
	GenerateIdentity(passphrase string) (
		domaintypes.Identity,
		domaintypes.Fingerprint,
		error,
	)
	LoadIdentity(passphrase string) (domaintypes.Identity, error)
	FingerprintIdentity(passphrase string) (domaintypes.Fingerprint, error)
	PublicIdentity(passphrase string) (domaintypes.PublicIdentity, error)
}

// KeyringService keeps the secp256k1 public keys of your peers.
//
// A ref names an entry by its EntryID, its KeyID or its label.
type KeyringService interface {
	Add(label string, key domaintypes.PublicKey) (domaintypes.KeyringEntry, error)
	List() ([]domaintypes.KeyringEntry, error)
	Lookup(ref string) (domaintypes.KeyringEntry, error)
	Remove(ref string) error
}
