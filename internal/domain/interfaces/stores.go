package interfaces

import domaintypes "keybuf/internal/domain/types"

// IdentityStore persists your long-term identity keys.
type IdentityStore interface {
	SaveIdentity(passphrase string, id domaintypes.Identity) error
	LoadIdentity(passphrase string) (domaintypes.Identity, error)
}

// KeyringStore persists keyring entries ordered by public key.
type KeyringStore interface {
	// PutEntry inserts or replaces the entry holding e.Key.
	PutEntry(e domaintypes.KeyringEntry) error
	LoadEntry(key domaintypes.PublicKey) (domaintypes.KeyringEntry, bool, error)
	// ListEntries returns every entry in ascending key order.
	ListEntries() ([]domaintypes.KeyringEntry, error)
	DeleteEntry(key domaintypes.PublicKey) (bool, error)
	Close() error
}
