package app

import (
	"keybuf/internal/domain"
	identitysvc "keybuf/internal/services/identity"
	keyringsvc "keybuf/internal/services/keyring"
	"keybuf/internal/store"
)

// Wire bundles all stores and services for the CLI.
type Wire struct {
	Identity domain.IdentityStore
	Keyring  domain.KeyringStore
	IDs      domain.IdentityService
	Peers    domain.KeyringService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	identityStore := store.NewIdentityFileStore(cfg.Home, cfg.Scrypt)
	keyringStore, err := store.OpenKeyring(cfg.KeyringBackend, cfg.Home)
	if err != nil {
		return nil, err
	}

	return &Wire{
		Identity: identityStore,
		Keyring:  keyringStore,
		IDs:      identitysvc.New(identityStore),
		Peers:    keyringsvc.New(keyringStore),
	}, nil
}

// Close releases the stores held by w.
func (w *Wire) Close() error {
	return w.Keyring.Close()
}
