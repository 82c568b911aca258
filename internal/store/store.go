package store

import (
	"errors"
	"fmt"

	"keybuf/internal/domain"
)

const (
	idFilename      = "identity.json.enc"
	keyringFilename = "keyring.json"
	keyringDBDir    = "keyring.db"
)

// ErrNoIdentity is returned by LoadIdentity before an identity was saved.
var ErrNoIdentity = errors.New("no identity; run init first")

// ErrIncompleteIdentity is returned by LoadIdentity when a key is absent
// from the stored identity.
var ErrIncompleteIdentity = errors.New("identity is missing a key")

// Keyring backends accepted by OpenKeyring.
const (
	BackendFile   = "file"
	BackendPebble = "pebble"
)

// OpenKeyring opens the keyring of the named backend under dir.
func OpenKeyring(backend, dir string) (domain.KeyringStore, error) {
	switch backend {
	case "", BackendFile:
		return NewKeyringFileStore(dir), nil
	case BackendPebble:
		return OpenKeyringPebbleStore(dir)
	default:
		return nil, fmt.Errorf("unknown keyring backend %q", backend)
	}
}
