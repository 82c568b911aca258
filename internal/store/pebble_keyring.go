package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/cockroachdb/pebble"

	"keybuf/internal/domain"
)

// KeyringPebbleStore keeps keyring entries in a pebble database.
//
// Keys are the binary encoding of the entry's public key.  The length
// prefix is the same for every key, so pebble's byte order is the order of
// PublicKey.Compare.
type KeyringPebbleStore struct {
	db *pebble.DB
}

// OpenKeyringPebbleStore opens (creating if needed) the keyring database
// under dir.
func OpenKeyringPebbleStore(dir string) (*KeyringPebbleStore, error) {
	db, err := pebble.Open(filepath.Join(dir, keyringDBDir), &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &KeyringPebbleStore{db: db}, nil
}

func entryKey(key domain.PublicKey) ([]byte, error) {
	return key.MarshalBinary()
}

// PutEntry inserts e, replacing any entry with the same key.
func (s *KeyringPebbleStore) PutEntry(e domain.KeyringEntry) error {
	k, err := entryKey(e.Key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return s.db.Set(k, v, pebble.Sync)
}

// LoadEntry returns the entry holding key.
func (s *KeyringPebbleStore) LoadEntry(key domain.PublicKey) (domain.KeyringEntry, bool, error) {
	k, err := entryKey(key)
	if err != nil {
		return domain.KeyringEntry{}, false, err
	}
	v, closer, err := s.db.Get(k)
	if errors.Is(err, pebble.ErrNotFound) {
		return domain.KeyringEntry{}, false, nil
	}
	if err != nil {
		return domain.KeyringEntry{}, false, err
	}
	defer closer.Close()

	var e domain.KeyringEntry
	if err := json.Unmarshal(v, &e); err != nil {
		return domain.KeyringEntry{}, false, err
	}
	return e, true, nil
}

// ListEntries returns every entry in ascending key order.
func (s *KeyringPebbleStore) ListEntries() ([]domain.KeyringEntry, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, err
	}

	var out []domain.KeyringEntry
	for iter.First(); iter.Valid(); iter.Next() {
		var key domain.PublicKey
		if err := key.UnmarshalBinary(iter.Key()); err != nil {
			_ = iter.Close()
			return nil, fmt.Errorf("keyring key %x: %w", iter.Key(), err)
		}
		var e domain.KeyringEntry
		if err := json.Unmarshal(iter.Value(), &e); err != nil {
			_ = iter.Close()
			return nil, err
		}
		if !e.Key.Equal(key) {
			_ = iter.Close()
			return nil, fmt.Errorf("keyring entry %s stored under %s", e.Key, key)
		}
		out = append(out, e)
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteEntry removes the entry holding key and reports whether it existed.
func (s *KeyringPebbleStore) DeleteEntry(key domain.PublicKey) (bool, error) {
	k, err := entryKey(key)
	if err != nil {
		return false, err
	}
	_, closer, err := s.db.Get(k)
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	_ = closer.Close()
	return true, s.db.Delete(k, pebble.Sync)
}

// Close closes the database.
func (s *KeyringPebbleStore) Close() error {
	return s.db.Close()
}

var _ domain.KeyringStore = (*KeyringPebbleStore)(nil)
