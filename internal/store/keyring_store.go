package store

import (
	"path/filepath"
	"slices"
	"sync"

	"keybuf/internal/domain"
)

// keyringFile is the on-disk JSON document of a KeyringFileStore.
type keyringFile struct {
	Entries []domain.KeyringEntry `json:"entries"`
}

// KeyringFileStore keeps keyring entries in a single JSON document, sorted
// by public key.
type KeyringFileStore struct {
	path string
	mu   sync.Mutex
}

// NewKeyringFileStore returns a KeyringFileStore rooted at dir.
func NewKeyringFileStore(dir string) *KeyringFileStore {
	return &KeyringFileStore{path: filepath.Join(dir, keyringFilename)}
}

// load reads the entries in ascending key order.  Hand-edited files may be
// out of order, so they are sorted before any lookup.
func (s *KeyringFileStore) load() ([]domain.KeyringEntry, error) {
	var f keyringFile
	if err := readJSON(s.path, &f); err != nil {
		return nil, err
	}
	slices.SortFunc(f.Entries, func(a, b domain.KeyringEntry) int {
		return a.Key.Compare(b.Key)
	})
	return f.Entries, nil
}

func (s *KeyringFileStore) save(entries []domain.KeyringEntry) error {
	return writeJSON(s.path, keyringFile{Entries: entries}, 0o600)
}

// find returns the position of key in the sorted entries and whether it is
// present.
func find(entries []domain.KeyringEntry, key domain.PublicKey) (int, bool) {
	return slices.BinarySearchFunc(entries, key, func(e domain.KeyringEntry, k domain.PublicKey) int {
		return e.Key.Compare(k)
	})
}

// PutEntry inserts e, replacing any entry with the same key.
func (s *KeyringFileStore) PutEntry(e domain.KeyringEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	if i, ok := find(entries, e.Key); ok {
		entries[i] = e
	} else {
		entries = slices.Insert(entries, i, e)
	}
	return s.save(entries)
}

// LoadEntry returns the entry holding key.
func (s *KeyringFileStore) LoadEntry(key domain.PublicKey) (domain.KeyringEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return domain.KeyringEntry{}, false, err
	}
	i, ok := find(entries, key)
	if !ok {
		return domain.KeyringEntry{}, false, nil
	}
	return entries[i], true, nil
}

// ListEntries returns every entry in ascending key order.
func (s *KeyringFileStore) ListEntries() ([]domain.KeyringEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

// DeleteEntry removes the entry holding key and reports whether it existed.
func (s *KeyringFileStore) DeleteEntry(key domain.PublicKey) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return false, err
	}
	i, ok := find(entries, key)
	if !ok {
		return false, nil
	}
	return true, s.save(slices.Delete(entries, i, i+1))
}

// Close is a no-op; every operation writes through.
func (s *KeyringFileStore) Close() error { return nil }

var _ domain.KeyringStore = (*KeyringFileStore)(nil)
