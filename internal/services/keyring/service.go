package keyring

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/ksuid"

	"keybuf/internal/crypto"
	"keybuf/internal/domain"
	domaintypes "keybuf/internal/domain/types"
)

var (
	// ErrNotFound is returned when no entry matches a ref.
	ErrNotFound = errors.New("keyring entry not found")

	// ErrEmptyLabel is returned when adding a key without a label.
	ErrEmptyLabel = errors.New("keyring label must not be empty")

	// ErrLabelTaken is returned when a label already names another key.
	ErrLabelTaken = errors.New("keyring label already in use")
)

// Service adds, lists, looks up and removes keyring entries.
type Service struct {
	store domain.KeyringStore
	now   func() time.Time
}

// New returns a keyring service backed by the given store.
func New(s domain.KeyringStore) *Service {
	return &Service{store: s, now: time.Now}
}

// Add stores key under label.  Adding a key that is already present
// relabels it and keeps its ID.
func (s *Service) Add(label string, key domain.PublicKey) (domain.KeyringEntry, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return domain.KeyringEntry{}, ErrEmptyLabel
	}
	if err := crypto.ValidatePublicKey(key); err != nil {
		return domain.KeyringEntry{}, err
	}

	entries, err := s.store.ListEntries()
	if err != nil {
		return domain.KeyringEntry{}, err
	}
	for _, e := range entries {
		if e.Label == label && !e.Key.Equal(key) {
			return domain.KeyringEntry{}, fmt.Errorf("%w: %q", ErrLabelTaken, label)
		}
	}

	existing, ok, err := s.store.LoadEntry(key)
	if err != nil {
		return domain.KeyringEntry{}, err
	}
	if ok {
		existing.Label = label
		return existing, s.store.PutEntry(existing)
	}

	now := s.now().UTC()
	id, err := ksuid.NewRandomWithTime(now)
	if err != nil {
		return domain.KeyringEntry{}, err
	}
	keyID, err := crypto.KeyID(key.Slice())
	if err != nil {
		return domain.KeyringEntry{}, err
	}
	e := domain.KeyringEntry{
		ID:       domain.EntryID(id.String()),
		Label:    label,
		Key:      key,
		KeyID:    keyID,
		AddedUTC: now.Unix(),
	}
	return e, s.store.PutEntry(e)
}

// List returns every entry in ascending key order.
func (s *Service) List() ([]domain.KeyringEntry, error) {
	return s.store.ListEntries()
}

// Lookup returns the entry named by ref: an entry ID, a key ID, a label or
// the hex of the public key.
func (s *Service) Lookup(ref string) (domain.KeyringEntry, error) {
	ref = strings.TrimSpace(ref)

	if raw, err := hex.DecodeString(ref); err == nil {
		if key, err := domaintypes.PublicKeyFromSlice(raw); err == nil {
			e, ok, err := s.store.LoadEntry(key)
			if err != nil {
				return domain.KeyringEntry{}, err
			}
			if ok {
				return e, nil
			}
		}
	}

	entries, err := s.store.ListEntries()
	if err != nil {
		return domain.KeyringEntry{}, err
	}
	for _, e := range entries {
		if string(e.ID) == ref || string(e.KeyID) == ref || e.Label == ref {
			return e, nil
		}
	}
	return domain.KeyringEntry{}, fmt.Errorf("%w: %q", ErrNotFound, ref)
}

// Remove deletes the entry named by ref.
func (s *Service) Remove(ref string) error {
	e, err := s.Lookup(ref)
	if err != nil {
		return err
	}
	removed, err := s.store.DeleteEntry(e.Key)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("%w: %q", ErrNotFound, ref)
	}
	return nil
}

// Compile-time assertion that Service implements domain.KeyringService.
var _ domain.KeyringService = (*Service)(nil)
