package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"keybuf/internal/crypto"
	"keybuf/internal/domain"
)

// IdentityFileStore persists the local identity to disk.
type IdentityFileStore struct {
	dir    string
	params ScryptParams
	mu     sync.Mutex
}

// NewIdentityFileStore returns an IdentityFileStore rooted at dir that seals
// new blobs with params.
func NewIdentityFileStore(dir string, params ScryptParams) *IdentityFileStore {
	return &IdentityFileStore{dir: dir, params: params}
}

// SaveIdentity writes the encrypted identity to disk.
func (s *IdentityFileStore) SaveIdentity(passphrase string, id domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	defer crypto.Wipe(raw)

	ct, err := encrypt(passphrase, raw, s.params)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, idFilename), ct, 0o600)
}

// LoadIdentity reads and decrypts the identity.  Every key is decoded
// strictly, so a truncated, padded, null or missing key in the blob is an
// error.
func (s *IdentityFileStore) LoadIdentity(passphrase string) (domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(filepath.Join(s.dir, idFilename))
	if err != nil {
		return domain.Identity{}, err
	}
	if b == nil {
		return domain.Identity{}, ErrNoIdentity
	}
	pt, err := decrypt(passphrase, b)
	if err != nil {
		return domain.Identity{}, err
	}
	defer crypto.Wipe(pt)

	var blob identityBlob
	defer blob.wipe()
	if err := json.Unmarshal(pt, &blob); err != nil {
		return domain.Identity{}, fmt.Errorf("decode identity: %w", err)
	}
	id, err := blob.identity()
	if err != nil {
		return domain.Identity{}, fmt.Errorf("decode identity: %w", err)
	}
	return id, nil
}

// identityBlob mirrors domain.Identity with pointer fields so that absent
// and null keys stay nil instead of decoding as all-zero keys.
type identityBlob struct {
	XPub   *domain.X25519Public     `json:"xpub"`
	XPriv  *domain.X25519Private    `json:"xpriv"`
	EdPub  *domain.Ed25519Public    `json:"edpub"`
	EdPriv *domain.Ed25519Private   `json:"edpriv"`
	SecPub *domain.PublicKey        `json:"secpub"`
	SecKey *domain.SecretKey        `json:"seckey"`
	PQPub  *domain.Dilithium3Public `json:"pqpub"`
	PQSeed *domain.Dilithium3Seed   `json:"pqseed"`
}

func (b *identityBlob) identity() (domain.Identity, error) {
	missing := func(field string) error {
		return fmt.Errorf("%w: %s", ErrIncompleteIdentity, field)
	}
	switch {
	case b.XPub == nil:
		return domain.Identity{}, missing("xpub")
	case b.XPriv == nil:
		return domain.Identity{}, missing("xpriv")
	case b.EdPub == nil:
		return domain.Identity{}, missing("edpub")
	case b.EdPriv == nil:
		return domain.Identity{}, missing("edpriv")
	case b.SecPub == nil:
		return domain.Identity{}, missing("secpub")
	case b.SecKey == nil:
		return domain.Identity{}, missing("seckey")
	case b.PQPub == nil:
		return domain.Identity{}, missing("pqpub")
	case b.PQSeed == nil:
		return domain.Identity{}, missing("pqseed")
	}
	return domain.Identity{
		XPub:   *b.XPub,
		XPriv:  *b.XPriv,
		EdPub:  *b.EdPub,
		EdPriv: *b.EdPriv,
		SecPub: *b.SecPub,
		SecKey: *b.SecKey,
		PQPub:  *b.PQPub,
		PQSeed: *b.PQSeed,
	}, nil
}

func (b *identityBlob) wipe() {
	if b.XPriv != nil {
		crypto.Wipe(b.XPriv.Bytes())
	}
	if b.EdPriv != nil {
		crypto.Wipe(b.EdPriv.Bytes())
	}
	if b.SecKey != nil {
		crypto.Wipe(b.SecKey.Bytes())
	}
	if b.PQSeed != nil {
		crypto.Wipe(b.PQSeed.Bytes())
	}
}

// Compile-time assertion that IdentityFileStore implements domain.IdentityStore.
var _ domain.IdentityStore = (*IdentityFileStore)(nil)
