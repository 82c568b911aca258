package identity

import (
	"fmt"
	"unicode"

	"keybuf/internal/crypto"
	"keybuf/internal/domain"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
)

// Service manages identity key creation and access using a backing store.
//
// The identity contains:
//   - X25519 key pair for Diffie-Hellman.
//   - Ed25519 key pair for signing.
//   - secp256k1 key pair for compact and recoverable ECDSA signatures.
//   - Dilithium mode 3 seed and public key for post-quantum signatures.
type Service struct {
	store domain.IdentityStore
}

// New returns an identity service backed by the given store.
func New(s domain.IdentityStore) *Service { return &Service{store: s} }

// GenerateIdentity creates a new identity, saves it encrypted with the passphrase,
// and returns the identity plus a short fingerprint of the X25519 public key.
func (s *Service) GenerateIdentity(
	passphrase string,
) (domain.Identity, domain.Fingerprint, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.Identity{}, "", ErrWeakPassphrase
	}

	id, err := generate()
	if err != nil {
		crypto.WipeIdentity(&id)
		return domain.Identity{}, "", err
	}
	if err := s.store.SaveIdentity(passphrase, id); err != nil {
		crypto.WipeIdentity(&id)
		return domain.Identity{}, "", err
	}
	return id, crypto.Fingerprint(id.XPub.Slice()), nil
}

func generate() (id domain.Identity, err error) {
	if id.XPriv, id.XPub, err = crypto.GenerateX25519(); err != nil {
		return id, err
	}
	if id.EdPriv, id.EdPub, err = crypto.GenerateEd25519(); err != nil {
		return id, err
	}
	if id.SecKey, id.SecPub, err = crypto.GenerateSecp256k1(); err != nil {
		return id, err
	}
	if id.PQSeed, id.PQPub, err = crypto.GenerateDilithium3(); err != nil {
		return id, err
	}
	return id, nil
}

// LoadIdentity decrypts and returns the local identity.
func (s *Service) LoadIdentity(passphrase string) (domain.Identity, error) {
	return s.store.LoadIdentity(passphrase)
}

// FingerprintIdentity returns a short fingerprint of the local X25519 public key.
func (s *Service) FingerprintIdentity(passphrase string) (domain.Fingerprint, error) {
	id, err := s.store.LoadIdentity(passphrase)
	if err != nil {
		return "", err
	}
	defer crypto.WipeIdentity(&id)
	return crypto.Fingerprint(id.XPub.Slice()), nil
}

// PublicIdentity returns the shareable half of the local identity.
func (s *Service) PublicIdentity(passphrase string) (domain.PublicIdentity, error) {
	id, err := s.store.LoadIdentity(passphrase)
	if err != nil {
		return domain.PublicIdentity{}, err
	}
	defer crypto.WipeIdentity(&id)

	pqid, err := crypto.KeyID(id.PQPub.Slice())
	if err != nil {
		return domain.PublicIdentity{}, err
	}
	return id.Public(pqid), nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
