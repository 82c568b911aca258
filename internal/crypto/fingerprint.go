package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"

	"keybuf/internal/domain"
)

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(pub []byte) domain.Fingerprint {
	sum := sha256.Sum256(pub)
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}

// KeyID returns the CIDv1 of pub using the "raw" multicodec and a sha2-256
// multihash.
func KeyID(pub []byte) (domain.KeyID, error) {
	sum, err := multihash.Sum(pub, multihash.SHA2_256, -1)
	if err != nil {
		return "", err
	}
	return domain.KeyID(cid.NewCidV1(cid.Raw, sum).String()), nil
}

// ParseKeyID reports whether s is a well-formed key ID and returns it in
// canonical form.
func ParseKeyID(s string) (domain.KeyID, error) {
	id, err := cid.Decode(s)
	if err != nil {
		return "", err
	}
	return domain.KeyID(id.String()), nil
}
