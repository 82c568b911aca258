package agree

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"

	"keybuf/internal/buffer"
	"keybuf/internal/crypto"
	"keybuf/internal/domain"
)

var infoPrefix = []byte("keybuf-agree:")

// DeriveKey returns the key shared by the holder of ourSK and the holder of
// peerPK for the given purpose.  Different info values give independent
// keys.
func DeriveKey(
	ourSK domain.SecretKey,
	peerPK domain.PublicKey,
	info []byte,
) (domain.SharedSecret, error) {
	ourPK, err := crypto.PublicKeyFromSecret(ourSK)
	if err != nil {
		return domain.SharedSecret{}, err
	}
	secret, err := crypto.SharedSecretSecp256k1(ourSK, peerPK)
	if err != nil {
		return domain.SharedSecret{}, err
	}
	defer crypto.Wipe(secret.Bytes())

	lo, hi := ourPK, peerPK
	if hi.Less(lo) {
		lo, hi = hi, lo
	}
	salt := buffer.Concat(lo.Slice(), hi.Slice())
	return expand(secret.Slice(), salt, buffer.Concat(infoPrefix, info))
}

// expand runs HKDF-SHA256 over ikm and reads one SharedSecret of output.
func expand(ikm, salt, info []byte) (domain.SharedSecret, error) {
	var out domain.SharedSecret
	if _, err := io.ReadFull(hkdf.New(sha256.New, ikm, salt, info), out[:]); err != nil {
		return domain.SharedSecret{}, err
	}
	return out, nil
}
