package crypto

import (
	"crypto/sha256"
	"errors"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"keybuf/internal/domain"
)

var (
	// ErrInvalidSecretKey is returned for a secret key that is zero or not
	// below the group order.
	ErrInvalidSecretKey = errors.New("invalid secp256k1 secret key")

	// ErrInvalidPublicKey is returned for bytes that are not a compressed
	// point on the curve.
	ErrInvalidPublicKey = errors.New("invalid secp256k1 public key")
)

// HashMessage returns the 32-byte digest secp256k1 signatures are made over.
func HashMessage(msg []byte) [32]byte {
	return sha256.Sum256(msg)
}

// GenerateSecp256k1 returns a new secp256k1 key pair.
func GenerateSecp256k1() (sk domain.SecretKey, pk domain.PublicKey, err error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return sk, pk, err
	}
	defer priv.Zero()

	priv.Key.PutBytes((*[32]byte)(&sk))
	copy(pk[:], priv.PubKey().SerializeCompressed())
	return sk, pk, nil
}

// privateKey parses sk, rejecting zero and overflowing scalars.
func privateKey(sk domain.SecretKey) (*secp256k1.PrivateKey, error) {
	var s secp256k1.ModNScalar
	if overflow := s.SetBytes((*[32]byte)(&sk)); overflow != 0 || s.IsZero() {
		return nil, ErrInvalidSecretKey
	}
	return secp256k1.NewPrivateKey(&s), nil
}

func publicKey(pk domain.PublicKey) (*secp256k1.PublicKey, error) {
	pub, err := secp256k1.ParsePubKey(pk[:])
	if err != nil {
		return nil, errors.Join(ErrInvalidPublicKey, err)
	}
	return pub, nil
}

// PublicKeyFromSecret derives the compressed public key of sk.
func PublicKeyFromSecret(sk domain.SecretKey) (pk domain.PublicKey, err error) {
	priv, err := privateKey(sk)
	if err != nil {
		return pk, err
	}
	defer priv.Zero()
	copy(pk[:], priv.PubKey().SerializeCompressed())
	return pk, nil
}

// ValidatePublicKey reports an error unless pk is a point on the curve.
func ValidatePublicKey(pk domain.PublicKey) error {
	_, err := publicKey(pk)
	return err
}

// SignSecp256k1 signs hash with sk and returns the compact r || s
// signature.  s is always in the lower half of the group order.
func SignSecp256k1(sk domain.SecretKey, hash [32]byte) (domain.Signature, error) {
	rsig, err := SignRecoverable(sk, hash)
	if err != nil {
		return domain.Signature{}, err
	}
	return domain.Signature(rsig[1:]), nil
}

// VerifySecp256k1 verifies a compact signature over hash with pk.
func VerifySecp256k1(pk domain.PublicKey, hash [32]byte, sig domain.Signature) bool {
	pub, err := publicKey(pk)
	if err != nil {
		return false
	}
	var r, s secp256k1.ModNScalar
	if r.SetByteSlice(sig[:32]) || s.SetByteSlice(sig[32:]) {
		return false
	}
	if r.IsZero() || s.IsZero() {
		return false
	}
	return ecdsa.NewSignature(&r, &s).Verify(hash[:], pub)
}

// SignRecoverable signs hash with sk and returns a signature the public key
// can be recovered from.  The first byte is the recovery code.
func SignRecoverable(sk domain.SecretKey, hash [32]byte) (domain.RecoverableSignature, error) {
	priv, err := privateKey(sk)
	if err != nil {
		return domain.RecoverableSignature{}, err
	}
	defer priv.Zero()
	return domain.RecoverableSignature(ecdsa.SignCompact(priv, hash[:], true)), nil
}

// RecoverPublicKey returns the public key that produced sig over hash.
func RecoverPublicKey(sig domain.RecoverableSignature, hash [32]byte) (pk domain.PublicKey, err error) {
	pub, _, err := ecdsa.RecoverCompact(sig[:], hash[:])
	if err != nil {
		return pk, err
	}
	copy(pk[:], pub.SerializeCompressed())
	return pk, nil
}

// SharedSecretSecp256k1 computes the ECDH shared secret of sk and pk: the x
// coordinate of sk*pk.
func SharedSecretSecp256k1(sk domain.SecretKey, pk domain.PublicKey) (out domain.SharedSecret, err error) {
	priv, err := privateKey(sk)
	if err != nil {
		return out, err
	}
	defer priv.Zero()
	pub, err := publicKey(pk)
	if err != nil {
		return out, err
	}
	secret := secp256k1.GenerateSharedSecret(priv, pub)
	copy(out[:], secret)
	Wipe(secret)
	return out, nil
}
