package crypto

import (
	"crypto/rand"

	"github.com/cloudflare/circl/sign/dilithium/mode3"

	"keybuf/internal/domain"
)

// GenerateDilithium3 returns a fresh Dilithium mode 3 seed and the public
// key it expands to.
func GenerateDilithium3() (seed domain.Dilithium3Seed, pub domain.Dilithium3Public, err error) {
	if _, err = rand.Read(seed[:]); err != nil {
		return
	}
	pub = Dilithium3PublicFromSeed(seed)
	return
}

func dilithium3Key(seed domain.Dilithium3Seed) (*mode3.PublicKey, *mode3.PrivateKey) {
	s := [32]byte(seed)
	defer Wipe(s[:])
	return mode3.NewKeyFromSeed(&s)
}

// Dilithium3PublicFromSeed expands seed and returns its packed public key.
func Dilithium3PublicFromSeed(seed domain.Dilithium3Seed) (pub domain.Dilithium3Public) {
	pk, _ := dilithium3Key(seed)
	copy(pub[:], pk.Bytes())
	return pub
}

// SignDilithium3 signs msg with the key pair expanded from seed.
func SignDilithium3(seed domain.Dilithium3Seed, msg []byte) (sig domain.Dilithium3Signature) {
	_, sk := dilithium3Key(seed)
	mode3.SignTo(sk, msg, sig[:])
	return sig
}

// VerifyDilithium3 verifies sig over msg with pub.  A pub that does not
// unpack is reported as a failed verification.
func VerifyDilithium3(pub domain.Dilithium3Public, msg []byte, sig domain.Dilithium3Signature) bool {
	var pk mode3.PublicKey
	if err := pk.UnmarshalBinary(pub[:]); err != nil {
		return false
	}
	return mode3.Verify(&pk, msg, sig[:])
}
