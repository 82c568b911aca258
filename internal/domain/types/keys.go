package types

//go:generate go run keybuf/cmd/bufgen --type=X25519Public:32,Ed25519Public:32,Ed25519Signature:64,PublicKey:33,Signature:64,RecoverableSignature:65 --debug=pretty --codec --json --yaml --output=public_buf.go
//go:generate go run keybuf/cmd/bufgen --type=X25519Private:32,Ed25519Private:64,SecretKey:32,Dilithium3Seed:32 --debug=raw --codec --json --output=secret_buf.go
//go:generate go run keybuf/cmd/bufgen --type=Dilithium3Public:1952,Dilithium3Signature:3293 --debug=raw --codec --json --output=dilithium_buf.go
//go:generate go run keybuf/cmd/bufgen --type=SharedSecret:32 --debug=raw --output=shared_buf.go

// ------------- X25519 -------------

// X25519Public is a Curve25519 public key.
type X25519Public [32]byte

// X25519Private is a Curve25519 private key.
type X25519Private [32]byte

// ------------- Ed25519 -------------

// Ed25519Public is an Ed25519 signing public key.
type Ed25519Public [32]byte

// Ed25519Private is an Ed25519 signing private key (ed25519.PrivateKey
// layout: seed followed by public key).
type Ed25519Private [64]byte

// Ed25519Signature is a detached Ed25519 signature.
type Ed25519Signature [64]byte

// ------------- secp256k1 -------------

// SecretKey is a secp256k1 secret scalar, big-endian.
type SecretKey [32]byte

// PublicKey is a compressed secp256k1 public key.
type PublicKey [33]byte

// Signature is a compact secp256k1 ECDSA signature, r || s.
type Signature [64]byte

// RecoverableSignature is a compact secp256k1 signature prefixed with its
// recovery code, so the signer's public key can be recovered from it.
type RecoverableSignature [65]byte

// SharedSecret is the x coordinate of an ECDH shared point.
type SharedSecret [32]byte

// ------------- Dilithium3 -------------

// Dilithium3Public is a packed CRYSTALS-Dilithium mode 3 public key.
type Dilithium3Public [1952]byte

// Dilithium3Seed is the seed a Dilithium mode 3 key pair is expanded from.
// It stands in for the much larger packed private key at rest.
type Dilithium3Seed [32]byte

// Dilithium3Signature is a CRYSTALS-Dilithium mode 3 signature.
type Dilithium3Signature [3293]byte
