// Package crypto exposes the primitives that produce and consume keybuf's
// fixed-size key buffers.
//
// Contents
//
//   - X25519 key generation, clamping and Diffie–Hellman (GenerateX25519,
//     DH)
//   - Ed25519 key generation, signing and verification (GenerateEd25519,
//     SignEd25519, VerifyEd25519)
//   - secp256k1 keys, compact and recoverable ECDSA signatures and ECDH
//     (GenerateSecp256k1, SignSecp256k1, SignRecoverable, RecoverPublicKey,
//     SharedSecretSecp256k1)
//   - CRYSTALS-Dilithium mode 3 keys derived from a seed (GenerateDilithium3,
//     SignDilithium3, VerifyDilithium3)
//   - Best-effort memory wiping for sensitive buffers (Wipe, WipeIdentity)
//   - Short public-key fingerprints and content-addressed key IDs
//     (Fingerprint, KeyID)
//
// # Notes
//
// All functions take and return the fixed-size buffer types defined in
// internal/domain, so a key of the wrong length cannot reach them. Callers
// should treat returned secrets as sensitive and rely on Wipe when practical
// to reduce lifetime in memory.
package crypto
