// Package agree derives symmetric keys shared between two secp256k1
// identities.
//
// Both sides compute the ECDH secret of their secret key and the other's
// public key, then expand it with HKDF-SHA256.  The two public keys are
// mixed into the salt in ascending order, so both sides derive the same
// key without agreeing on roles first.
package agree
