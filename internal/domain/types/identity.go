package types

// Identity holds your long-term X25519, Ed25519, secp256k1 and Dilithium
// mode 3 keys.
type Identity struct {
	XPub   X25519Public   `json:"xpub"`
	XPriv  X25519Private  `json:"xpriv"`
	EdPub  Ed25519Public  `json:"edpub"`
	EdPriv Ed25519Private `json:"edpriv"`
	SecPub PublicKey      `json:"secpub"`
	SecKey SecretKey      `json:"seckey"`

	PQPub  Dilithium3Public `json:"pqpub"`
	PQSeed Dilithium3Seed   `json:"pqseed"`
}

// PublicIdentity is the shareable half of an Identity.
type PublicIdentity struct {
	XPub   X25519Public  `json:"xpub" yaml:"xpub"`
	EdPub  Ed25519Public `json:"edpub" yaml:"edpub"`
	SecPub PublicKey     `json:"secpub" yaml:"secpub"`
	PQID   KeyID         `json:"pqid" yaml:"pqid"`
}

// Public returns the public half of id.  The Dilithium key is too large to
// show inline, so it is referenced by pqid, the content identifier of its
// bytes.
func (id Identity) Public(pqid KeyID) PublicIdentity {
	return PublicIdentity{
		XPub:   id.XPub,
		EdPub:  id.EdPub,
		SecPub: id.SecPub,
		PQID:   pqid,
	}
}
