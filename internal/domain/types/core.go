package types

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// KeyID is a content identifier (CIDv1, raw codec, sha2-256) of a public
// key's bytes.
type KeyID string

// String returns the string form of the key identifier.
func (id KeyID) String() string { return string(id) }

// EntryID uniquely identifies a keyring entry.
type EntryID string

// String returns the string form of the entry identifier.
func (id EntryID) String() string { return string(id) }
