package types

// KeyringEntry is a peer's secp256k1 public key kept in the local keyring.
type KeyringEntry struct {
	ID       EntryID   `json:"id" yaml:"id"`
	Label    string    `json:"label" yaml:"label"`
	Key      PublicKey `json:"key" yaml:"key"`
	KeyID    KeyID     `json:"key_id" yaml:"key_id"`
	AddedUTC int64     `json:"added_utc" yaml:"added_utc"`
}
