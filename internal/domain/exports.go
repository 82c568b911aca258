package domain

import (
	interfaces "keybuf/internal/domain/interfaces"
	types "keybuf/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Fingerprint          = types.Fingerprint
	KeyID                = types.KeyID
	EntryID              = types.EntryID
	Identity             = types.Identity
	PublicIdentity       = types.PublicIdentity
	KeyringEntry         = types.KeyringEntry
	X25519Public         = types.X25519Public
	X25519Private        = types.X25519Private
	Ed25519Public        = types.Ed25519Public
	Ed25519Private       = types.Ed25519Private
	Ed25519Signature     = types.Ed25519Signature
	SecretKey            = types.SecretKey
	PublicKey            = types.PublicKey
	Signature            = types.Signature
	RecoverableSignature = types.RecoverableSignature
	SharedSecret         = types.SharedSecret
	Dilithium3Public     = types.Dilithium3Public
	Dilithium3Seed       = types.Dilithium3Seed
	Dilithium3Signature  = types.Dilithium3Signature
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	IdentityService = interfaces.IdentityService
	KeyringService  = interfaces.KeyringService
	IdentityStore   = interfaces.IdentityStore
	KeyringStore    = interfaces.KeyringStore
)
