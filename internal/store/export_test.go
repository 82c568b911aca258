package store

// Seal encrypts raw into an identity blob, for tests that need to store
// hand-written identity JSON.
var Seal = encrypt
