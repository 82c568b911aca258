package crypto

import (
	"crypto/subtle"
	"runtime"

	"keybuf/internal/domain"
)

// Wipe zeroes the provided buffer. This is best-effort and aims to
// reduce the chance of the compiler eliding the write.
//
//go:noinline
func Wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
	// Ensure b is considered live until after the copy.
	runtime.KeepAlive(&b)
}

// WipeIdentity zeroes the private halves of id in place.
func WipeIdentity(id *domain.Identity) {
	Wipe(id.XPriv.Bytes())
	Wipe(id.EdPriv.Bytes())
	Wipe(id.SecKey.Bytes())
	Wipe(id.PQSeed.Bytes())
}
