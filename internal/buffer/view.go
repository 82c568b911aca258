package buffer

import (
	"runtime"
	"unsafe"
)

// Copy fills dst with src.  It fails with ErrInvalidLength, leaving dst
// untouched, unless both have the same length.
func Copy(dst, src []byte) error {
	if len(src) != len(dst) {
		return LengthError(len(src), len(dst))
	}
	copy(dst, src)
	return nil
}

// Borrow calls fn with the address of the first byte of b and len(b).
//
// The pointer must not be retained after fn returns.  b is kept alive until
// then, so it is safe to hand the pointer to native code from inside fn.
func Borrow(b []byte, fn func(ptr unsafe.Pointer, n int)) {
	fn(unsafe.Pointer(unsafe.SliceData(b)), len(b))
	runtime.KeepAlive(b)
}
