package buffer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// The binary codec frames a buffer as
//
//	uvarint(len) || bytes
//
// The declared length must equal the fixed length of the target type.

// AppendSeq appends the length-prefixed encoding of b to dst.
func AppendSeq(dst, b []byte) []byte {
	dst = binary.AppendUvarint(dst, uint64(len(b)))
	return append(dst, b...)
}

// DecodeSeq decodes a length-prefixed sequence held in data into dst.  Both
// the declared length and the payload size must equal len(dst), and nothing
// may follow the payload.  dst is only written on success.
func DecodeSeq(dst, data []byte) error {
	n, k := binary.Uvarint(data)
	if k <= 0 {
		return makeError(ErrMalformedPrefix, 0, "malformed sequence length prefix")
	}
	if n != uint64(len(dst)) {
		return lengthError(clampIndex(n), len(dst))
	}
	body := data[k:]
	switch {
	case len(body) < len(dst):
		return lengthError(len(body), len(dst))
	case len(body) > len(dst):
		desc := fmt.Sprintf("%d trailing bytes after a sequence of %d "+
			"elements", len(body)-len(dst), len(dst))
		return makeError(ErrTrailingData, len(dst), desc)
	}
	copy(dst, body)
	return nil
}

// WriteSeq writes the length-prefixed encoding of b to w.
func WriteSeq(w io.Writer, b []byte) error {
	_, err := w.Write(AppendSeq(nil, b))
	return err
}

// ReadSeq reads one length-prefixed sequence from r into dst.  Unlike
// DecodeSeq it cannot detect trailing data since r may carry further
// sequences.  It never reads past the sequence it decodes.
func ReadSeq(r io.Reader, dst []byte) error {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = &byteReader{r: r}
	}
	n, err := binary.ReadUvarint(br)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return err
		}
		return makeError(ErrMalformedPrefix, 0, "malformed sequence length prefix")
	}
	if n != uint64(len(dst)) {
		return lengthError(clampIndex(n), len(dst))
	}
	tmp := make([]byte, len(dst))
	got, err := io.ReadFull(r, tmp)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return lengthError(got, len(dst))
		}
		return err
	}
	copy(dst, tmp)
	return nil
}

// byteReader reads single bytes from an io.Reader without buffering ahead.
type byteReader struct {
	r   io.Reader
	buf [1]byte
}

func (b *byteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(b.r, b.buf[:]); err != nil {
		return 0, err
	}
	return b.buf[0], nil
}
