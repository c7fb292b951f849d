package reader

import (
	"fmt"

	"github.com/arloliu/irstream/errs"
)

// BytesReader reads an IR stream held completely in memory.
//
// A short read leaves the position unchanged, so a caller that appends more
// bytes to its buffer can rebuild a BytesReader and resume from the last
// message boundary.
type BytesReader struct {
	data []byte
	pos  int64
}

var _ Reader = (*BytesReader)(nil)

// NewBytesReader creates a BytesReader over data. The reader does not copy
// data; the caller must not mutate it while decoding.
func NewBytesReader(data []byte) *BytesReader {
	return &BytesReader{data: data}
}

// ReadExact fills buf from the current position or fails without consuming.
func (r *BytesReader) ReadExact(buf []byte) error {
	if remaining := int64(len(r.data)) - r.pos; remaining < int64(len(buf)) {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			errs.ErrIncomplete, len(buf), r.pos, remaining)
	}

	copy(buf, r.data[r.pos:])
	r.pos += int64(len(buf))

	return nil
}

// ReadString reads exactly n bytes and returns them as a string.
func (r *BytesReader) ReadString(n int) (string, error) {
	if remaining := int64(len(r.data)) - r.pos; remaining < int64(n) {
		return "", fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			errs.ErrIncomplete, n, r.pos, remaining)
	}

	s := string(r.data[r.pos : r.pos+int64(n)])
	r.pos += int64(n)

	return s, nil
}

// Pos reports the current offset from the start of the stream.
func (r *BytesReader) Pos() int64 {
	return r.pos
}

// SeekFromStart repositions the reader. Seeking past the end of the buffer
// reports an incomplete stream.
func (r *BytesReader) SeekFromStart(pos int64) error {
	if pos < 0 || pos > int64(len(r.data)) {
		return fmt.Errorf("%w: seek to %d outside stream of %d bytes",
			errs.ErrIncomplete, pos, len(r.data))
	}
	r.pos = pos

	return nil
}
