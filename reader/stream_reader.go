package reader

import (
	"bufio"
	"fmt"
	"io"

	"github.com/arloliu/irstream/errs"
)

// StreamReader adapts an io.Reader (file, socket, pipe) to the decoder's
// Reader contract.
//
// Unlike BytesReader, a short read consumes whatever bytes were available;
// callers that need to resume after an incomplete stream must buffer and
// checkpoint at message boundaries themselves. Seeks are forward-only.
type StreamReader struct {
	br  *bufio.Reader
	pos int64
}

var _ Reader = (*StreamReader)(nil)

// NewStreamReader creates a StreamReader over r.
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{br: bufio.NewReader(r)}
}

// ReadExact fills buf completely or reports an incomplete stream.
func (r *StreamReader) ReadExact(buf []byte) error {
	n, err := io.ReadFull(r.br, buf)
	r.pos += int64(n)
	if err != nil {
		return fmt.Errorf("%w: need %d bytes at offset %d: %w",
			errs.ErrIncomplete, len(buf), r.pos, err)
	}

	return nil
}

// ReadString reads exactly n bytes and returns them as a string.
func (r *StreamReader) ReadString(n int) (string, error) {
	buf := make([]byte, n)
	if err := r.ReadExact(buf); err != nil {
		return "", err
	}

	return string(buf), nil
}

// Pos reports the number of bytes consumed so far.
func (r *StreamReader) Pos() int64 {
	return r.pos
}

// SeekFromStart discards bytes until the reader sits at pos. Seeking
// backwards is not supported on a stream.
func (r *StreamReader) SeekFromStart(pos int64) error {
	if pos < r.pos {
		return fmt.Errorf("cannot seek backwards on a stream: at %d, asked for %d", r.pos, pos)
	}

	n, err := r.br.Discard(int(pos - r.pos))
	r.pos += int64(n)
	if err != nil {
		return fmt.Errorf("%w: seek to %d: %w", errs.ErrIncomplete, pos, err)
	}

	return nil
}
