// Package reader defines the sequential byte source the IR decoder pulls
// from, plus implementations over in-memory buffers and io.Reader streams.
//
// The decoder treats any read the source cannot satisfy as an incomplete
// stream (errs.ErrIncomplete); transport-level causes are wrapped, not
// swallowed, so callers can still reach them with errors.Is/As.
package reader

// Reader is the sequential byte source consumed by the decoder.
//
// Implementations are not safe for concurrent use; the decoder is
// single-threaded and so is its reader.
type Reader interface {
	// ReadExact fills buf completely or fails. A source that cannot supply
	// len(buf) bytes returns an error wrapping errs.ErrIncomplete.
	ReadExact(buf []byte) error

	// ReadString reads exactly n bytes and returns them as a string.
	ReadString(n int) (string, error)

	// Pos reports the current offset from the start of the stream in bytes.
	Pos() int64

	// SeekFromStart repositions the reader to the given offset from the
	// start of the stream. Implementations over non-seekable transports may
	// support forward seeks only.
	SeekFromStart(pos int64) error
}
