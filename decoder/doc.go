// Package decoder implements the IR stream decoder state machine: magic
// number and preamble framing, per-message tag dispatch, length-prefixed
// string and integer parsing, and logtype interpolation.
//
// The stream comes in two encodings selected by its magic number. Eight-byte
// streams carry 64-bit encoded-variable words and absolute 64-bit
// epoch-millisecond timestamps; four-byte streams carry 32-bit words and
// signed timestamp deltas that the caller accumulates onto a reference
// timestamp. Both encodings share one generic decoder body; the exported
// entry points are monomorphized per mode.
//
// Typical use:
//
//	mode, err := decoder.EncodingMode(r)
//	...
//	metadataType, metadata, err := decoder.DecodePreamble(r)
//	...
//	for {
//	    msg, ts, err := decoder.DecodeNextEightByteMessage(r)
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    ...
//	}
//
// All functions are synchronous and single-threaded; independent readers may
// be decoded in parallel without coordination. Errors are sentinel-based (see
// the errs package): errs.ErrIncomplete for reads the reader cannot satisfy,
// errs.ErrCorrupted for framing violations, errs.ErrDecode for well-framed
// messages whose logtype references more variables than were provided, and
// io.EOF for the clean end-of-stream marker.
package decoder
