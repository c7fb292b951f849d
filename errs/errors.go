// Package errs defines the sentinel errors shared across irstream packages.
//
// The decoder's failure set is closed: a read the reader cannot satisfy is
// ErrIncomplete, a framing violation is ErrCorrupted, and a well-framed
// message whose logtype cannot be materialized is ErrDecode. Detail sentinels
// wrap one of those three, so callers can match either the broad class or the
// precise cause with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrIncomplete indicates the reader ran out of bytes mid-record. The
	// reader itself may still be usable once more bytes arrive, but the
	// current message must be restarted from a checkpoint.
	ErrIncomplete = errors.New("incomplete IR stream")

	// ErrCorrupted indicates a framing violation: a wrong magic number, an
	// unexpected tag, or an invalid length encoding. Fatal for the stream.
	ErrCorrupted = errors.New("corrupted IR stream")

	// ErrDecode indicates a well-framed message that cannot be
	// materialized: the logtype references more variables than the stream
	// provided, or ends in an unescaped escape byte. Fatal for the stream
	// because the variable indices are no longer trustworthy.
	ErrDecode = errors.New("cannot decode IR message")
)

// Detail sentinels. Each wraps its class sentinel above.
var (
	ErrUnknownMagicNumber  = fmt.Errorf("%w: unknown magic number", ErrCorrupted)
	ErrInvalidLengthTag    = fmt.Errorf("%w: invalid length-encoding tag", ErrCorrupted)
	ErrNegativeLength      = fmt.Errorf("%w: negative length prefix", ErrCorrupted)
	ErrUnexpectedTag       = fmt.Errorf("%w: unexpected tag", ErrCorrupted)
	ErrInvalidMetadataType = fmt.Errorf("%w: unsupported metadata encoding", ErrCorrupted)

	ErrTooFewEncodedVars = fmt.Errorf("%w: too few encoded variables", ErrDecode)
	ErrTooFewDictVars    = fmt.Errorf("%w: too few dictionary variables", ErrDecode)
	ErrTrailingEscape    = fmt.Errorf("%w: logtype ends in an escape byte", ErrDecode)
	ErrLeftoverVars      = fmt.Errorf("%w: unconsumed variables after interpolation", ErrDecode)
)
