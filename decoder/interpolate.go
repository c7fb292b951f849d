package decoder

import (
	"github.com/arloliu/irstream/errs"
	"github.com/arloliu/irstream/internal/pool"
	"github.com/arloliu/irstream/protocol"
)

// decodeMessage reconstructs a message into buf by walking the logtype
// left-to-right and substituting placeholders from the two variable lists.
// It returns how many encoded and dictionary variables the placeholders
// consumed.
//
// The walk keeps a segment start marking the first byte of the current run
// of static text; each placeholder (or escape) flushes the run, then the
// substitution is appended. An escape byte makes the following byte static
// text even when that byte is itself a placeholder or another escape, so the
// walk skips it into the next static run. Leftover variables are not an
// error here; strict callers compare the returned counts against the list
// lengths.
func decodeMessage[T encodedVariable](buf *pool.ByteBuffer, logtype string, encodedVars []T, dictVars []string) (encUsed, dictUsed int, err error) {
	segmentStart := 0

	for pos := 0; pos < len(logtype); pos++ {
		switch logtype[pos] {
		case protocol.PlaceholderFloat:
			buf.MustWriteString(logtype[segmentStart:pos])
			segmentStart = pos + 1
			if encUsed >= len(encodedVars) {
				return encUsed, dictUsed, errs.ErrTooFewEncodedVars
			}
			buf.MustWriteString(DecodeFloatVar(encodedVars[encUsed]))
			encUsed++

		case protocol.PlaceholderInteger:
			buf.MustWriteString(logtype[segmentStart:pos])
			segmentStart = pos + 1
			if encUsed >= len(encodedVars) {
				return encUsed, dictUsed, errs.ErrTooFewEncodedVars
			}
			buf.MustWriteString(DecodeIntegerVar(encodedVars[encUsed]))
			encUsed++

		case protocol.PlaceholderDictionary:
			buf.MustWriteString(logtype[segmentStart:pos])
			segmentStart = pos + 1
			if dictUsed >= len(dictVars) {
				return encUsed, dictUsed, errs.ErrTooFewDictVars
			}
			buf.MustWriteString(dictVars[dictUsed])
			dictUsed++

		case protocol.EscapeChar:
			// The escape must be followed by the byte it escapes.
			if pos == len(logtype)-1 {
				return encUsed, dictUsed, errs.ErrTrailingEscape
			}
			buf.MustWriteString(logtype[segmentStart:pos])
			// Skip the escape byte itself; the byte after it opens the
			// next static run, placeholder values included.
			segmentStart = pos + 1
			pos++
		}
	}

	// Flush the final static run.
	buf.MustWriteString(logtype[segmentStart:])

	return encUsed, dictUsed, nil
}
