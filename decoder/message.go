package decoder

import (
	"fmt"
	"io"
	"unsafe"

	"github.com/arloliu/irstream/errs"
	"github.com/arloliu/irstream/internal/pool"
	"github.com/arloliu/irstream/protocol"
	"github.com/arloliu/irstream/reader"
)

// encodedVariable is the mode-specific width of one encoded-variable word:
// int32 in four-byte streams, int64 in eight-byte streams.
type encodedVariable interface {
	int32 | int64
}

// modeOf maps the word width back to the encoding mode.
func modeOf[T encodedVariable]() protocol.Mode {
	var v T
	if unsafe.Sizeof(v) == 4 {
		return protocol.ModeFourByte
	}

	return protocol.ModeEightByte
}

// Result carries one decoded message together with its framing details.
//
// Timestamp is the absolute epoch-millisecond timestamp in eight-byte mode
// and the raw signed delta in four-byte mode; accumulating deltas onto a
// reference timestamp is the caller's concern.
type Result struct {
	// Message is the reconstructed log message text.
	Message string
	// Logtype is the message's template as it appeared on the wire,
	// placeholders and escapes included.
	Logtype string
	// Timestamp is the absolute timestamp (eight-byte mode) or timestamp
	// delta (four-byte mode).
	Timestamp int64

	// EncodedVars and DictVars count the variable records read from the
	// stream; EncodedVarsUsed and DictVarsUsed count how many of them the
	// logtype's placeholders actually consumed. The stream may legitimately
	// carry more variables than the logtype uses; strict callers compare
	// the pairs.
	EncodedVars     int
	DictVars        int
	EncodedVarsUsed int
	DictVarsUsed    int
}

// DecodeNext decodes the next message from r in the given mode.
//
// It returns io.EOF when the clean end-of-stream tag is the next record.
// After a successful decode the reader sits immediately past the last byte
// the message consumed; after any error the reader position is unspecified
// and the stream must be abandoned or restarted from a checkpoint.
func DecodeNext(r reader.Reader, mode protocol.Mode) (Result, error) {
	switch mode {
	case protocol.ModeFourByte:
		return decodeNextMessage[int32](r)
	case protocol.ModeEightByte:
		return decodeNextMessage[int64](r)
	default:
		return Result{}, fmt.Errorf("unknown encoding mode: %v", mode)
	}
}

// DecodeNextEightByteMessage decodes the next message from an eight-byte
// stream, returning the reconstructed text and its absolute epoch-millisecond
// timestamp. It returns io.EOF at the end-of-stream marker.
func DecodeNextEightByteMessage(r reader.Reader) (message string, timestamp int64, err error) {
	res, err := decodeNextMessage[int64](r)

	return res.Message, res.Timestamp, err
}

// DecodeNextFourByteMessage decodes the next message from a four-byte stream,
// returning the reconstructed text and the raw timestamp delta relative to
// the previous message. It returns io.EOF at the end-of-stream marker.
func DecodeNextFourByteMessage(r reader.Reader) (message string, timestampDelta int64, err error) {
	res, err := decodeNextMessage[int32](r)

	return res.Message, res.Timestamp, err
}

// getVarScratch returns a pooled scratch slice matching T's width.
func getVarScratch[T encodedVariable]() ([]T, func()) {
	var v T
	if unsafe.Sizeof(v) == 4 {
		s, done := pool.GetInt32Slice()

		return any(s).([]T), done
	}

	s, done := pool.GetInt64Slice()

	return any(s).([]T), done
}

// decodeNextMessage is the generic decoder body shared by both modes.
//
// State machine per message: read a tag; accumulate variable records while
// the tag classifies as a variable tag; then the current tag must open the
// logtype; then one more tag must open the timestamp record; finally the
// logtype is interpolated against the accumulated variables.
func decodeNextMessage[T encodedVariable](r reader.Reader) (Result, error) {
	var res Result
	mode := modeOf[T]()

	tag, err := readTag(r)
	if err != nil {
		return res, err
	}
	if tag == protocol.Eof {
		return res, io.EOF
	}

	encodedVars, putEncodedVars := getVarScratch[T]()
	defer putEncodedVars()
	dictVars, putDictVars := pool.GetStringSlice()
	defer putDictVars()

	for {
		isEncodedVar, isVar := isVariableTag(tag, mode)
		if !isVar {
			break
		}

		if isEncodedVar {
			v, err := readInt[T](r)
			if err != nil {
				return res, err
			}
			encodedVars = append(encodedVars, v)
		} else {
			s, err := parseDictionaryVar(r, tag)
			if err != nil {
				return res, err
			}
			dictVars = append(dictVars, s)
		}

		if tag, err = readTag(r); err != nil {
			return res, err
		}
	}

	logtype, err := parseLogtype(r, tag)
	if err != nil {
		return res, err
	}

	// The timestamp record closes the message: an absolute value in
	// eight-byte mode, a delta in four-byte mode.
	if tag, err = readTag(r); err != nil {
		return res, err
	}
	timestamp, err := parseTimestamp[T](r, tag)
	if err != nil {
		return res, err
	}

	buf := pool.GetMessageBuffer()
	defer pool.PutMessageBuffer(buf)

	encUsed, dictUsed, err := decodeMessage(buf, logtype, encodedVars, dictVars)
	if err != nil {
		return res, err
	}

	return Result{
		Message:         buf.String(),
		Logtype:         logtype,
		Timestamp:       timestamp,
		EncodedVars:     len(encodedVars),
		DictVars:        len(dictVars),
		EncodedVarsUsed: encUsed,
		DictVarsUsed:    dictUsed,
	}, nil
}

// parseLogtype reads the logtype string opened by tag. Only the three
// LogtypeStrLen* tags are valid here; in particular a VarStrLen* tag in this
// position is corruption, not a variable.
func parseLogtype(r reader.Reader, tag protocol.Tag) (string, error) {
	var length int
	switch tag {
	case protocol.LogtypeStrLenUByte:
		v, err := readInt[uint8](r)
		if err != nil {
			return "", err
		}
		length = int(v)
	case protocol.LogtypeStrLenUShort:
		v, err := readInt[uint16](r)
		if err != nil {
			return "", err
		}
		length = int(v)
	case protocol.LogtypeStrLenInt:
		v, err := readInt[int32](r)
		if err != nil {
			return "", err
		}
		if v < 0 {
			return "", fmt.Errorf("%w: logtype length %d", errs.ErrNegativeLength, v)
		}
		length = int(v)
	default:
		return "", fmt.Errorf("%w: 0x%02X in logtype position", errs.ErrUnexpectedTag, uint8(tag))
	}

	return r.ReadString(length)
}

// parseDictionaryVar reads the dictionary variable opened by tag.
func parseDictionaryVar(r reader.Reader, tag protocol.Tag) (string, error) {
	var length int
	switch tag {
	case protocol.VarStrLenUByte:
		v, err := readInt[uint8](r)
		if err != nil {
			return "", err
		}
		length = int(v)
	case protocol.VarStrLenUShort:
		v, err := readInt[uint16](r)
		if err != nil {
			return "", err
		}
		length = int(v)
	case protocol.VarStrLenInt:
		v, err := readInt[int32](r)
		if err != nil {
			return "", err
		}
		if v < 0 {
			return "", fmt.Errorf("%w: dictionary variable length %d", errs.ErrNegativeLength, v)
		}
		length = int(v)
	default:
		return "", fmt.Errorf("%w: 0x%02X in dictionary variable position", errs.ErrUnexpectedTag, uint8(tag))
	}

	return r.ReadString(length)
}

// parseTimestamp reads the timestamp record opened by tag: a 64-bit absolute
// value in eight-byte mode, a sign-extended 8/16/32-bit delta in four-byte
// mode.
func parseTimestamp[T encodedVariable](r reader.Reader, tag protocol.Tag) (int64, error) {
	if modeOf[T]() == protocol.ModeEightByte {
		if tag != protocol.TimestampVal {
			return 0, fmt.Errorf("%w: 0x%02X in timestamp position", errs.ErrUnexpectedTag, uint8(tag))
		}

		return readInt[int64](r)
	}

	switch tag {
	case protocol.TimestampDeltaByte:
		v, err := readInt[int8](r)

		return int64(v), err
	case protocol.TimestampDeltaShort:
		v, err := readInt[int16](r)

		return int64(v), err
	case protocol.TimestampDeltaInt:
		v, err := readInt[int32](r)

		return int64(v), err
	default:
		return 0, fmt.Errorf("%w: 0x%02X in timestamp position", errs.ErrUnexpectedTag, uint8(tag))
	}
}
