// Package protocol defines the on-wire constants of the IR stream format:
// the magic numbers that select the encoding mode, the one-byte tags that
// frame every record, and the placeholder bytes used inside logtypes.
//
// All multi-byte numeric fields that follow these tags (length prefixes,
// encoded-variable words, timestamps, timestamp deltas) are serialized in
// big-endian byte order.
package protocol

// Tag is a one-byte framing marker. Tags are read as a single unsigned byte;
// unknown tag values in a position that expects a tag indicate a corrupted
// stream.
type Tag uint8

// Mode selects between the two stream encodings. The mode is fixed for the
// life of a stream by its magic number.
type Mode uint8

const (
	// ModeEightByte streams carry 64-bit encoded variables and 64-bit
	// absolute epoch-millisecond timestamps.
	ModeEightByte Mode = 0x1
	// ModeFourByte streams carry 32-bit encoded variables and signed
	// timestamp deltas of 8, 16 or 32 bits.
	ModeFourByte Mode = 0x2
)

func (m Mode) String() string {
	switch m {
	case ModeEightByte:
		return "EightByte"
	case ModeFourByte:
		return "FourByte"
	default:
		return "Unknown"
	}
}

// EncodedVarWidth returns the width in bytes of one encoded-variable word in
// this mode.
func (m Mode) EncodedVarWidth() int {
	if m == ModeFourByte {
		return 4
	}

	return 8
}

// MagicNumberLength is the length of both magic numbers in bytes.
const MagicNumberLength = 4

// Magic numbers prefixing every stream. The trailing byte distinguishes the
// two encodings; the leading three bytes are shared.
var (
	MagicNumberFourByte  = [MagicNumberLength]byte{0xFD, 0x2F, 0xB5, 0x29}
	MagicNumberEightByte = [MagicNumberLength]byte{0xFD, 0x2F, 0xB5, 0x28}
)

// Payload tags frame the records of a message.
const (
	// Eof marks a clean end of stream at a message boundary.
	Eof Tag = 0x00

	// Dictionary-variable length prefixes. The tag selects the width of the
	// length field that follows: uint8, uint16 or int32. A negative int32
	// length is a corruption signal.
	VarStrLenUByte  Tag = 0x11
	VarStrLenUShort Tag = 0x12
	VarStrLenInt    Tag = 0x13

	// Encoded-variable words. VarFourByteEncoding is only valid in
	// four-byte mode and VarEightByteEncoding only in eight-byte mode.
	VarFourByteEncoding  Tag = 0x18
	VarEightByteEncoding Tag = 0x19

	// Logtype length prefixes, widths as for VarStrLen*.
	LogtypeStrLenUByte  Tag = 0x21
	LogtypeStrLenUShort Tag = 0x22
	LogtypeStrLenInt    Tag = 0x23

	// TimestampVal introduces a 64-bit absolute timestamp (eight-byte mode).
	TimestampVal Tag = 0x30
	// TimestampDelta* introduce a signed delta of 8/16/32 bits relative to
	// the previous event's timestamp (four-byte mode).
	TimestampDeltaByte  Tag = 0x31
	TimestampDeltaShort Tag = 0x32
	TimestampDeltaInt   Tag = 0x33
)

// Metadata tags frame the preamble's metadata descriptor.
const (
	// MetadataEncodingJSON identifies a JSON-encoded metadata payload.
	MetadataEncodingJSON Tag = 0x01

	// Metadata length prefixes: uint8 or uint16.
	MetadataLengthUByte  Tag = 0x11
	MetadataLengthUShort Tag = 0x12
)

// Variable placeholder bytes inside a logtype. A logtype byte equal to one of
// these values is interpreted as a placeholder unless preceded by EscapeChar.
const (
	PlaceholderInteger    byte = 0x11
	PlaceholderDictionary byte = 0x12
	PlaceholderFloat      byte = 0x13

	// EscapeChar makes the following logtype byte literal, placeholder
	// values included. It must not be the final byte of a logtype.
	EscapeChar byte = '\\'
)

// Metadata JSON keys written by the encoder.
const (
	MetadataVersionKey                = "VERSION"
	MetadataTimestampPatternKey       = "TIMESTAMP_PATTERN"
	MetadataTimestampPatternSyntaxKey = "TIMESTAMP_PATTERN_SYNTAX"
	MetadataTimeZoneIDKey             = "TZ_ID"
	MetadataReferenceTimestampKey     = "REFERENCE_TIMESTAMP"
)
