package decoder

import (
	"fmt"

	"github.com/arloliu/irstream/errs"
	"github.com/arloliu/irstream/protocol"
	"github.com/arloliu/irstream/reader"
)

// EncodingMode reads the stream's magic number and returns the encoding mode
// it selects. Anything other than the two known magic numbers is corruption.
func EncodingMode(r reader.Reader) (protocol.Mode, error) {
	var magic [protocol.MagicNumberLength]byte
	if err := r.ReadExact(magic[:]); err != nil {
		return 0, err
	}

	switch magic {
	case protocol.MagicNumberFourByte:
		return protocol.ModeFourByte, nil
	case protocol.MagicNumberEightByte:
		return protocol.ModeEightByte, nil
	default:
		return 0, fmt.Errorf("%w: % X", errs.ErrUnknownMagicNumber, magic[:])
	}
}

// readMetadataInfo reads the metadata descriptor: the metadata type tag
// followed by a length-encoding tag and the length itself.
func readMetadataInfo(r reader.Reader) (metadataType protocol.Tag, size uint16, err error) {
	if metadataType, err = readTag(r); err != nil {
		return 0, 0, err
	}

	lengthTag, err := readTag(r)
	if err != nil {
		return 0, 0, err
	}

	switch lengthTag {
	case protocol.MetadataLengthUByte:
		v, err := readInt[uint8](r)
		if err != nil {
			return 0, 0, err
		}
		size = uint16(v)
	case protocol.MetadataLengthUShort:
		if size, err = readInt[uint16](r); err != nil {
			return 0, 0, err
		}
	default:
		return 0, 0, fmt.Errorf("%w: metadata length tag 0x%02X", errs.ErrInvalidLengthTag, uint8(lengthTag))
	}

	return metadataType, size, nil
}

// DecodePreamble reads the metadata descriptor that follows the magic number
// and returns the metadata type tag together with the raw metadata payload.
// Interpreting the payload is the caller's concern (see the metadata
// package for the JSON encoding).
func DecodePreamble(r reader.Reader) (metadataType protocol.Tag, payload []byte, err error) {
	metadataType, size, err := readMetadataInfo(r)
	if err != nil {
		return 0, nil, err
	}

	payload = make([]byte, size)
	if err := r.ReadExact(payload); err != nil {
		return 0, nil, err
	}

	return metadataType, payload, nil
}

// DecodePreambleAt is the by-position variant of DecodePreamble: instead of
// reading the metadata payload it reports where the payload starts and how
// long it is, then seeks past it. Callers that map the stream into memory use
// this to reference the metadata bytes without copying them.
func DecodePreambleAt(r reader.Reader) (metadataType protocol.Tag, pos int64, size uint16, err error) {
	metadataType, size, err = readMetadataInfo(r)
	if err != nil {
		return 0, 0, 0, err
	}

	pos = r.Pos()
	if err := r.SeekFromStart(pos + int64(size)); err != nil {
		return 0, 0, 0, err
	}

	return metadataType, pos, size, nil
}
