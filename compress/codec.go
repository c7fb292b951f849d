package compress

import (
	"bytes"
	"fmt"
)

// Type identifies the container compression wrapped around an IR stream.
type Type uint8

const (
	TypeNone Type = 0x1 // TypeNone represents an uncompressed stream.
	TypeZstd Type = 0x2 // TypeZstd represents a Zstandard frame container.
	TypeS2   Type = 0x3 // TypeS2 represents an S2 framed stream container.
	TypeLZ4  Type = 0x4 // TypeLZ4 represents an LZ4 frame container.
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeZstd:
		return "Zstd"
	case TypeS2:
		return "S2"
	case TypeLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Compressor compresses a complete payload into a self-describing container
// frame.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
//   - Internal buffers may be reused for efficiency
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores the payload from a container frame produced by the
// matching Compressor.
//
// Error conditions:
//   - Returns error if input data is corrupted or invalid
//   - Returns error if data was compressed with an incompatible algorithm
//
// Thread Safety: Decompressor implementations must be safe for concurrent use
// or document their thread safety requirements clearly.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType Type, target string) (Codec, error) {
	switch compressionType {
	case TypeNone:
		return NewNoOpCompressor(), nil
	case TypeZstd:
		return NewZstdCompressor(), nil
	case TypeS2:
		return NewS2Compressor(), nil
	case TypeLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoOpCompressor(),
	TypeZstd: NewZstdCompressor(),
	TypeS2:   NewS2Compressor(),
	TypeLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType Type) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// Container frame magic numbers. IR stream files are customarily wrapped in
// one of these containers; none of them collides with the IR magic numbers,
// which start with 0xFD.
var (
	zstdFrameMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4FrameMagic  = []byte{0x04, 0x22, 0x4D, 0x18}
	// The framed snappy/S2 stream identifier chunk: 0xFF header plus a
	// six-byte body that is "sNaPpY" for snappy-compatible streams and
	// "S2sTwO" for native S2 streams.
	s2ChunkHeader = []byte{0xFF, 0x06, 0x00, 0x00}
	s2MagicSnappy = []byte("sNaPpY")
	s2MagicNative = []byte("S2sTwO")
)

// Sniff inspects the leading bytes of data and reports which container frame
// it starts with. Data that matches no known container magic is TypeNone.
func Sniff(data []byte) Type {
	switch {
	case bytes.HasPrefix(data, zstdFrameMagic):
		return TypeZstd
	case bytes.HasPrefix(data, lz4FrameMagic):
		return TypeLZ4
	case bytes.HasPrefix(data, s2ChunkHeader) && len(data) >= 10 &&
		(bytes.Equal(data[4:10], s2MagicNative) || bytes.Equal(data[4:10], s2MagicSnappy)):
		return TypeS2
	default:
		return TypeNone
	}
}
