package compress

import (
	"bytes"
	"io"

	"github.com/pierrec/lz4/v4"
)

// LZ4Compressor wraps payloads in the LZ4 frame format.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
//
// Returns:
//   - LZ4Compressor: New LZ4 compressor instance
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data into an LZ4 frame.
//
// Parameters:
//   - data: Input data to compress
//
// Returns:
//   - []byte: Compressed frame (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress decompresses an LZ4 frame back into the original payload.
//
// Parameters:
//   - data: LZ4 frame to decompress
//
// Returns:
//   - []byte: Decompressed payload (nil if input is empty)
//   - error: Decompression error if any
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
}
