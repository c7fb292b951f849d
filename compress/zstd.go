package compress

// ZstdCompressor provides Zstandard compression for whole IR streams.
//
// Zstandard is the customary container for archived IR streams: compression
// ratio matters more than compression speed once a stream is sealed, and
// decompression stays fast enough for interactive search over the decoded
// messages.
//
// Performance characteristics:
//   - Compression: ~5-20 ns/byte (depending on compression level)
//   - Decompression: ~2-5 ns/byte
//   - Compression ratio: 10:1 to 40:1 for typical IR payloads
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
