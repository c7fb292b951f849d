// Package compress provides the container codecs an IR stream may be wrapped
// in at rest or in transit.
//
// IR streams compress extremely well: the encoding already deduplicates
// logtypes into templates, and the remaining variable payload is highly
// repetitive. Producers therefore customarily wrap the whole stream in a
// general-purpose container frame, most commonly Zstandard.
//
// # Overview
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Supported containers:
//   - None: No compression (pass-through)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed (framed stream format)
//   - LZ4: Fast decompression, moderate compression (frame format)
//
// All three compressed containers are self-describing frames, so Sniff can
// detect which codec produced a byte slice from its leading magic bytes. The
// IR magic numbers start with 0xFD and collide with none of the container
// magics, which is what lets irstream.Open accept both bare and wrapped
// streams.
//
// # Zstd Build Variants
//
// The default Zstd codec is the pure-Go github.com/klauspost/compress/zstd
// implementation. Building with the "gozstd" tag swaps in the cgo-backed
// github.com/valyala/gozstd bindings for workloads where libzstd's throughput
// matters more than a C dependency.
package compress
