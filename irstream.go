// Package irstream decodes IR streams: the compact binary encoding of log
// events in which each event is a logtype template, a list of encoded
// (numeric) variables, a list of dictionary (string) variables, and a
// timestamp. The decoder reconstructs the original human-readable messages
// paired with their timestamps.
//
// # Core Features
//
//   - Byte-exact decoding of both stream encodings: eight-byte (64-bit
//     variables, absolute timestamps) and four-byte (32-bit variables,
//     timestamp deltas)
//   - Transparent container handling: Open sniffs Zstd/LZ4/S2 frames and
//     decompresses before framing
//   - Preamble metadata parsing (version, timestamp pattern, timezone,
//     reference timestamp) with hash-based stream identity
//   - Delta accumulation for four-byte streams, seeded from the metadata
//     reference timestamp
//   - Per-stream statistics: event count and unique logtypes seen
//
// # Basic Usage
//
//	d, err := irstream.Open(data)
//	if err != nil {
//	    return err
//	}
//	for {
//	    ev, err := d.Next()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Printf("%d %s\n", ev.Timestamp, ev.Message)
//	}
//
// # Package Structure
//
// This package provides a convenient high-level wrapper around the decoder
// package. For message-by-message control, positional preamble access, or
// custom readers, use the decoder and reader packages directly.
package irstream

import (
	"fmt"

	"github.com/arloliu/irstream/compress"
	"github.com/arloliu/irstream/decoder"
	"github.com/arloliu/irstream/errs"
	"github.com/arloliu/irstream/internal/hash"
	"github.com/arloliu/irstream/metadata"
	"github.com/arloliu/irstream/protocol"
	"github.com/arloliu/irstream/reader"
)

// LogEvent is one decoded log event. Timestamp is absolute epoch
// milliseconds in both modes: four-byte deltas are accumulated onto the
// stream's reference timestamp by the Decoder.
type LogEvent struct {
	Timestamp int64
	Message   string
}

// Stats reports what a Decoder has seen so far.
type Stats struct {
	// Events is the number of successfully decoded events.
	Events int
	// UniqueLogtypes is the number of distinct logtype templates seen,
	// identified by xxHash64.
	UniqueLogtypes int
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithStrictVariableCounts makes Next fail with errs.ErrLeftoverVars when a
// message carries more variables than its logtype consumes. The wire format
// permits leftovers, and the default is to ignore them the way the reference
// decoder does; strict mode is for producers that are known to emit exactly
// matched counts.
func WithStrictVariableCounts() Option {
	return func(d *Decoder) {
		d.strict = true
	}
}

// WithReferenceTimestamp seeds four-byte delta accumulation with ts (epoch
// milliseconds), overriding the metadata's reference timestamp. Streams whose
// metadata carries no reference timestamp start from zero unless this option
// is given.
func WithReferenceTimestamp(ts int64) Option {
	return func(d *Decoder) {
		d.refTimestamp = ts
		d.refTimestampSet = true
	}
}

// WithContainer forces Open to treat the input as the given container type
// instead of sniffing the leading magic bytes. Only the compress package's
// built-in types are accepted; any other value makes Open fail.
func WithContainer(t compress.Type) Option {
	return func(d *Decoder) {
		d.container = t
	}
}

// Decoder drains one IR stream event by event.
//
// Note: The Decoder is NOT thread-safe. Each decoder instance should be used
// by a single goroutine at a time.
type Decoder struct {
	r    reader.Reader
	mode protocol.Mode

	metadataType protocol.Tag
	rawMetadata  []byte
	meta         *metadata.Metadata
	streamID     uint64

	lastTimestamp int64

	strict          bool
	refTimestamp    int64
	refTimestampSet bool
	container       compress.Type

	events   int
	logtypes map[uint64]struct{}
}

// Open decodes an in-memory IR stream, transparently unwrapping a
// Zstd/LZ4/S2 container frame first if the data starts with one.
func Open(data []byte, opts ...Option) (*Decoder, error) {
	var cfg Decoder
	for _, opt := range opts {
		opt(&cfg)
	}

	containerType := cfg.container
	if containerType == 0 {
		containerType = compress.Sniff(data)
	}

	codec, err := compress.GetCodec(containerType)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s container: %w", errs.ErrCorrupted, containerType, err)
	}

	return NewDecoder(reader.NewBytesReader(payload), opts...)
}

// NewDecoder reads the magic number and preamble from r and returns a
// Decoder positioned at the first message. The reader must supply a bare
// (uncompressed) IR stream; use Open for container handling.
func NewDecoder(r reader.Reader, opts ...Option) (*Decoder, error) {
	d := &Decoder{
		r:        r,
		logtypes: make(map[uint64]struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}

	mode, err := decoder.EncodingMode(r)
	if err != nil {
		return nil, err
	}
	d.mode = mode

	metadataType, payload, err := decoder.DecodePreamble(r)
	if err != nil {
		return nil, err
	}
	d.metadataType = metadataType
	d.rawMetadata = payload
	d.streamID = metadata.StreamID(payload)

	// Only the JSON metadata encoding is interpreted; other type tags keep
	// their raw bytes accessible through RawMetadata.
	if metadataType == protocol.MetadataEncodingJSON {
		m, err := metadata.Parse(metadataType, payload)
		if err != nil {
			return nil, err
		}
		d.meta = m
	}

	if d.refTimestampSet {
		d.lastTimestamp = d.refTimestamp
	} else if ts, ok := d.meta.ReferenceTimestamp(); ok {
		d.lastTimestamp = ts
	}

	return d, nil
}

// Next decodes the next event. It returns io.EOF at the stream's clean
// end-of-stream marker. Any other error is fatal for the stream.
func (d *Decoder) Next() (LogEvent, error) {
	res, err := decoder.DecodeNext(d.r, d.mode)
	if err != nil {
		return LogEvent{}, err
	}

	if d.strict && (res.EncodedVarsUsed < res.EncodedVars || res.DictVarsUsed < res.DictVars) {
		return LogEvent{}, fmt.Errorf("%w: used %d of %d encoded, %d of %d dictionary",
			errs.ErrLeftoverVars, res.EncodedVarsUsed, res.EncodedVars, res.DictVarsUsed, res.DictVars)
	}

	timestamp := res.Timestamp
	if d.mode == protocol.ModeFourByte {
		d.lastTimestamp += res.Timestamp
		timestamp = d.lastTimestamp
	}

	d.events++
	d.logtypes[hash.ID(res.Logtype)] = struct{}{}

	return LogEvent{Timestamp: timestamp, Message: res.Message}, nil
}

// Mode reports the stream's encoding mode, fixed by its magic number.
func (d *Decoder) Mode() protocol.Mode {
	return d.mode
}

// Metadata returns the parsed preamble metadata, or nil when the stream's
// metadata used an encoding this package does not interpret.
func (d *Decoder) Metadata() *metadata.Metadata {
	return d.meta
}

// MetadataType reports the preamble's metadata type tag.
func (d *Decoder) MetadataType() protocol.Tag {
	return d.metadataType
}

// RawMetadata returns the preamble's metadata payload bytes.
func (d *Decoder) RawMetadata() []byte {
	return d.rawMetadata
}

// StreamID reports the stream's hash-based identity, derived from its
// metadata payload.
func (d *Decoder) StreamID() uint64 {
	return d.streamID
}

// Stats reports what the decoder has seen so far.
func (d *Decoder) Stats() Stats {
	return Stats{
		Events:         d.events,
		UniqueLogtypes: len(d.logtypes),
	}
}
