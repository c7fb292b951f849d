// Package metadata interprets the preamble's metadata payload.
//
// The preamble framing (locating the payload bytes) lives in the decoder
// package; this package gives the bytes meaning. The only encoding producers
// write today is JSON, tagged protocol.MetadataEncodingJSON, carrying the
// encoder version, the timestamp rendering pattern, the producer's timezone,
// and — in four-byte streams — the reference timestamp that seeds delta
// accumulation.
package metadata

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/arloliu/irstream/errs"
	"github.com/arloliu/irstream/internal/hash"
	"github.com/arloliu/irstream/protocol"
)

// Metadata is the decoded preamble metadata of one IR stream.
//
// All fields are optional on the wire; absent fields are zero values. The
// reference timestamp is serialized as a decimal string by the encoder, so it
// is surfaced through ReferenceTimestamp rather than as a raw field.
type Metadata struct {
	Version                string `json:"VERSION,omitempty"`
	TimestampPattern       string `json:"TIMESTAMP_PATTERN,omitempty"`
	TimestampPatternSyntax string `json:"TIMESTAMP_PATTERN_SYNTAX,omitempty"`
	TimeZoneID             string `json:"TZ_ID,omitempty"`
	ReferenceTimestampStr  string `json:"REFERENCE_TIMESTAMP,omitempty"`
}

// Parse decodes a metadata payload of the given type tag. Only the JSON
// encoding is supported; any other type tag is a corruption signal for
// callers that require interpreted metadata.
func Parse(metadataType protocol.Tag, payload []byte) (*Metadata, error) {
	if metadataType != protocol.MetadataEncodingJSON {
		return nil, fmt.Errorf("%w: type tag 0x%02X", errs.ErrInvalidMetadataType, uint8(metadataType))
	}

	var m Metadata
	if err := json.Unmarshal(payload, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrCorrupted, err)
	}

	return &m, nil
}

// ReferenceTimestamp returns the stream's reference timestamp in
// epoch milliseconds, and whether the metadata carried one. Four-byte streams
// accumulate their per-message deltas onto this value.
func (m *Metadata) ReferenceTimestamp() (int64, bool) {
	if m == nil || m.ReferenceTimestampStr == "" {
		return 0, false
	}

	ts, err := strconv.ParseInt(m.ReferenceTimestampStr, 10, 64)
	if err != nil {
		return 0, false
	}

	return ts, true
}

// StreamID derives a stable 64-bit identity for a stream from its raw
// metadata payload. Producers write the metadata once per stream, so equal
// IDs identify re-reads of the same stream without retaining the payload.
func StreamID(payload []byte) uint64 {
	return hash.Sum64(payload)
}
