package irstream

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/irstream/compress"
	"github.com/arloliu/irstream/endian"
	"github.com/arloliu/irstream/errs"
	"github.com/arloliu/irstream/protocol"
	"github.com/arloliu/irstream/reader"
)

var wire = endian.GetBigEndianEngine()

// buildStream assembles a complete IR stream: magic, JSON preamble, the
// given message sections, and the end-of-stream marker.
func buildStream(t *testing.T, mode protocol.Mode, meta string, messages ...[]byte) []byte {
	t.Helper()

	var buf []byte
	if mode == protocol.ModeFourByte {
		buf = append(buf, protocol.MagicNumberFourByte[:]...)
	} else {
		buf = append(buf, protocol.MagicNumberEightByte[:]...)
	}

	buf = append(buf, byte(protocol.MetadataEncodingJSON), byte(protocol.MetadataLengthUByte), uint8(len(meta)))
	buf = append(buf, meta...)

	for _, m := range messages {
		buf = append(buf, m...)
	}

	return append(buf, byte(protocol.Eof))
}

// staticMsg8 frames a static logtype with an absolute timestamp.
func staticMsg8(logtype string, ts int64) []byte {
	var buf []byte
	buf = append(buf, byte(protocol.LogtypeStrLenUByte), uint8(len(logtype)))
	buf = append(buf, logtype...)
	buf = append(buf, byte(protocol.TimestampVal))

	return wire.AppendUint64(buf, uint64(ts))
}

// staticMsg4 frames a static logtype with a one-byte timestamp delta.
func staticMsg4(logtype string, delta int8) []byte {
	var buf []byte
	buf = append(buf, byte(protocol.LogtypeStrLenUByte), uint8(len(logtype)))
	buf = append(buf, logtype...)

	return append(buf, byte(protocol.TimestampDeltaByte), uint8(delta))
}

// intVarMsg4 frames one encoded integer variable, a logtype consuming it,
// and a one-byte delta.
func intVarMsg4(value int32, delta int8) []byte {
	var buf []byte
	buf = append(buf, byte(protocol.VarFourByteEncoding))
	buf = wire.AppendUint32(buf, uint32(value))
	logtype := "n=" + string(protocol.PlaceholderInteger)
	buf = append(buf, byte(protocol.LogtypeStrLenUByte), uint8(len(logtype)))
	buf = append(buf, logtype...)

	return append(buf, byte(protocol.TimestampDeltaByte), uint8(delta))
}

// leftoverVarMsg8 frames an encoded variable that no placeholder consumes.
func leftoverVarMsg8(logtype string, value int64, ts int64) []byte {
	var buf []byte
	buf = append(buf, byte(protocol.VarEightByteEncoding))
	buf = wire.AppendUint64(buf, uint64(value))
	buf = append(buf, byte(protocol.LogtypeStrLenUByte), uint8(len(logtype)))
	buf = append(buf, logtype...)
	buf = append(buf, byte(protocol.TimestampVal))

	return wire.AppendUint64(buf, uint64(ts))
}

const testMeta = `{"VERSION":"v0.0.1","TZ_ID":"America/Toronto","REFERENCE_TIMESTAMP":"1000"}`

func TestOpenEightByteStream(t *testing.T) {
	require := require.New(t)

	data := buildStream(t, protocol.ModeEightByte, testMeta,
		staticMsg8("first event", 1700000000000),
		staticMsg8("second event", 1700000000250),
	)

	d, err := Open(data)
	require.NoError(err)
	require.Equal(protocol.ModeEightByte, d.Mode())
	require.Equal(protocol.MetadataEncodingJSON, d.MetadataType())
	require.NotNil(d.Metadata())
	require.Equal("v0.0.1", d.Metadata().Version)
	require.Equal(testMeta, string(d.RawMetadata()))
	require.NotZero(d.StreamID())

	ev, err := d.Next()
	require.NoError(err)
	require.Equal(LogEvent{Timestamp: 1700000000000, Message: "first event"}, ev)

	ev, err = d.Next()
	require.NoError(err)
	require.Equal(LogEvent{Timestamp: 1700000000250, Message: "second event"}, ev)

	_, err = d.Next()
	require.ErrorIs(err, io.EOF)

	stats := d.Stats()
	require.Equal(2, stats.Events)
	require.Equal(2, stats.UniqueLogtypes)
}

func TestOpenFourByteDeltaAccumulation(t *testing.T) {
	require := require.New(t)

	// Reference timestamp 1000; deltas +5, -2, +10
	data := buildStream(t, protocol.ModeFourByte, testMeta,
		staticMsg4("a", 5),
		staticMsg4("b", -2),
		staticMsg4("c", 10),
	)

	d, err := Open(data)
	require.NoError(err)
	require.Equal(protocol.ModeFourByte, d.Mode())

	want := []int64{1005, 1003, 1013}
	for i, wantTs := range want {
		ev, err := d.Next()
		require.NoError(err)
		require.Equal(wantTs, ev.Timestamp, "event %d", i)
	}

	_, err = d.Next()
	require.ErrorIs(err, io.EOF)
}

func TestWithReferenceTimestampOverride(t *testing.T) {
	require := require.New(t)

	data := buildStream(t, protocol.ModeFourByte, testMeta, staticMsg4("a", 1))

	d, err := Open(data, WithReferenceTimestamp(5000))
	require.NoError(err)

	ev, err := d.Next()
	require.NoError(err)
	require.Equal(int64(5001), ev.Timestamp)
}

func TestReferenceTimestampAbsentStartsAtZero(t *testing.T) {
	require := require.New(t)

	data := buildStream(t, protocol.ModeFourByte, `{"VERSION":"v0.0.1"}`, staticMsg4("a", 7))

	d, err := Open(data)
	require.NoError(err)

	ev, err := d.Next()
	require.NoError(err)
	require.Equal(int64(7), ev.Timestamp)
}

func TestStrictVariableCounts(t *testing.T) {
	require := require.New(t)

	data := buildStream(t, protocol.ModeEightByte, testMeta,
		leftoverVarMsg8("no placeholders", 42, 1),
	)

	// Permissive by default, matching the reference decoder
	d, err := Open(data)
	require.NoError(err)
	ev, err := d.Next()
	require.NoError(err)
	require.Equal("no placeholders", ev.Message)

	// Strict mode rejects the leftover variable
	d, err = Open(data, WithStrictVariableCounts())
	require.NoError(err)
	_, err = d.Next()
	require.ErrorIs(err, errs.ErrLeftoverVars)
	require.ErrorIs(err, errs.ErrDecode)
}

func TestOpenCompressedContainers(t *testing.T) {
	bare := buildStream(t, protocol.ModeEightByte, testMeta, staticMsg8("compressed stream", 99))

	for _, containerType := range []compress.Type{compress.TypeZstd, compress.TypeS2, compress.TypeLZ4} {
		t.Run(containerType.String(), func(t *testing.T) {
			require := require.New(t)

			codec, err := compress.GetCodec(containerType)
			require.NoError(err)
			wrapped, err := codec.Compress(bare)
			require.NoError(err)

			d, err := Open(wrapped)
			require.NoError(err)

			ev, err := d.Next()
			require.NoError(err)
			require.Equal("compressed stream", ev.Message)
			require.Equal(int64(99), ev.Timestamp)
		})
	}
}

func TestOpenWithForcedContainer(t *testing.T) {
	require := require.New(t)

	bare := buildStream(t, protocol.ModeEightByte, testMeta, staticMsg8("forced", 1))

	codec, err := compress.GetCodec(compress.TypeZstd)
	require.NoError(err)
	wrapped, err := codec.Compress(bare)
	require.NoError(err)

	d, err := Open(wrapped, WithContainer(compress.TypeZstd))
	require.NoError(err)

	ev, err := d.Next()
	require.NoError(err)
	require.Equal("forced", ev.Message)
}

func TestOpenCorruptedContainer(t *testing.T) {
	// A zstd magic with garbage behind it fails at decompression
	junk := []byte{0x28, 0xB5, 0x2F, 0xFD, 0x00, 0x01, 0x02}
	_, err := Open(junk)
	require.ErrorIs(t, err, errs.ErrCorrupted)
}

func TestOpenCorruptedMagic(t *testing.T) {
	_, err := Open([]byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00})
	require.ErrorIs(t, err, errs.ErrCorrupted)
}

func TestNewDecoderOverStreamReader(t *testing.T) {
	require := require.New(t)

	data := buildStream(t, protocol.ModeFourByte, testMeta,
		intVarMsg4(42, -3),
	)

	d, err := NewDecoder(reader.NewStreamReader(newOneByteReader(data)))
	require.NoError(err)

	ev, err := d.Next()
	require.NoError(err)
	require.Equal("n=42", ev.Message)
	require.Equal(int64(997), ev.Timestamp)

	_, err = d.Next()
	require.ErrorIs(err, io.EOF)
}

func TestStatsCountsUniqueLogtypes(t *testing.T) {
	require := require.New(t)

	data := buildStream(t, protocol.ModeFourByte, testMeta,
		intVarMsg4(1, 1),
		intVarMsg4(2, 1),
		intVarMsg4(3, 1),
		staticMsg4("other", 1),
	)

	d, err := Open(data)
	require.NoError(err)
	for {
		if _, err := d.Next(); err != nil {
			require.ErrorIs(err, io.EOF)
			break
		}
	}

	stats := d.Stats()
	require.Equal(4, stats.Events)
	// Three events share one logtype template
	require.Equal(2, stats.UniqueLogtypes)
}

// oneByteReader feeds a byte at a time, exercising the stream reader's
// buffering.
type oneByteReader struct {
	data []byte
	pos  int
}

func newOneByteReader(data []byte) *oneByteReader {
	return &oneByteReader{data: data}
}

func (r *oneByteReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	p[0] = r.data[r.pos]
	r.pos++

	return 1, nil
}
