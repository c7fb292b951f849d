package decoder

import (
	"github.com/arloliu/irstream/endian"
	"github.com/arloliu/irstream/protocol"
	"github.com/arloliu/irstream/reader"
)

// streamBuilder hand-assembles wire-exact IR byte sequences for tests. The
// public module is decode-only, so tests lay streams out by hand: tag by
// tag, big-endian field by big-endian field.
type streamBuilder struct {
	buf []byte
}

var testWire = endian.GetBigEndianEngine()

func newStream() *streamBuilder {
	return &streamBuilder{}
}

func (b *streamBuilder) magic(mode protocol.Mode) *streamBuilder {
	if mode == protocol.ModeFourByte {
		b.buf = append(b.buf, protocol.MagicNumberFourByte[:]...)
	} else {
		b.buf = append(b.buf, protocol.MagicNumberEightByte[:]...)
	}

	return b
}

func (b *streamBuilder) tag(t protocol.Tag) *streamBuilder {
	b.buf = append(b.buf, byte(t))

	return b
}

func (b *streamBuilder) u8(v uint8) *streamBuilder {
	b.buf = append(b.buf, v)

	return b
}

func (b *streamBuilder) u16(v uint16) *streamBuilder {
	b.buf = testWire.AppendUint16(b.buf, v)

	return b
}

func (b *streamBuilder) u32(v uint32) *streamBuilder {
	b.buf = testWire.AppendUint32(b.buf, v)

	return b
}

func (b *streamBuilder) u64(v uint64) *streamBuilder {
	b.buf = testWire.AppendUint64(b.buf, v)

	return b
}

func (b *streamBuilder) i8(v int8) *streamBuilder {
	return b.u8(uint8(v))
}

func (b *streamBuilder) i16(v int16) *streamBuilder {
	return b.u16(uint16(v))
}

func (b *streamBuilder) i32(v int32) *streamBuilder {
	return b.u32(uint32(v))
}

func (b *streamBuilder) i64(v int64) *streamBuilder {
	return b.u64(uint64(v))
}

func (b *streamBuilder) raw(data string) *streamBuilder {
	b.buf = append(b.buf, data...)

	return b
}

// logtype appends a LogtypeStrLenUByte-framed logtype.
func (b *streamBuilder) logtype(lt string) *streamBuilder {
	return b.tag(protocol.LogtypeStrLenUByte).u8(uint8(len(lt))).raw(lt)
}

// dictVar appends a VarStrLenUByte-framed dictionary variable.
func (b *streamBuilder) dictVar(v string) *streamBuilder {
	return b.tag(protocol.VarStrLenUByte).u8(uint8(len(v))).raw(v)
}

// encodedVar32 appends a four-byte encoded-variable record.
func (b *streamBuilder) encodedVar32(v int32) *streamBuilder {
	return b.tag(protocol.VarFourByteEncoding).i32(v)
}

// encodedVar64 appends an eight-byte encoded-variable record.
func (b *streamBuilder) encodedVar64(v int64) *streamBuilder {
	return b.tag(protocol.VarEightByteEncoding).i64(v)
}

// timestamp appends an absolute eight-byte timestamp record.
func (b *streamBuilder) timestamp(ts int64) *streamBuilder {
	return b.tag(protocol.TimestampVal).i64(ts)
}

// deltaByte appends an 8-bit timestamp delta record.
func (b *streamBuilder) deltaByte(d int8) *streamBuilder {
	return b.tag(protocol.TimestampDeltaByte).i8(d)
}

// jsonPreamble appends a MetadataEncodingJSON preamble with a u8 length.
func (b *streamBuilder) jsonPreamble(payload string) *streamBuilder {
	return b.tag(protocol.MetadataEncodingJSON).
		tag(protocol.MetadataLengthUByte).
		u8(uint8(len(payload))).
		raw(payload)
}

func (b *streamBuilder) eof() *streamBuilder {
	return b.tag(protocol.Eof)
}

func (b *streamBuilder) bytes() []byte {
	return b.buf
}

func (b *streamBuilder) reader() *reader.BytesReader {
	return reader.NewBytesReader(b.buf)
}
