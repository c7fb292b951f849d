// Package endian provides the byte order engine for IR stream decoding.
//
// The IR stream serializes every multi-byte numeric field (length prefixes,
// encoded-variable words, timestamps, deltas) in big-endian byte order, so
// decoder code uses GetBigEndianEngine():
//
//	import "github.com/arloliu/irstream/endian"
//
//	engine := endian.GetBigEndianEngine()
//	value := engine.Uint32(buf[:4])
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine. This is the wire order of
// every multi-byte numeric field in the IR stream format.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
