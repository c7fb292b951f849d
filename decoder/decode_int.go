package decoder

import (
	"unsafe"

	"github.com/arloliu/irstream/endian"
	"github.com/arloliu/irstream/protocol"
	"github.com/arloliu/irstream/reader"
)

// wire is the IR stream byte order.
var wire = endian.GetBigEndianEngine()

// wireInteger enumerates the fixed-width integers the IR stream serializes.
type wireInteger interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// readInt reads one integer of T's width from r. Multi-byte values are
// big-endian on the wire; signed types keep their sign through the full-width
// two's complement conversion.
func readInt[T wireInteger](r reader.Reader) (T, error) {
	var v T
	size := int(unsafe.Sizeof(v))

	var buf [8]byte
	if err := r.ReadExact(buf[:size]); err != nil {
		return 0, err
	}

	var u uint64
	switch size {
	case 1:
		u = uint64(buf[0])
	case 2:
		u = uint64(wire.Uint16(buf[:2]))
	case 4:
		u = uint64(wire.Uint32(buf[:4]))
	case 8:
		u = wire.Uint64(buf[:8])
	}

	return T(u), nil
}

// readTag reads the next one-byte framing tag.
func readTag(r reader.Reader) (protocol.Tag, error) {
	v, err := readInt[uint8](r)

	return protocol.Tag(v), err
}
