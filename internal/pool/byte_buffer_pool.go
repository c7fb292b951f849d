package pool

import "sync"

// Reconstructed log messages are usually well under 4KiB, so buffers start
// there. A buffer that ballooned past 64KiB while decoding one oversized
// message is dropped at Put time rather than pinned in the pool.
const (
	MessageBufferDefaultSize  = 4 << 10  // 4KiB
	MessageBufferMaxThreshold = 64 << 10 // 64KiB
)

type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes() returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// String returns the buffer contents as a freshly allocated string.
func (bb *ByteBuffer) String() string {
	return string(bb.B)
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// MustWrite writes data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// MustWriteString writes s to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWriteString(s string) {
	bb.B = append(bb.B, s...)
}

// WriteByte appends a single byte to the buffer.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

// Grow ensures the buffer can take requiredBytes more bytes without another
// allocation. Capacity doubles (from at least the default size) until the
// requirement fits, so a message that outgrows its buffer reallocates at most
// a logarithmic number of times.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	need := len(bb.B) + requiredBytes
	if need <= cap(bb.B) {
		return
	}

	newCap := max(cap(bb.B), MessageBufferDefaultSize)
	for newCap < need {
		newCap *= 2
	}

	newBuf := make([]byte, len(bb.B), newCap)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// messageBufferPool holds decode scratch buffers between messages.
var messageBufferPool = sync.Pool{
	New: func() any {
		return NewByteBuffer(MessageBufferDefaultSize)
	},
}

// GetMessageBuffer retrieves an empty ByteBuffer from the message pool.
func GetMessageBuffer() *ByteBuffer {
	bb, _ := messageBufferPool.Get().(*ByteBuffer)
	return bb
}

// PutMessageBuffer returns a ByteBuffer to the message pool. Buffers whose
// capacity outgrew MessageBufferMaxThreshold are dropped instead, so one
// oversized message cannot keep that memory alive for the life of the
// process.
func PutMessageBuffer(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > MessageBufferMaxThreshold {
		return
	}

	bb.Reset()
	messageBufferPool.Put(bb)
}
