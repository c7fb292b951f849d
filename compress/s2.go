package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/s2"
)

// S2Compressor wraps payloads in the S2 framed stream format. The framed
// format opens with the native "S2sTwO" stream identifier chunk, so S2
// containers are detectable by Sniff like the other frame formats.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data into an S2 framed stream.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	w := s2.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress decompresses an S2 framed stream back into the original payload.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return io.ReadAll(s2.NewReader(bytes.NewReader(data)))
}
