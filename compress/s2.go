package compress

import "github.com/klauspost/compress/s2"

// S2Compressor is the balanced-ratio, balanced-speed codec sink.CompressingSink
// can use: a middle ground between LZ4Compressor's decode speed and
// ZstdCompressor's ratio.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor with default settings.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses an entire finished OM file as one block using S2.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress reverses Compress, recovering the original archived OM file
// bytes.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
