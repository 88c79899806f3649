package compress

import (
	"fmt"

	"github.com/omfileformat/go-omfile/format"
)

// Compressor compresses an arbitrary byte stream.
//
// Unlike the bitpack codec in internal/bitpack, which is the OM file's own
// chunk-level compression stage, a Compressor here operates on an entire
// already-framed OM file and is used only by sink.CompressingSink (see
// SPEC_FULL.md §5) — an optional whole-stream archival wrapper around the
// backend sink.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor. Provided for symmetry and for callers
// that need to inspect a compressed archival blob outside of this module.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec for the given
// compression type.
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}
