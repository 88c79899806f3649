package compress

import (
	"bytes"
	"errors"
	"testing"

	"github.com/omfileformat/go-omfile/format"
	"github.com/stretchr/testify/require"
)

// getAllCodecs returns one instance of every codec sink.CompressingSink can
// be constructed with, keyed by the format.CompressionType it implements.
func getAllCodecs() map[format.CompressionType]Codec {
	return map[format.CompressionType]Codec{
		format.CompressionNone: NewNoOpCompressor(),
		format.CompressionS2:   NewS2Compressor(),
		format.CompressionLZ4:  NewLZ4Compressor(),
		format.CompressionZstd: NewZstdCompressor(),
	}
}

func TestCreateCodec_AllTypes(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone, format.CompressionS2, format.CompressionLZ4, format.CompressionZstd,
	} {
		codec, err := CreateCodec(ct, "archive")
		require.NoError(t, err)
		require.NotNil(t, codec)
	}
}

func TestCreateCodec_InvalidType(t *testing.T) {
	_, err := CreateCodec(format.CompressionType(99), "archive")
	require.Error(t, err)
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for ct, codec := range getAllCodecs() {
		t.Run(ct.String(), func(t *testing.T) {
			// NoOp/S2/LZ4 short-circuit nil input to nil; ZstdCompressor has
			// no such short-circuit and emits a minimal empty-content frame
			// instead, so only the round-trip is asserted here, not nilness.
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)

			decompressed, err = codec.Decompress(nil)
			require.NoError(t, err)
			require.Nil(t, decompressed)
		})
	}
}

// TestAllCodecs_RoundTrip round-trips representative archived-OM-file
// payloads through every codec sink.CompressingSink can wrap: a tiny file
// (header only), a file built from repetitive chunk data (the
// common case once bitpack has already squeezed the entropy out of real
// measurements), and a larger multi-chunk file.
func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{
			name: "header_only",
			data: []byte{0x4F, 0x4D, 0x03},
		},
		{
			name: "single_packed_chunk",
			data: bytes.Repeat([]byte{0x00, 0x01, 0x02, 0x03}, 512),
		},
		{
			name: "binary_trailer_fields",
			data: []byte{0x00, 0x01, 0x02, 0x03, 0xFF, 0xFE, 0xFD, 0xFC},
		},
		{
			name: "multi_chunk_file",
			data: bytes.Repeat([]byte("packed-int16-delta-bitpack-chunk-payload"), 512), // ~20KB
		},
		{
			name: "all_zero_chunk",
			data: make([]byte, 64*1024), // a chunk of constant values delta-collapses to zeros
		},
	}

	for ct, codec := range getAllCodecs() {
		t.Run(ct.String(), func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					require.NoError(t, err)
					require.NotNil(t, compressed)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, tc.data, decompressed, "decompressed archive must reproduce the original OM file bytes exactly")
				})
			}
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalidInputs := [][]byte{
		{0xFF, 0xFF, 0xFF, 0xFF},
		[]byte("this is not a compressed OM file"),
	}

	for ct, codec := range getAllCodecs() {
		if ct == format.CompressionNone {
			continue // NoOpCompressor never validates its input
		}

		t.Run(ct.String(), func(t *testing.T) {
			for _, data := range invalidInputs {
				_, err := codec.Decompress(data)
				require.Error(t, err)
			}
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const numGoroutines = 20
	payload := []byte("concurrent archival compression of an OM file under test")

	for ct, codec := range getAllCodecs() {
		t.Run(ct.String(), func(t *testing.T) {
			errs := make(chan error, numGoroutines)
			for i := 0; i < numGoroutines; i++ {
				go func() {
					compressed, err := codec.Compress(payload)
					if err != nil {
						errs <- err

						return
					}
					decompressed, err := codec.Decompress(compressed)
					if err != nil {
						errs <- err

						return
					}
					if !bytes.Equal(decompressed, payload) {
						errs <- errors.New("decompressed payload mismatch")

						return
					}
					errs <- nil
				}()
			}

			for i := 0; i < numGoroutines; i++ {
				require.NoError(t, <-errs)
			}
		})
	}
}
