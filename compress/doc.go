// Package compress provides the codecs behind sink.CompressingSink, the
// optional whole-stream archival wrapper around a backend sink (see
// SPEC_FULL.md §5).
//
// This package has nothing to do with the OM file's own chunk compression:
// that codec lives in internal/bitpack and is the only compression stage a
// decoder needs to understand. The codecs here operate on an entire
// finished OM file as an opaque byte blob, for callers who want to shrink
// it further before it leaves the process (cold storage, upload).
//
// # Supported algorithms
//
//   - None (format.CompressionNone): no-op, for testing and baselines.
//   - Zstd (format.CompressionZstd): best ratio, moderate speed. Best for
//     cold storage and long-term retention.
//   - S2 (format.CompressionS2): balanced ratio and speed.
//   - LZ4 (format.CompressionLZ4): fastest decompression, moderate ratio.
//
// # Usage
//
//	codec, _ := compress.CreateCodec(format.CompressionZstd, "archive")
//	archived := sink.NewCompressingSink(underlying, codec)
package compress
