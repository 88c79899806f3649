package sink

import (
	"fmt"

	"github.com/omfileformat/go-omfile/compress"
	"github.com/omfileformat/go-omfile/errs"
	"github.com/omfileformat/go-omfile/internal/pool"
)

// CompressingSink is an additive archival wrapper (SPEC_FULL.md §5) around
// an underlying Sink: it buffers every Write and, on Close, compresses the
// accumulated bytes as a single block through codec and forwards the
// result to the underlying sink. It never changes the OM file's own bytes
// — a consumer wanting the raw OM file decompresses the archive first.
//
// Close is called after the encoder's writeTrailer has completed; calls
// after the first are no-ops. A CompressingSink written to after Close panics, matching the
// teacher's "finished" encoder pattern (internal/encoding/ts_delta.go).
type CompressingSink struct {
	underlying Sink
	codec      compress.Codec
	buf        *pool.ByteBuffer
	closed     bool
}

// NewCompressingSink creates a CompressingSink that will compress its
// accumulated bytes with codec and forward them to underlying on Close.
func NewCompressingSink(underlying Sink, codec compress.Codec) *CompressingSink {
	return &CompressingSink{
		underlying: underlying,
		codec:      codec,
		buf:        pool.GetWriteBuffer(),
	}
}

// Write buffers data; it is not forwarded to the underlying sink until
// Close.
func (s *CompressingSink) Write(data []byte) error {
	if s.closed {
		panic("sink: CompressingSink written to after Close")
	}

	s.buf.MustWrite(data)

	return nil
}

// Close compresses everything buffered so far and writes it to the
// underlying sink as one block, then releases the scratch buffer.
func (s *CompressingSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	compressed, err := s.codec.Compress(s.buf.Bytes())
	pool.PutWriteBuffer(s.buf)
	s.buf = nil
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSinkFailure, err)
	}

	return s.underlying.Write(compressed)
}
