package omfile

import (
	"fmt"

	"github.com/omfileformat/go-omfile/errs"
	"github.com/omfileformat/go-omfile/format"
	"github.com/omfileformat/go-omfile/grid"
	"github.com/omfileformat/go-omfile/internal/digest"
	"github.com/omfileformat/go-omfile/internal/options"
	"github.com/omfileformat/go-omfile/internal/pool"
	"github.com/omfileformat/go-omfile/section"
	"github.com/omfileformat/go-omfile/sink"
)

// Encoder writes a single OM file across a WriteHeader, one or more
// WriteData calls, and a WriteTrailer call, in that order. An Encoder
// tracks the persistent state a streaming write needs: how many chunks
// have been emitted so far (chunkIndex), their byte offsets relative to
// the end of the header (chunkOffsets), and the running byte count
// (totalBytesWritten) that those offsets are derived from.
//
// An Encoder is not reusable after WriteTrailer succeeds, nor after any
// call fails with ErrSinkFailure or ErrBufferTooSmall — both leave it
// permanently unusable (see errs.ErrEncoderFinished). A failed validation
// (ErrDimensionMismatch, ErrOutOfRange, ErrChunkAlignment,
// ErrChunkOverflow, ErrEmptyRead) does not: the caller may retry with
// corrected arguments.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	chunking    *grid.Chunking
	mode        format.CompressionMode
	scale       float32
	withDigests bool

	chunkOffsets []int64
	chunkDigests []uint64
	chunkIndex   int

	totalBytesWritten int64

	writeBuffer    *pool.ByteBuffer
	chunkScratch   []int16

	err      error
	finished bool
}

// NewEncoder creates an Encoder for an array of shape dims, chunked as
// chunk. Both must have the same rank and every axis extent must be >= 1.
func NewEncoder(dims, chunk grid.Shape, opts ...Option) (*Encoder, error) {
	chunking, err := grid.NewChunking(dims, chunk)
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	K := chunking.TotalChunks()

	e := &Encoder{
		chunking:     chunking,
		mode:         cfg.mode,
		scale:        cfg.scale,
		withDigests:  cfg.withDigests,
		chunkOffsets: make([]int64, K),
		writeBuffer:  pool.GetWriteBuffer(),
	}
	if cfg.withDigests {
		e.chunkDigests = make([]uint64, K)
	}

	return e, nil
}

// Close releases the Encoder's pooled write buffer. Safe to call more than
// once, and safe to call whether or not WriteTrailer ever ran.
func (e *Encoder) Close() {
	if e.writeBuffer != nil {
		pool.PutWriteBuffer(e.writeBuffer)
		e.writeBuffer = nil
	}
}

// Chunking exposes the Encoder's chunk-grid arithmetic, for callers that
// need to size or align an arrayRead window before calling WriteData.
func (e *Encoder) Chunking() *grid.Chunking {
	return e.chunking
}

func (e *Encoder) checkUsable() error {
	if e.err != nil {
		return e.err
	}
	if e.finished {
		return errs.ErrEncoderFinished
	}

	return nil
}

// fail records err as the Encoder's sticky failure state and returns err.
// Every further call returns errs.ErrEncoderFinished wrapping err. Used for
// backend sink failures and for errors raised while gathering a chunk.
func (e *Encoder) fail(err error) error {
	e.err = fmt.Errorf("%w: %w", errs.ErrEncoderFinished, err)

	return err
}

// WriteHeader writes the 3-byte OM file header to snk. It must be called
// exactly once, before any WriteData call.
func (e *Encoder) WriteHeader(snk sink.Sink) error {
	if err := e.checkUsable(); err != nil {
		return err
	}

	hdr := section.Header{}.Bytes()
	if err := snk.Write(hdr[:]); err != nil {
		return e.fail(fmt.Errorf("%w: %w", errs.ErrSinkFailure, err))
	}
	e.totalBytesWritten += int64(len(hdr))

	return nil
}

// WriteTrailer appends the chunk-offset LUT, dimensions, chunk shape, and
// lutStart pointer to snk, and marks the Encoder finished. Any chunk
// coordinate never reached by a WriteData call keeps its zero-initialized
// offset, matching spec §6's "initialized to 0" LUT semantics.
func (e *Encoder) WriteTrailer(snk sink.Sink) error {
	if err := e.checkUsable(); err != nil {
		return err
	}

	tr := section.Trailer{
		ChunkOffsets: e.chunkOffsets,
		Dims:         toInt64(e.chunking.Dims),
		Chunks:       toInt64(e.chunking.Chunk),
		Rank:         int64(e.chunking.Rank()),
		LutStart:     e.totalBytesWritten - int64(section.HeaderSize),
		ChunkDigests: e.chunkDigests,
	}

	buf := pool.GetWriteBuffer()
	defer pool.PutWriteBuffer(buf)

	if err := tr.AppendTo(buf); err != nil {
		return err
	}
	if err := snk.Write(buf.Bytes()); err != nil {
		return e.fail(fmt.Errorf("%w: %w", errs.ErrSinkFailure, err))
	}
	e.totalBytesWritten += int64(buf.Len())
	e.finished = true

	return nil
}

func toInt64(s grid.Shape) []int64 {
	out := make([]int64, len(s))
	for i, v := range s {
		out[i] = int64(v)
	}

	return out
}

// ensureChunkScratch returns e.chunkScratch resized to exactly n elements,
// reusing its backing array when it is large enough.
func (e *Encoder) ensureChunkScratch(n int) []int16 {
	if cap(e.chunkScratch) < n {
		e.chunkScratch = make([]int16, n)
	} else {
		e.chunkScratch = e.chunkScratch[:n]
	}

	return e.chunkScratch
}

// recordChunk stores packed's digest (if enabled) and advances chunkIndex.
// chunkOffsets[chunkIndex] must already hold packed's start offset, and
// totalBytesWritten must already include packed, before this is called.
func (e *Encoder) recordChunk(packed []byte) {
	if e.withDigests {
		e.chunkDigests[e.chunkIndex] = digest.Chunk(packed)
	}
	e.chunkIndex++
}
