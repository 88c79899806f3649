package section

import (
	"encoding/binary"
	"fmt"

	"github.com/omfileformat/go-omfile/errs"
	"github.com/omfileformat/go-omfile/internal/pool"
)

// Trailer holds the LUT and metadata a completed OM file appends after its
// chunk payload stream: chunk offsets, dimensions, chunk shape, rank, and
// the lutStart pointer. ChunkDigests is optional (see SPEC_FULL.md §6.2);
// when non-empty it is written right after ChunkOffsets and folds a flag
// bit into the encoded Rank field so the base layout of spec §6 is
// reproduced exactly when it is absent.
type Trailer struct {
	ChunkOffsets []int64
	Dims         []int64
	Chunks       []int64
	Rank         int64
	LutStart     int64
	ChunkDigests []uint64
}

// AppendTo serializes t as little-endian int64/uint64 fields onto buf, in
// the order spec §6 and SPEC_FULL.md §6.2 specify.
func (t Trailer) AppendTo(buf *pool.ByteBuffer) error {
	if len(t.Dims) != len(t.Chunks) {
		return fmt.Errorf("%w: %d dims, %d chunk dims", errs.ErrDimensionMismatch, len(t.Dims), len(t.Chunks))
	}
	if int64(len(t.Dims)) != t.Rank {
		return fmt.Errorf("%w: rank %d, %d dims", errs.ErrDimensionMismatch, t.Rank, len(t.Dims))
	}

	hasDigests := len(t.ChunkDigests) > 0
	if hasDigests && len(t.ChunkDigests) != len(t.ChunkOffsets) {
		return fmt.Errorf("%w: %d chunk offsets, %d chunk digests", errs.ErrDimensionMismatch, len(t.ChunkOffsets), len(t.ChunkDigests))
	}

	fieldCount := len(t.ChunkOffsets) + len(t.ChunkDigests) + len(t.Dims) + len(t.Chunks) + 2
	buf.Grow(fieldCount * 8)

	for _, v := range t.ChunkOffsets {
		appendInt64(buf, v)
	}
	for _, d := range t.ChunkDigests {
		appendUint64(buf, d)
	}
	for _, v := range t.Dims {
		appendInt64(buf, v)
	}
	for _, v := range t.Chunks {
		appendInt64(buf, v)
	}

	encodedRank := t.Rank << 1
	if hasDigests {
		encodedRank |= 1
	}
	appendInt64(buf, encodedRank)
	appendInt64(buf, t.LutStart)

	return nil
}

// Size returns the exact number of bytes AppendTo will write for t.
func (t Trailer) Size() int {
	n := len(t.ChunkOffsets) + len(t.ChunkDigests) + len(t.Dims) + len(t.Chunks) + 2

	return n * 8
}

func appendInt64(buf *pool.ByteBuffer, v int64) {
	appendUint64(buf, uint64(v))
}

func appendUint64(buf *pool.ByteBuffer, v uint64) {
	idx := buf.Len()
	buf.ExtendOrGrow(8)
	binary.LittleEndian.PutUint64(buf.B[idx:idx+8], v)
}
