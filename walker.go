package omfile

import (
	"fmt"

	"github.com/omfileformat/go-omfile/errs"
	"github.com/omfileformat/go-omfile/format"
	"github.com/omfileformat/go-omfile/grid"
	"github.com/omfileformat/go-omfile/internal/bitpack"
	"github.com/omfileformat/go-omfile/internal/delta2d"
	"github.com/omfileformat/go-omfile/internal/quantize"
	"github.com/omfileformat/go-omfile/section"
	"github.com/omfileformat/go-omfile/sink"
)

// WriteData walks the chunks covered by arrayRead — a hyper-rectangular
// window into array, whose shape is arrayShape — and, for each one,
// quantizes its elements, delta-2D transforms them, bit-packs the result,
// and flushes the packed bytes to snk before moving to the next chunk.
//
// Callers drive the encoder across one or more WriteData calls in strict
// chunk-major order: the chunks covered by one call must be exactly the
// next M chunks due in the file's row-major chunk order, where M is the
// number of chunks arrayRead spans. arrayRead must be chunk-aligned on
// every axis but the fastest (grid.Region.AlignedTo); the fastest axis may
// end short of a chunk boundary only at the array's own extent.
func (e *Encoder) WriteData(array []float32, arrayShape grid.Shape, arrayRead grid.Region, snk sink.Sink) error {
	if err := e.checkUsable(); err != nil {
		return err
	}

	if err := e.validateCall(array, arrayShape, arrayRead); err != nil {
		return err
	}

	callDims := make(grid.Shape, arrayRead.Rank())
	for i := range callDims {
		callDims[i] = arrayRead.Extent(i)
	}

	callChunking, err := grid.NewChunking(callDims, e.chunking.Chunk)
	if err != nil {
		return err
	}

	M := callChunking.TotalChunks()
	if e.chunkIndex+M > e.chunking.TotalChunks() {
		return fmt.Errorf("%w: %d chunks already written, %d more requested, grid holds %d",
			errs.ErrChunkOverflow, e.chunkIndex, M, e.chunking.TotalChunks())
	}

	rank := arrayRead.Rank()
	origin := make([]int, rank)

	for cOffset := 0; cOffset < M; cOffset++ {
		kCall := callChunking.Coords(cOffset)
		l := callChunking.ChunkShapeAt(kCall)

		for i := range origin {
			origin[i] = arrayRead.Lo[i] + kCall[i]*e.chunking.Chunk[i]
		}

		n := l.Count()
		dst := e.ensureChunkScratch(n)

		if err := gather(array, arrayShape, origin, l, dst, e.scale, e.mode); err != nil {
			return e.fail(err)
		}

		rows := n / l[rank-1]
		cols := l[rank-1]
		delta2d.Apply(dst, rows, cols)

		packed := bitpack.Pack16(dst)

		e.writeBuffer.MustWrite(packed)
		e.chunkOffsets[e.chunkIndex] = e.totalBytesWritten - int64(section.HeaderSize)
		e.totalBytesWritten += int64(len(packed))

		if err := snk.Write(e.writeBuffer.Bytes()); err != nil {
			return e.fail(fmt.Errorf("%w: %w", errs.ErrSinkFailure, err))
		}
		e.writeBuffer.Reset()

		e.recordChunk(packed)
	}

	return nil
}

func (e *Encoder) validateCall(array []float32, arrayShape grid.Shape, arrayRead grid.Region) error {
	rank := e.chunking.Rank()
	if arrayShape.Rank() != rank {
		return fmt.Errorf("%w: array has rank %d, encoder has rank %d", errs.ErrDimensionMismatch, arrayShape.Rank(), rank)
	}
	if len(array) != arrayShape.Count() {
		return fmt.Errorf("%w: array has %d elements, shape implies %d", errs.ErrDimensionMismatch, len(array), arrayShape.Count())
	}
	if err := arrayRead.Validate(arrayShape); err != nil {
		return err
	}
	if err := arrayRead.AlignedTo(e.chunking); err != nil {
		return err
	}

	return nil
}

// gather copies the hyper-rectangular chunk at origin (with extents l) out
// of array (shaped A), quantizing each float32 element to its i16 code in
// row-major order as it goes. It walks an explicit per-axis index vector
// over the R-1 slower axes rather than recursing, and copies one
// contiguous run along the fastest axis per iteration — the "locate,
// detect the linear run, gather and quantize" steps of the chunk walker
// collapsed into one pass, since quantization already requires touching
// every element individually.
func gather(array []float32, A grid.Shape, origin []int, l grid.Shape, dst []int16, scale float32, mode format.CompressionMode) error {
	R := len(A)

	if R == 1 {
		base := origin[0]
		for j := 0; j < l[0]; j++ {
			v, err := quantize.Value(array[base+j], scale, mode)
			if err != nil {
				return err
			}
			dst[j] = v
		}

		return nil
	}

	strides := make([]int, R)
	strides[R-1] = 1
	for i := R - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * A[i+1]
	}

	coord := make([]int, R-1)
	rowLen := l[R-1]
	d := 0

	for {
		off := origin[R-1]
		for i := 0; i < R-1; i++ {
			off += (origin[i] + coord[i]) * strides[i]
		}

		for j := 0; j < rowLen; j++ {
			v, err := quantize.Value(array[off+j], scale, mode)
			if err != nil {
				return err
			}
			dst[d] = v
			d++
		}

		axis := R - 2
		for axis >= 0 {
			coord[axis]++
			if coord[axis] < l[axis] {
				break
			}
			coord[axis] = 0
			axis--
		}
		if axis < 0 {
			break
		}
	}

	return nil
}
