package grid

import (
	"fmt"

	"github.com/omfileformat/go-omfile/errs"
)

// Region is a hyper-rectangular, half-open read window [Lo[i], Hi[i]) into
// a dense source array, one pair per axis.
type Region struct {
	Lo []int
	Hi []int
}

// Rank returns the number of axes.
func (r Region) Rank() int { return len(r.Lo) }

// Extent returns Hi[axis] - Lo[axis], the number of elements this region
// spans on axis.
func (r Region) Extent(axis int) int { return r.Hi[axis] - r.Lo[axis] }

// Validate checks r against a source array's shape: matching rank, and on
// every axis 0 <= Lo <= Hi <= arrayShape[axis] with Lo < Hi (spec §7:
// DimensionMismatch, OutOfRange, ErrEmptyRead).
func (r Region) Validate(arrayShape Shape) error {
	if len(r.Lo) != len(r.Hi) {
		return fmt.Errorf("%w: read window has %d lo bounds, %d hi bounds", errs.ErrDimensionMismatch, len(r.Lo), len(r.Hi))
	}
	if len(r.Lo) != len(arrayShape) {
		return fmt.Errorf("%w: read window rank %d, array rank %d", errs.ErrDimensionMismatch, len(r.Lo), len(arrayShape))
	}

	for i := range r.Lo {
		lo, hi, a := r.Lo[i], r.Hi[i], arrayShape[i]
		if lo < 0 || hi > a {
			return fmt.Errorf("%w: axis %d range [%d,%d) outside array extent %d", errs.ErrOutOfRange, i, lo, hi, a)
		}
		if hi < lo {
			return fmt.Errorf("%w: axis %d range [%d,%d) has hi < lo", errs.ErrOutOfRange, i, lo, hi)
		}
		if hi == lo {
			return fmt.Errorf("%w: axis %d", errs.ErrEmptyRead, i)
		}
	}

	return nil
}

// AlignedTo checks that r is chunk-aligned against c on every axis except
// the fastest (last) axis: Lo and Hi must land on chunk-grid boundaries,
// with the sole exception of a trailing partial chunk at the array's own
// extent (spec §4.4). The fastest axis may be partial on any call.
func (r Region) AlignedTo(c *Chunking) error {
	for i := 0; i < r.Rank()-1; i++ {
		if !alignedAxis(r.Lo[i], r.Hi[i], c.Chunk[i], c.Dims[i]) {
			return fmt.Errorf("%w: axis %d range [%d,%d) is not chunk-aligned (chunk size %d)",
				errs.ErrChunkAlignment, i, r.Lo[i], r.Hi[i], c.Chunk[i])
		}
	}

	return nil
}

// alignedAxis reports whether [lo,hi) lands on chunk boundaries of size
// chunkSize within an axis of extent dim, tolerating hi == dim even when
// dim is not itself a multiple of chunkSize (the final partial chunk).
func alignedAxis(lo, hi, chunkSize, dim int) bool {
	if lo%chunkSize != 0 {
		return false
	}

	return hi%chunkSize == 0 || hi == dim
}
