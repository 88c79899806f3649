package grid

import (
	"fmt"

	"github.com/omfileformat/go-omfile/errs"
)

// WarnBytesPerChunk is the recommended upper bound (spec §3) on the
// uncompressed byte size of a single chunk's quantized values: ∏cᵢ·4 ≤
// 16 MiB. Exceeding it is a warning, not a construction error.
const WarnBytesPerChunk = 16 * 1024 * 1024

// SweetSpotMin and SweetSpotMax bound the documented (but unenforced)
// sweet spot for a chunk's total element count (spec §3).
const (
	SweetSpotMin = 2000
	SweetSpotMax = 16000
)

// Chunking pairs an array's Dims with its Chunk shape and is the sole
// source of truth for chunk-grid arithmetic: chunk counts per axis, total
// chunk count, row-major chunk indexing, and per-chunk extents.
type Chunking struct {
	Dims  Shape
	Chunk Shape

	chunksPerAxis Shape
}

// NewChunking validates dims and chunk (matching rank, every extent >= 1)
// and returns a ready-to-use Chunking.
func NewChunking(dims, chunk Shape) (*Chunking, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("%w: dimensions must have rank >= 1", errs.ErrDimensionMismatch)
	}
	if len(dims) != len(chunk) {
		return nil, fmt.Errorf("%w: %d dimensions, %d chunk dimensions", errs.ErrDimensionMismatch, len(dims), len(chunk))
	}
	if err := validateAxes("dims", dims); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDimensionMismatch, err)
	}
	if err := validateAxes("chunk", chunk); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDimensionMismatch, err)
	}

	c := &Chunking{Dims: dims.Clone(), Chunk: chunk.Clone()}
	c.chunksPerAxis = make(Shape, len(dims))
	for i := range dims {
		c.chunksPerAxis[i] = (dims[i] + chunk[i] - 1) / chunk[i]
	}

	return c, nil
}

// Rank returns the number of axes.
func (c *Chunking) Rank() int { return c.Dims.Rank() }

// ChunksPerAxis returns Kᵢ = ⌈dᵢ/cᵢ⌉ for each axis.
func (c *Chunking) ChunksPerAxis() Shape { return c.chunksPerAxis.Clone() }

// TotalChunks returns K = ∏Kᵢ, the total number of chunks in the file.
func (c *Chunking) TotalChunks() int { return c.chunksPerAxis.Count() }

// ChunkIndex computes the row-major linear chunk index of the given chunk
// coordinates: idx = ((…(k₀·K₁ + k₁)·K₂ + k₂)…)·K_{R-1} + k_{R-1}.
func (c *Chunking) ChunkIndex(coords []int) int {
	idx := 0
	for i, k := range coords {
		idx = idx*c.chunksPerAxis[i] + k
	}

	return idx
}

// Coords decomposes a row-major linear chunk index back into per-axis
// chunk coordinates. It is the inverse of ChunkIndex.
func (c *Chunking) Coords(idx int) []int {
	coords := make([]int, c.Rank())
	for i := c.Rank() - 1; i >= 0; i-- {
		k := c.chunksPerAxis[i]
		coords[i] = idx % k
		idx /= k
	}

	return coords
}

// ChunkExtent returns the actual element count of chunk coordinate k on
// axis i: lᵢ = min((kᵢ+1)·cᵢ, dᵢ) − kᵢ·cᵢ. The last chunk on an axis may be
// partial; every other chunk has extent Chunk[i].
func (c *Chunking) ChunkExtent(axis, k int) int {
	hi := (k + 1) * c.Chunk[axis]
	if hi > c.Dims[axis] {
		hi = c.Dims[axis]
	}

	return hi - k*c.Chunk[axis]
}

// ChunkShapeAt returns the per-axis extents of the chunk at coords,
// accounting for any partial trailing chunk on each axis.
func (c *Chunking) ChunkShapeAt(coords []int) Shape {
	out := make(Shape, c.Rank())
	for i, k := range coords {
		out[i] = c.ChunkExtent(i, k)
	}

	return out
}

// Warnings returns human-readable advisory messages about this chunking,
// per spec §3's non-enforced sizing guidance. An empty slice means the
// chunk shape is within the documented sweet spot.
func (c *Chunking) Warnings() []string {
	var warnings []string

	bytesPerChunk := c.Chunk.Count() * 4
	if bytesPerChunk > WarnBytesPerChunk {
		warnings = append(warnings, fmt.Sprintf(
			"chunk size %d bytes exceeds the recommended %d byte ceiling", bytesPerChunk, WarnBytesPerChunk))
	}

	elems := c.Chunk.Count()
	if elems < SweetSpotMin || elems > SweetSpotMax {
		warnings = append(warnings, fmt.Sprintf(
			"chunk element count %d is outside the documented sweet spot [%d, %d]", elems, SweetSpotMin, SweetSpotMax))
	}

	return warnings
}
