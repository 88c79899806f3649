package quantize

import (
	"fmt"
	"math"

	"github.com/omfileformat/go-omfile/errs"
	"github.com/omfileformat/go-omfile/format"
)

// NaNSentinel is the reserved i16 code meaning "missing" (NaN on decode).
const NaNSentinel int16 = math.MaxInt16

// maxNonNaN is the largest code a non-NaN value may take; NaNSentinel is
// reserved, so a value that would round to it is clamped here instead.
const maxNonNaN int16 = math.MaxInt16 - 1

// Value converts v to its i16 code under scale and mode.
//
//   - NaN always maps to NaNSentinel.
//   - Linear quantizes v*scale.
//   - LogarithmicLinear quantizes log10(1+v)*scale, for heavy-tailed,
//     non-negative quantities.
//
// Rounding is round-half-away-from-zero, then saturated into
// [i16::MIN, i16::MAX-1]; a non-NaN value that would round to i16::MAX is
// clamped to i16::MAX-1 so NaNSentinel stays unambiguous on decode.
func Value(v float32, scale float32, mode format.CompressionMode) (int16, error) {
	if !mode.Valid() {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidCompressionMode, mode)
	}
	if scale == 0 || math.IsNaN(float64(scale)) || math.IsInf(float64(scale), 0) {
		return 0, fmt.Errorf("%w: %v", errs.ErrInvalidScaleFactor, scale)
	}

	if math.IsNaN(float64(v)) {
		return NaNSentinel, nil
	}

	var scaled float64
	switch mode {
	case format.Linear:
		scaled = float64(v) * float64(scale)
	case format.LogarithmicLinear:
		scaled = math.Log10(1+float64(v)) * float64(scale)
	}

	rounded := math.Round(scaled)

	switch {
	case rounded >= float64(math.MaxInt16):
		return maxNonNaN, nil
	case rounded <= float64(math.MinInt16):
		return math.MinInt16, nil
	default:
		return int16(rounded), nil
	}
}
