package omfile

import (
	"fmt"
	"math"

	"github.com/omfileformat/go-omfile/errs"
	"github.com/omfileformat/go-omfile/format"
	"github.com/omfileformat/go-omfile/internal/options"
)

// Option configures a NewEncoder call. See WithCompressionMode,
// WithScaleFactor, and WithChunkDigests.
type Option = options.Option[*config]

// WithCompressionMode selects how float32 values are mapped to i16 codes.
// The default is format.Linear.
func WithCompressionMode(mode format.CompressionMode) Option {
	return options.New(func(c *config) error {
		return c.setMode(mode)
	})
}

// WithScaleFactor sets the quantizer's scale factor. It must be non-zero
// and finite. The default is 1.0.
func WithScaleFactor(scale float32) Option {
	return options.New(func(c *config) error {
		return c.setScale(scale)
	})
}

// WithChunkDigests enables the optional chunkDigests trailer extension: one
// xxHash64 digest per chunk, recording each chunk's packed bytes for a
// reader to verify without decoding. Disabled by default.
func WithChunkDigests(enabled bool) Option {
	return options.NoError(func(c *config) {
		c.setChunkDigests(enabled)
	})
}

func invalidModeError(mode format.CompressionMode) error {
	return fmt.Errorf("%w: %s", errs.ErrInvalidCompressionMode, mode)
}

func validateScale(scale float32) error {
	if scale == 0 || math.IsNaN(float64(scale)) || math.IsInf(float64(scale), 0) {
		return fmt.Errorf("%w: %v", errs.ErrInvalidScaleFactor, scale)
	}

	return nil
}
