// Package errs defines the sentinel errors returned by this module.
//
// Callers should test for a specific failure with errors.Is, since most
// call sites wrap a sentinel with fmt.Errorf("%w: ...", errs.ErrXxx) to add
// the offending values.
package errs

import "errors"

var (
	// ErrDimensionMismatch is returned when the caller's array dimensions,
	// array length, or read-window rank disagree with the encoder's rank.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrOutOfRange is returned when a read-window bound is negative,
	// exceeds the source array's extent, or is empty/inverted.
	ErrOutOfRange = errors.New("read window out of range")

	// ErrChunkAlignment is returned when a read window does not land on
	// chunk-grid boundaries on a non-fastest axis.
	ErrChunkAlignment = errors.New("read window is not chunk-aligned")

	// ErrChunkOverflow is returned when a write would emit more chunks
	// than the file's chunk grid has room for.
	ErrChunkOverflow = errors.New("chunk write would exceed chunk grid")

	// ErrSinkFailure wraps an error returned by the backend sink. Once
	// returned, the encoder that produced it is no longer usable.
	ErrSinkFailure = errors.New("backend sink write failed")

	// ErrBufferTooSmall reports that the write buffer's headroom is
	// insufficient for the next packed chunk. The encoder's write buffer
	// grows on demand, so no code path in this module currently returns it.
	ErrBufferTooSmall = errors.New("write buffer too small for next chunk")

	// ErrEncoderFinished is returned by any call made to an Encoder after
	// WriteTrailer has completed or a prior call has already failed with
	// ErrSinkFailure or ErrBufferTooSmall.
	ErrEncoderFinished = errors.New("encoder is no longer usable")

	// ErrInvalidCompressionMode is returned when constructing an encoder
	// with a CompressionMode other than Linear or LogarithmicLinear.
	ErrInvalidCompressionMode = errors.New("invalid compression mode")

	// ErrInvalidScaleFactor is returned when the scale factor is zero,
	// non-finite, or otherwise unusable.
	ErrInvalidScaleFactor = errors.New("invalid scale factor")

	// ErrEmptyRead is returned when the caller passes a read window with
	// a zero-length axis; spec requires the caller never invoke the
	// walker in that case.
	ErrEmptyRead = errors.New("read window is empty")
)
