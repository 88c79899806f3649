package sink

import (
	"fmt"
	"io"

	"github.com/omfileformat/go-omfile/errs"
)

// WriterSink adapts any io.Writer (an *os.File, a network connection, a
// pipe) to the Sink interface.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink wraps w as a Sink.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Write writes data to the underlying io.Writer in full or fails, wrapping
// the underlying error as ErrSinkFailure.
func (s *WriterSink) Write(data []byte) error {
	n, err := s.w.Write(data)
	if err != nil {
		return fmt.Errorf("%w: %w", errs.ErrSinkFailure, err)
	}
	if n != len(data) {
		return fmt.Errorf("%w: wrote %d of %d bytes", errs.ErrSinkFailure, n, len(data))
	}

	return nil
}
