package sink

import "github.com/omfileformat/go-omfile/internal/pool"

// BufferSink is an in-memory Sink, useful for tests and for callers who
// want the finished OM file as a []byte rather than streamed to a file or
// network connection.
type BufferSink struct {
	buf *pool.ByteBuffer
}

// NewBufferSink creates an empty BufferSink.
func NewBufferSink() *BufferSink {
	return &BufferSink{buf: pool.NewByteBuffer(pool.WriteBufferDefaultSize)}
}

// Write appends data to the buffer. It never fails.
func (s *BufferSink) Write(data []byte) error {
	s.buf.MustWrite(data)

	return nil
}

// Bytes returns everything written so far. The returned slice is valid
// until the next Write; callers needing a stable copy must clone it.
func (s *BufferSink) Bytes() []byte {
	return s.buf.Bytes()
}

// Len returns the number of bytes written so far.
func (s *BufferSink) Len() int {
	return s.buf.Len()
}
