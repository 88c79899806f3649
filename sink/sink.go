package sink

// Sink is the encoder's abstract backend: an append-only byte stream that
// either accepts the given bytes in full or fails. There is no seek and no
// flush semantics beyond append-and-durably-buffered (spec §6). The
// encoder does not retain a Sink across calls; one is passed in per
// writeHeader/writeData/writeTrailer invocation.
type Sink interface {
	Write(data []byte) error
}
