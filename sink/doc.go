// Package sink implements the encoder's backend sink abstraction (spec
// §6): an append-only byte stream with a single Write operation, no seek
// and no flush semantics beyond append-and-durably-buffered.
//
// BufferSink and WriterSink are the two concrete backends an Encoder is
// typically driven with — an in-memory buffer for tests and small files,
// or anything implementing io.Writer (an *os.File, a network connection)
// for everything else. CompressingSink is an additive wrapper (SPEC_FULL.md
// §5) that archives a finished OM file through one of the compress
// package's codecs; it has nothing to do with the OM file's own bitpack
// compression.
package sink
