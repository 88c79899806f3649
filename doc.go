// Package omfile implements the write path for the OM file format: a
// chunked, compressed, multi-dimensional floating-point array format.
//
// An Encoder quantizes float32 values to int16 under a scale factor and
// compression mode, 2D delta-encodes each chunk along its fastest axis,
// bit-packs the result, and streams header, chunk payloads, and trailer
// (LUT + dimensions + chunk shape) to a sink.Sink. See SPEC_FULL.md for
// the full format description; this package implements only the encoder,
// not a matching reader.
//
// Typical usage:
//
//	enc, err := omfile.NewEncoder(grid.Shape{4, 8}, grid.Shape{2, 8},
//		omfile.WithScaleFactor(100), omfile.WithCompressionMode(format.Linear))
//	defer enc.Close()
//
//	s := sink.NewBufferSink()
//	if err := enc.WriteHeader(s); err != nil { ... }
//	if err := enc.WriteData(array, grid.Shape{2, 8}, grid.Region{Lo: []int{0, 0}, Hi: []int{2, 8}}, s); err != nil { ... }
//	if err := enc.WriteTrailer(s); err != nil { ... }
package omfile
