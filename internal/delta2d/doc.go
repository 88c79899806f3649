// Package delta2d implements the chunk's second compression stage: an
// in-place transform over a logically rows×cols view of a chunk's
// quantized int16 values that replaces each row after the first with its
// element-wise difference from the preceding row. Arithmetic wraps at the
// int16 boundary (unlike the quantizer, which saturates).
//
// Only the forward transform is exported; this module writes OM files, it
// does not read them. The inverse lives in this package's test file,
// exercised only to verify Apply is reversible.
package delta2d
