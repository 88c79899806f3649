// Package quantize converts float32 values to the int16 codes an OM chunk
// stores on disk, under a scale factor and a compression mode. A NaN input
// maps to the sentinel i16::MAX (32767), which is reserved for "missing":
// every non-NaN value that would otherwise round to MAX is clamped one
// below it, preserving the round-trip distinction.
package quantize
