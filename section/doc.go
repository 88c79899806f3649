// Package section implements the two fixed framing pieces of an OM file
// that sit outside the chunk payload stream: the 3-byte Header and the
// trailing Trailer (LUT + dimensions + chunk shape + rank + lutStart, plus
// the optional chunk-digest extension). Grounded on the teacher's
// section package, which serialized its own fixed-size header/index
// structs directly to little-endian bytes; this module drops the
// teacher's runtime-selectable endianness (the format mandates
// little-endian only) and its bit-packed flag word (the OM trailer has no
// per-file flags beyond the digest bit folded into R).
package section
