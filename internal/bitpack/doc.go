// Package bitpack implements the final compression stage of an OM chunk: a
// reversible, variable-width packing of zigzag-mapped int16 values.
//
// Values are processed in fixed-size blocks. Each block is prefixed with a
// single byte giving the bit width needed to hold its largest zigzag value,
// then every value in the block is packed using that width, LSB-first, with
// the block itself byte-aligned. This trades a little space (up to one
// width byte per 2048 values) for a packer that needs no shared dictionary
// and can size its output buffer up front via Bound.
//
// Grounded on the teacher's delta-of-delta timestamp encoder
// (internal/encoding/ts_delta.go), which established the zigzag-then-pack
// shape this module reuses; that encoder used a varint tail instead of
// fixed-width blocks because timestamp deltas cluster near zero, whereas
// post-delta2D chunk residuals do not cluster predictably enough for varint
// to reliably beat a fixed width per block.
package bitpack
