package bitpack

import (
	"errors"
	"fmt"
	"math/bits"
)

// ErrTruncated is returned by Unpack16 when data ends before n values have
// been decoded.
var ErrTruncated = errors.New("bitpack: truncated input")

// blockSize is the number of int16 values sharing one bit-width header.
// 2048 keeps the header overhead at one byte per 4KB of source values,
// negligible at the documented chunk sweet spot of 2000-16000 elements.
const blockSize = 2048

// Bound returns the maximum number of bytes Pack16 can produce for n
// values: two bytes per 16-bit value worst case, plus a one-byte width
// header per block, plus slack for small n. It deliberately mirrors the
// shape of the illustrative bound(n) = n*2+32 formula while accounting for
// this codec's per-block header, which a pure value-count bound cannot.
func Bound(n int) int {
	if n <= 0 {
		return 32
	}

	return n*2 + 32 + n/blockSize + 1
}

// zigzag16 maps a signed int16 to an unsigned uint16 so that small-magnitude
// values of either sign end up as small unsigned numbers.
func zigzag16(x int16) uint16 {
	return uint16((x << 1) ^ (x >> 15))
}

// unzigzag16 reverses zigzag16.
func unzigzag16(z uint16) int16 {
	return int16((z >> 1) ^ -(z & 1))
}

// Pack16 encodes src as a sequence of fixed-size blocks, each prefixed by a
// one-byte bit width and followed by its values packed at that width,
// LSB-first, byte-aligned at the block boundary.
func Pack16(src []int16) []byte {
	if len(src) == 0 {
		return nil
	}

	out := make([]byte, 0, Bound(len(src)))

	for start := 0; start < len(src); start += blockSize {
		end := start + blockSize
		if end > len(src) {
			end = len(src)
		}
		block := src[start:end]

		zz := make([]uint16, len(block))
		var maxZ uint16
		for i, v := range block {
			z := zigzag16(v)
			zz[i] = z
			if z > maxZ {
				maxZ = z
			}
		}

		width := bits.Len16(maxZ)
		out = append(out, byte(width))
		if width == 0 {
			continue
		}

		var acc uint64
		var accBits uint
		for _, z := range zz {
			acc |= uint64(z) << accBits
			accBits += uint(width)

			for accBits >= 8 {
				out = append(out, byte(acc))
				acc >>= 8
				accBits -= 8
			}
		}
		if accBits > 0 {
			out = append(out, byte(acc))
		}
	}

	return out
}

// Unpack16 decodes n values packed by Pack16 from data.
func Unpack16(data []byte, n int) ([]int16, error) {
	if n == 0 {
		return nil, nil
	}

	out := make([]int16, n)
	pos := 0
	idx := 0

	for idx < n {
		if pos >= len(data) {
			return nil, fmt.Errorf("%w: block header at value %d", ErrTruncated, idx)
		}
		width := int(data[pos])
		pos++

		end := idx + blockSize
		if end > n {
			end = n
		}

		if width == 0 {
			for ; idx < end; idx++ {
				out[idx] = 0
			}

			continue
		}

		var acc uint64
		var accBits uint
		mask := uint64(1)<<uint(width) - 1

		for idx < end {
			for accBits < uint(width) {
				if pos >= len(data) {
					return nil, fmt.Errorf("%w: block data at value %d", ErrTruncated, idx)
				}
				acc |= uint64(data[pos]) << accBits
				pos++
				accBits += 8
			}

			z := uint16(acc & mask)
			acc >>= uint(width)
			accBits -= uint(width)
			out[idx] = unzigzag16(z)
			idx++
		}
	}

	return out, nil
}
