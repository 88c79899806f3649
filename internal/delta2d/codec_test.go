package delta2d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// invert reverses Apply, used only to check Apply is reversible.
func invert(buf []int16, rows, cols int) {
	for r := 1; r < rows; r++ {
		cur := buf[r*cols : r*cols+cols]
		prev := buf[(r-1)*cols : (r-1)*cols+cols]
		for c := range cur {
			cur[c] += prev[c]
		}
	}
}

func TestApply_SpecExample(t *testing.T) {
	// dims=[2,4], input [[10,11,12,13],[12,13,14,15]]
	buf := []int16{10, 11, 12, 13, 12, 13, 14, 15}

	Apply(buf, 2, 4)

	assert.Equal(t, []int16{10, 11, 12, 13, 2, 2, 2, 2}, buf)
}

func TestApply_SingleRowIsNoOp(t *testing.T) {
	buf := []int16{1, 2, 3, 4}
	orig := append([]int16{}, buf...)

	Apply(buf, 1, 4)

	assert.Equal(t, orig, buf)
}

func TestApply_ThreeRowsUsesOriginalPrecedingRow(t *testing.T) {
	// Each row after the first diffs against the ORIGINAL preceding row,
	// not a previously-diffed one.
	buf := []int16{1, 1, 1, 3, 3, 3, 6, 6, 6}

	Apply(buf, 3, 3)

	assert.Equal(t, []int16{1, 1, 1, 2, 2, 2, 3, 3, 3}, buf)
}

func TestApply_Invert_RoundTrip(t *testing.T) {
	buf := []int16{100, -50, 32000, -32000, 1, 0, -1, 2, 99, -99, 0, 7}
	rows, cols := 3, 4
	orig := append([]int16{}, buf...)

	Apply(buf, rows, cols)
	invert(buf, rows, cols)

	assert.Equal(t, orig, buf)
}

func TestApply_WrappingArithmetic(t *testing.T) {
	buf := []int16{-32768, 32767}

	Apply(buf, 2, 1)

	// 32767 - (-32768) overflows int16 and wraps to -1.
	assert.Equal(t, []int16{-32768, -1}, buf)
}
