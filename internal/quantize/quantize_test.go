package quantize

import (
	"math"
	"testing"

	"github.com/omfileformat/go-omfile/errs"
	"github.com/omfileformat/go-omfile/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_NaNMapsToSentinel(t *testing.T) {
	got, err := Value(float32(math.NaN()), 1.0, format.Linear)
	require.NoError(t, err)
	assert.Equal(t, NaNSentinel, got)
	assert.Equal(t, int16(32767), got)
}

func TestValue_Linear(t *testing.T) {
	cases := []struct {
		v     float32
		scale float32
		want  int16
	}{
		{0, 1, 0},
		{1, 1, 1},
		{2, 1, 2},
		{3, 1, 3},
		{-1, 1, -1},
		{1.5, 2, 3},
		{0.5, 1, 1}, // half-away-from-zero
		{-0.5, 1, -1},
	}

	for _, c := range cases {
		got, err := Value(c.v, c.scale, format.Linear)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "v=%v scale=%v", c.v, c.scale)
	}
}

func TestValue_LogarithmicLinear(t *testing.T) {
	got, err := Value(0.0, 100, format.LogarithmicLinear)
	require.NoError(t, err)
	assert.Equal(t, int16(0), got)

	got, err = Value(9.0, 100, format.LogarithmicLinear)
	require.NoError(t, err)
	assert.Equal(t, int16(100), got) // round(log10(10)*100) = round(100) = 100
}

func TestValue_SaturatesHigh(t *testing.T) {
	got, err := Value(1e9, 1.0, format.Linear)
	require.NoError(t, err)
	assert.Equal(t, maxNonNaN, got)
	assert.NotEqual(t, NaNSentinel, got, "a saturating non-NaN value must not collide with the NaN sentinel")
}

func TestValue_SaturatesLow(t *testing.T) {
	got, err := Value(-1e9, 1.0, format.Linear)
	require.NoError(t, err)
	assert.Equal(t, int16(math.MinInt16), got)
}

func TestValue_ClampsJustBelowMax(t *testing.T) {
	// A value that rounds to exactly i16::MAX must be clamped to MAX-1.
	got, err := Value(32767, 1.0, format.Linear)
	require.NoError(t, err)
	assert.Equal(t, maxNonNaN, got)
}

func TestValue_InvalidMode(t *testing.T) {
	_, err := Value(1.0, 1.0, format.CompressionMode(99))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidCompressionMode)
}

func TestValue_InvalidScaleFactor(t *testing.T) {
	for _, scale := range []float32{0, float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1))} {
		_, err := Value(1.0, scale, format.Linear)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidScaleFactor)
	}
}
