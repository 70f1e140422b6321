package compactfloat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 1.5, 3.14159, -273.15, 1e10, 1.0123} {
		buf, err := Encode(nil, v, 0)
		require.NoError(t, err)

		got, n, ok := Decode(buf)
		require.True(t, ok)
		assert.Equal(t, len(buf), n)
		assert.InEpsilon(t, v, got, 1e-9, "value=%v", v)
	}
}

func TestRoundTripZero(t *testing.T) {
	buf, err := Encode(nil, 0, 5)
	require.NoError(t, err)
	got, _, ok := Decode(buf)
	require.True(t, ok)
	assert.Equal(t, float64(0), got)
}

func TestEncodeRejectsNaNAndInf(t *testing.T) {
	_, err := Encode(nil, math.NaN(), 0)
	assert.Error(t, err)

	_, err = Encode(nil, math.Inf(1), 0)
	assert.Error(t, err)
}

func TestEncodeRejectsOutOfRangeSignificantDigits(t *testing.T) {
	_, err := Encode(nil, 1.0, MaxSignificantDigits+1)
	assert.Error(t, err)

	_, err = Encode(nil, 1.0, -1)
	assert.Error(t, err)
}

func TestSignificantDigitsLimitsPrecision(t *testing.T) {
	buf, err := Encode(nil, 1.0/3.0, 3)
	require.NoError(t, err)
	got, _, ok := Decode(buf)
	require.True(t, ok)
	assert.InDelta(t, 0.333, got, 1e-3)
}
