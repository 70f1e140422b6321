package vlq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendKnownVector(t *testing.T) {
	// 0x10000 as a big-endian base-128 VLQ: [0x84, 0x80, 0x00].
	got := Append(nil, 0x10000)
	assert.Equal(t, []byte{0x84, 0x80, 0x00}, got)
}

func TestLenMatchesAppendLength(t *testing.T) {
	for _, v := range []uint64{0, 1, 100, 127, 128, 16384, 0x10000, 1 << 49, ^uint64(0)} {
		assert.Equal(t, Len(v), len(Append(nil, v)), "v=%d", v)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 100, 127, 128, 65536, 1 << 35, ^uint64(0)} {
		buf := Append(nil, v)
		got, n, ok := Get(buf)
		require.True(t, ok)
		assert.Equal(t, len(buf), n)
		assert.Equal(t, v, got)
	}
}

func TestGetIncompleteReturnsNotOK(t *testing.T) {
	buf := Append(nil, 0x10000)
	_, _, ok := Get(buf[:len(buf)-1])
	assert.False(t, ok)
}

func TestPutMatchesAppend(t *testing.T) {
	dst := make([]byte, Len(65536))
	n := Put(dst, 65536)
	assert.Equal(t, Append(nil, 65536), dst[:n])
}
