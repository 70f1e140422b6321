package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksumIsDeterministic(t *testing.T) {
	doc := []byte{0x91, 0x04, 'a', 'b', 'c', 'd'}

	assert.Equal(t, Checksum(doc), Checksum(doc))
}

func TestChecksumDiffersAcrossDocuments(t *testing.T) {
	a := []byte("a raw cbe tag stream, pretend")
	b := []byte("a raw cbe tag stream, pretemd")

	assert.NotEqual(t, Checksum(a), Checksum(b))
}

func TestChecksumDetectsSingleByteFlip(t *testing.T) {
	doc := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	tampered := append([]byte(nil), doc...)
	tampered[len(tampered)-1] ^= 0xFF

	assert.NotEqual(t, Checksum(doc), Checksum(tampered))
}

func TestChecksumEmptyAndNilAgree(t *testing.T) {
	assert.Equal(t, Checksum(nil), Checksum([]byte{}))
}

func TestChecksumEmptyIsStable(t *testing.T) {
	assert.Equal(t, Checksum(nil), Checksum(nil))
}
