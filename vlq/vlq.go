// Package vlq implements the big-endian, base-128 variable-length quantity
// used for CBE array length prefixes and for the VLQ-form integer tags.
// It is small enough, and specific enough to CBE's own wire format, that
// no third-party library matches it; see DESIGN.md.
//
// Encoding: the value is split into 7-bit groups, most-significant group
// first. Every byte but the last has its high bit set (continuation);
// the last byte has the high bit clear. This is the mirror image of the
// little-endian base-128 varint used by encoding/binary.Uvarint, which is
// why this package does not simply reuse the standard library.
package vlq

// Len returns the number of bytes needed to encode v as a VLQ.
func Len(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}

	return n
}

// Append appends the VLQ encoding of v to dst and returns the extended
// slice.
func Append(dst []byte, v uint64) []byte {
	var tmp [10]byte
	n := putVLQ(tmp[:], v)

	return append(dst, tmp[:n]...)
}

// Put writes the VLQ encoding of v into dst, which must be at least
// Len(v) bytes long, and returns the number of bytes written.
func Put(dst []byte, v uint64) int {
	return putVLQ(dst, v)
}

func putVLQ(dst []byte, v uint64) int {
	n := Len(v)
	for i := n - 1; i >= 0; i-- {
		b := byte(v & 0x7f)
		v >>= 7
		if i != n-1 {
			b |= 0x80
		}
		dst[i] = b
	}

	return n
}

// Get decodes a VLQ from the head of src.
//
// It returns the decoded value, the number of bytes consumed, and ok=true
// on success. ok is false when src does not contain a complete VLQ (every
// byte seen so far had its continuation bit set); the caller should treat
// this as "need more data": rewind and wait for more bytes. Get never
// consumes more than 10 bytes (70 bits), which is
// more than enough for any 64-bit magnitude; a longer run is rejected as
// malformed.
func Get(src []byte) (value uint64, n int, ok bool) {
	for i := 0; i < len(src) && i < 10; i++ {
		b := src[i]
		value = (value << 7) | uint64(b&0x7f)
		if b&0x80 == 0 {
			return value, i + 1, true
		}
	}

	return 0, 0, false
}
