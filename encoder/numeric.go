package encoder

import (
	"encoding/binary"
	"math"
	"math/bits"

	cbetag "github.com/cbe-go/cbe/tag"
	"github.com/cbe-go/cbe/vlq"
)

// integerWorstCaseLen is the largest a single integer token can be: a
// one-byte tag plus an 8-byte sized magnitude.
const integerWorstCaseLen = 1 + 8

// binaryFloatWorstCaseLen is the largest a binary float token can be: a
// one-byte tag plus an 8-byte binary64 payload.
const binaryFloatWorstCaseLen = 1 + 8

// appendInteger implements the numeric shrinking rule: the narrowest
// form that exactly represents (sign, magnitude) wins,
// preferring VLQ over the next larger fixed width whenever it is
// strictly cheaper in bytes.
func appendInteger(dst []byte, positive bool, magnitude uint64) []byte {
	if magnitude <= 100 {
		v := int64(magnitude)
		if !positive {
			v = -v
		}

		return append(dst, byte(int8(v)))
	}

	n := bits.Len64(magnitude)
	switch {
	case n <= 8:
		return appendSized(dst, positive, magnitude, 1)
	case n <= 16:
		return appendSized(dst, positive, magnitude, 2)
	case n <= 21:
		return appendVLQInt(dst, positive, magnitude)
	case n <= 32:
		return appendSized(dst, positive, magnitude, 4)
	case n <= 49:
		return appendVLQInt(dst, positive, magnitude)
	default:
		return appendSized(dst, positive, magnitude, 8)
	}
}

func appendSized(dst []byte, positive bool, magnitude uint64, width int) []byte {
	var t byte
	switch width {
	case 1:
		t = cbetag.IntPos8
	case 2:
		t = cbetag.IntPos16
	case 4:
		t = cbetag.IntPos32
	default:
		t = cbetag.IntPos64
	}
	if !positive {
		t++ // the Neg tag always immediately follows its Pos counterpart
	}

	dst = append(dst, t)
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], magnitude)

	return append(dst, buf[:width]...)
}

func appendVLQInt(dst []byte, positive bool, magnitude uint64) []byte {
	t := cbetag.IntPos
	if !positive {
		t = cbetag.IntNeg
	}
	dst = append(dst, t)

	return vlq.Append(dst, magnitude)
}

// appendBinaryFloat implements the binary-float shrinking rule: binary32
// if the value round-trips exactly, else binary64.
func appendBinaryFloat(dst []byte, value float64) []byte {
	f32 := float32(value)
	if float64(f32) == value {
		dst = append(dst, cbetag.FloatBinary32)
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(f32))

		return append(dst, buf[:]...)
	}

	dst = append(dst, cbetag.FloatBinary64)
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(value))

	return append(dst, buf[:]...)
}
