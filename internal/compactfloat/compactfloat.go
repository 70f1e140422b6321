// Package compactfloat implements a decimal-float compact codec, treated
// by the encoder and decoder packages as an external auxiliary library:
// a decimal value decomposed into a signed integer mantissa and base-10
// exponent, each stored as a zigzag VLQ. See DESIGN.md for the rationale
// behind this wire format.
package compactfloat

import (
	"math"
	"strconv"
	"strings"

	"github.com/cbe-go/cbe/errs"
	"github.com/cbe-go/cbe/vlq"
)

// MaxSignificantDigits bounds the significant-digits argument accepted by
// the encoder's AddDecimalFloat operation.
const MaxSignificantDigits = 15

// WorstCaseLen is an upper bound on the bytes Encode can emit for any
// value within MaxSignificantDigits precision.
const WorstCaseLen = 10 + 10 // exponent VLQ + mantissa VLQ, both int64-sized

func zigzagEncode64(v int64) uint64 { return uint64((v << 1) ^ (v >> 63)) }
func zigzagDecode64(v uint64) int64 { return int64(v>>1) ^ -int64(v&1) }

// Encode appends the compact decimal encoding of value, rounded to
// significantDigits decimal digits, to dst.
//
// significantDigits must be in [1, MaxSignificantDigits]; 0 is treated as
// a request for full float64 precision (17 significant digits), matching
// the encoder's convenience path for add_decimal_float with an
// unspecified precision.
func Encode(dst []byte, value float64, significantDigits int) ([]byte, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return dst, errs.ErrInvalidArgument
	}
	if significantDigits < 0 || significantDigits > MaxSignificantDigits {
		return dst, errs.ErrInvalidArgument
	}
	if significantDigits == 0 {
		significantDigits = 17
	}

	mantissa, exponent := decompose(value, significantDigits)

	dst = vlq.Append(dst, zigzagEncode64(int64(exponent)))
	dst = vlq.Append(dst, zigzagEncode64(mantissa))

	return dst, nil
}

// Decode decodes a compact decimal float from the head of src.
func Decode(src []byte) (value float64, n int, ok bool) {
	expRaw, en, ok := vlq.Get(src)
	if !ok {
		return 0, 0, false
	}
	mantRaw, mn, ok := vlq.Get(src[en:])
	if !ok {
		return 0, 0, false
	}

	exponent := zigzagDecode64(expRaw)
	mantissa := zigzagDecode64(mantRaw)

	return float64(mantissa) * math.Pow10(int(exponent)), en + mn, true
}

// decompose splits value into an integer mantissa and base-10 exponent
// such that value ≈ mantissa * 10^exponent, with mantissa carrying
// exactly significantDigits decimal digits; strconv's 'e' format keeps
// trailing zeros, so they stay in the mantissa.
func decompose(value float64, significantDigits int) (mantissa int64, exponent int) {
	if value == 0 {
		return 0, 0
	}

	s := strconv.FormatFloat(value, 'e', significantDigits-1, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	eIdx := strings.IndexByte(s, 'e')
	digitsPart := s[:eIdx]
	exp, _ := strconv.Atoi(s[eIdx+1:])

	dotIdx := strings.IndexByte(digitsPart, '.')
	var digits string
	fracLen := 0
	if dotIdx < 0 {
		digits = digitsPart
	} else {
		digits = digitsPart[:dotIdx] + digitsPart[dotIdx+1:]
		fracLen = len(digitsPart) - dotIdx - 1
	}

	m, _ := strconv.ParseInt(digits, 10, 64)
	if neg {
		m = -m
	}

	return m, exp - fracLen
}
