// Package compacttime implements a compact date/time/timestamp codec,
// treated by the encoder and decoder packages as an external auxiliary
// library: they depend only on the contract, not the bit layout. encode
// appends bytes and reports how many it wrote; decode reports how many
// bytes it consumed, or that it needs more data. See DESIGN.md for the
// rationale behind the exact wire format defined below.
//
// Wire format:
//
//	Date:      day(1) month(1) year(zigzag VLQ)
//	Time:      flags(1) hour(1) minute(1) second(1) [nanosecond(VLQ)] [tz payload]
//	Timestamp: Date bytes immediately followed by Time bytes
//
// flags bit 0 is set when a nanosecond field follows; bits 1-2 select the
// timezone payload: 0 = none, 1 = named string (VLQ length + UTF-8 bytes),
// 2 = latitude/longitude coordinates (two zigzag VLQ hundredths-of-a-degree
// integers).
package compacttime

import (
	"github.com/cbe-go/cbe/errs"
	"github.com/cbe-go/cbe/vlq"
)

// TimeZoneNameMaxLen bounds a caller-supplied named timezone string.
const TimeZoneNameMaxLen = 255

type tzKind uint8

const (
	tzZero tzKind = iota
	tzNamed
	tzCoords
)

// TimeZone is a three-way sum type: absent, a named zone, or a
// (latitude, longitude) pair in hundredths of a degree.
type TimeZone struct {
	kind      tzKind
	name      string
	latitude  int32
	longitude int32
}

// ZeroTimeZone returns the absent timezone.
func ZeroTimeZone() TimeZone { return TimeZone{kind: tzZero} }

// NamedTimeZone returns a named timezone (e.g. "E/Berlin"). It is the
// caller's responsibility to keep name within TimeZoneNameMaxLen; Encode
// rejects longer names with errs.ErrInvalidArgument.
func NamedTimeZone(name string) TimeZone { return TimeZone{kind: tzNamed, name: name} }

// CoordsTimeZone returns a location-based timezone in hundredths of a
// degree.
func CoordsTimeZone(latitudeHundredths, longitudeHundredths int32) TimeZone {
	return TimeZone{kind: tzCoords, latitude: latitudeHundredths, longitude: longitudeHundredths}
}

// IsZero reports whether tz is the absent timezone.
func (tz TimeZone) IsZero() bool { return tz.kind == tzZero }

// Name returns the named-zone string, or "" if tz is not a named zone.
func (tz TimeZone) Name() string { return tz.name }

// Coords returns the coordinate pair; ok is false unless tz is a
// coordinate-based zone.
func (tz TimeZone) Coords() (lat, long int32, ok bool) {
	return tz.latitude, tz.longitude, tz.kind == tzCoords
}

// Date is a calendar year/month/day.
type Date struct {
	Year  int32
	Month uint8
	Day   uint8
}

// Time is hour/minute/second/nanosecond plus an optional timezone.
type Time struct {
	Hour       uint8
	Minute     uint8
	Second     uint8
	Nanosecond uint32
	TZ         TimeZone
}

// Timestamp combines Date and Time.
type Timestamp struct {
	Date
	Time
}

func zigzagEncode32(v int32) uint64 { return uint64(uint32((v << 1) ^ (v >> 31))) }
func zigzagDecode32(v uint64) int32 { u := uint32(v); return int32(u>>1) ^ -int32(u&1) }

// DateWorstCaseLen is an upper bound on the bytes EncodeDate can emit,
// used by the encoder's buffer-space preflight.
const DateWorstCaseLen = 1 + 1 + 5 // day, month, zigzag VLQ year (int32 -> at most 5 bytes)

// TimeWorstCaseLen is an upper bound on the bytes EncodeTime can emit.
const TimeWorstCaseLen = 1 + 1 + 1 + 1 + 5 + (2 + TimeZoneNameMaxLen) // flags,h,m,s,ns,tz (a 255-byte name's VLQ length takes 2 bytes)

// TimestampWorstCaseLen is an upper bound on the bytes EncodeTimestamp
// can emit.
const TimestampWorstCaseLen = DateWorstCaseLen + TimeWorstCaseLen

// EncodeDate appends d's compact encoding to dst.
func EncodeDate(dst []byte, d Date) []byte {
	dst = append(dst, d.Day, d.Month)
	dst = vlq.Append(dst, zigzagEncode32(d.Year))

	return dst
}

// DecodeDate decodes a Date from the head of src. ok is false if src does
// not yet contain a complete Date; the caller should treat this as
// "need more data".
func DecodeDate(src []byte) (d Date, n int, ok bool) {
	if len(src) < 2 {
		return Date{}, 0, false
	}
	day, month := src[0], src[1]
	year, yn, ok := vlq.Get(src[2:])
	if !ok {
		return Date{}, 0, false
	}

	return Date{Year: zigzagDecode32(year), Month: month, Day: day}, 2 + yn, true
}

// EncodeTime appends t's compact encoding to dst, or returns an error if
// t.TZ is a named zone longer than TimeZoneNameMaxLen.
func EncodeTime(dst []byte, t Time) ([]byte, error) {
	var flags uint8
	if t.Nanosecond != 0 {
		flags |= 0x1
	}
	switch t.TZ.kind {
	case tzNamed:
		if len(t.TZ.name) > TimeZoneNameMaxLen {
			return dst, errs.ErrInvalidArgument
		}
		flags |= 0x1 << 1
	case tzCoords:
		flags |= 0x2 << 1
	}

	dst = append(dst, flags, t.Hour, t.Minute, t.Second)
	if t.Nanosecond != 0 {
		dst = vlq.Append(dst, uint64(t.Nanosecond))
	}
	switch t.TZ.kind {
	case tzNamed:
		dst = vlq.Append(dst, uint64(len(t.TZ.name)))
		dst = append(dst, t.TZ.name...)
	case tzCoords:
		dst = vlq.Append(dst, zigzagEncode32(t.TZ.latitude))
		dst = vlq.Append(dst, zigzagEncode32(t.TZ.longitude))
	}

	return dst, nil
}

// DecodeTime decodes a Time from the head of src.
func DecodeTime(src []byte) (t Time, n int, ok bool) {
	if len(src) < 4 {
		return Time{}, 0, false
	}
	flags := src[0]
	t.Hour, t.Minute, t.Second = src[1], src[2], src[3]
	off := 4

	if flags&0x1 != 0 {
		ns, nn, ok := vlq.Get(src[off:])
		if !ok {
			return Time{}, 0, false
		}
		t.Nanosecond = uint32(ns)
		off += nn
	}

	switch (flags >> 1) & 0x3 {
	case 0:
		t.TZ = ZeroTimeZone()
	case 1:
		length, ln, ok := vlq.Get(src[off:])
		if !ok {
			return Time{}, 0, false
		}
		off += ln
		if len(src[off:]) < int(length) {
			return Time{}, 0, false
		}
		t.TZ = NamedTimeZone(string(src[off : off+int(length)]))
		off += int(length)
	case 2:
		lat, ln1, ok := vlq.Get(src[off:])
		if !ok {
			return Time{}, 0, false
		}
		off += ln1
		long, ln2, ok := vlq.Get(src[off:])
		if !ok {
			return Time{}, 0, false
		}
		off += ln2
		t.TZ = CoordsTimeZone(zigzagDecode32(lat), zigzagDecode32(long))
	default:
		return Time{}, 0, false
	}

	return t, off, true
}

// EncodeTimestamp appends ts's compact encoding to dst.
func EncodeTimestamp(dst []byte, ts Timestamp) ([]byte, error) {
	dst = EncodeDate(dst, ts.Date)
	return EncodeTime(dst, ts.Time)
}

// DecodeTimestamp decodes a Timestamp from the head of src.
func DecodeTimestamp(src []byte) (ts Timestamp, n int, ok bool) {
	d, dn, ok := DecodeDate(src)
	if !ok {
		return Timestamp{}, 0, false
	}
	t, tn, ok := DecodeTime(src[dn:])
	if !ok {
		return Timestamp{}, 0, false
	}

	return Timestamp{Date: d, Time: t}, dn + tn, true
}
