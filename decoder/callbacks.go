package decoder

import "github.com/cbe-go/cbe/internal/compacttime"

// TimeZone is the timezone payload attached to a decoded time or
// timestamp value: absent, a named zone (e.g. "E/Berlin"), or a
// (latitude, longitude) pair in hundredths of a degree.
type TimeZone struct {
	inner compacttime.TimeZone
}

// IsZero reports whether the timezone is absent.
func (tz TimeZone) IsZero() bool { return tz.inner.IsZero() }

// Name returns the named-zone string, or "" if tz is not a named zone.
func (tz TimeZone) Name() string { return tz.inner.Name() }

// Coords returns the coordinate pair; ok is false unless tz is
// coordinate-based.
func (tz TimeZone) Coords() (lat, long int32, ok bool) { return tz.inner.Coords() }

// Callbacks receives each value as the Decoder's grammar engine parses
// it. Every method returns whether decoding should continue; returning
// false stops the decode with StatusStopped, and a later Feed call
// resumes exactly where it left off.
//
// Array content (string, bytes, uri, comment) is delivered as
// OnArrayBegin followed by zero or more OnArrayData calls whose total
// length sums to the length OnArrayBegin announced; OnArrayData may be
// called with a short slice when a field's payload spans multiple Feed
// calls.
type Callbacks interface {
	OnPadding(n int) bool
	OnNil() bool
	OnBoolean(v bool) bool
	OnInteger(positive bool, magnitude uint64) bool
	OnFloat(v float64) bool
	OnDecimalFloat(v float64) bool
	OnDate(year int32, month, day uint8) bool
	OnTime(hour, minute, second uint8, nanosecond uint32, tz TimeZone) bool
	OnTimestamp(year int32, month, day, hour, minute, second uint8, nanosecond uint32, tz TimeZone) bool
	OnArrayBegin(kind ArrayKind, totalLen uint64) bool
	OnArrayData(data []byte) bool
	OnListBegin() bool
	OnMapBegin() bool
	OnOrderedMapBegin() bool
	OnMetadataMapBegin() bool
	OnContainerEnd() bool
}

// ArrayKind identifies which of the four length-prefixed array fields
// OnArrayBegin is announcing.
type ArrayKind uint8

const (
	ArrayString ArrayKind = iota
	ArrayBytes
	ArrayURI
	ArrayComment
)

// BaseCallbacks implements Callbacks with every method returning true and
// doing nothing else. Embed it in a caller's type and override only the
// methods of interest.
type BaseCallbacks struct{}

func (BaseCallbacks) OnPadding(int) bool                                        { return true }
func (BaseCallbacks) OnNil() bool                                               { return true }
func (BaseCallbacks) OnBoolean(bool) bool                                       { return true }
func (BaseCallbacks) OnInteger(bool, uint64) bool                               { return true }
func (BaseCallbacks) OnFloat(float64) bool                                      { return true }
func (BaseCallbacks) OnDecimalFloat(float64) bool                               { return true }
func (BaseCallbacks) OnDate(int32, uint8, uint8) bool                           { return true }
func (BaseCallbacks) OnTime(uint8, uint8, uint8, uint32, TimeZone) bool         { return true }
func (BaseCallbacks) OnTimestamp(int32, uint8, uint8, uint8, uint8, uint8, uint32, TimeZone) bool {
	return true
}
func (BaseCallbacks) OnArrayBegin(ArrayKind, uint64) bool { return true }
func (BaseCallbacks) OnArrayData([]byte) bool             { return true }
func (BaseCallbacks) OnListBegin() bool                   { return true }
func (BaseCallbacks) OnMapBegin() bool                     { return true }
func (BaseCallbacks) OnOrderedMapBegin() bool              { return true }
func (BaseCallbacks) OnMetadataMapBegin() bool             { return true }
func (BaseCallbacks) OnContainerEnd() bool                 { return true }

var _ Callbacks = BaseCallbacks{}
