// Package encoder implements the CBE streaming encoder state machine: a
// push-driven grammar engine that writes complete, self-delimiting
// tokens into a caller-owned buffer and reports StatusNeedMoreRoom
// instead of growing or flushing anything itself.
//
// Every Add* operation is atomic: either the whole token fits in the
// buffer currently installed with Begin/SetBuffer and is written in full,
// or nothing is written at all. The exceptions are payload data handed
// to a streaming array field opened with StringBegin/BytesBegin/URIBegin/
// CommentBegin, which may be split across any number of AddData calls and
// buffer rotations, and AddPadding, which writes as many padding bytes as
// fit and reports how many it wrote.
package encoder

import (
	"github.com/cbe-go/cbe/container"
	"github.com/cbe-go/cbe/internal/compactfloat"
	"github.com/cbe-go/cbe/internal/compacttime"
	"github.com/cbe-go/cbe/internal/options"
	"github.com/cbe-go/cbe/tag"
)

// Encoder is the streaming encoder state machine. The zero value is not
// usable; construct one with New.
type Encoder struct {
	cfg *Config

	buf []byte
	pos int

	// baseOffset accumulates the length of every buffer retired by
	// SetBuffer, so BufferOffset can report a position relative to the
	// start of the whole document rather than the current buffer.
	baseOffset int64

	container *container.State
	arr       arrayState
}

// New constructs an Encoder. Call Begin before the first Add* operation.
func New(opts ...Option) (*Encoder, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Encoder{
		cfg:       cfg,
		container: container.New(cfg.maxDepth),
	}, nil
}

// Begin resets the encoder to start a new document, writing into buf.
func (e *Encoder) Begin(buf []byte) {
	e.buf = buf
	e.pos = 0
	e.baseOffset = 0
	e.container.Reset()
	e.arr = arrayState{}
}

// SetBuffer installs a fresh buffer after the caller has flushed
// buf[:BufferOffset-priorBase] elsewhere, in response to
// StatusNeedMoreRoom. Any in-progress streaming array field survives the
// rotation untouched.
func (e *Encoder) SetBuffer(buf []byte) {
	e.baseOffset += int64(e.pos)
	e.buf = buf
	e.pos = 0
}

// BufferOffset returns the number of document bytes written so far,
// across every buffer this Encoder has used since Begin.
func (e *Encoder) BufferOffset() int64 { return e.baseOffset + int64(e.pos) }

// Depth returns the current container nesting depth (0 at top level).
func (e *Encoder) Depth() int { return e.container.Level() }

// End reports whether the document is well-formed: exactly one top-level
// value has been written, every opened container has been closed, and no
// array field was left with unwritten payload bytes.
func (e *Encoder) End() Status {
	if e.arr.active {
		return StatusIncompleteArrayField
	}
	if !e.container.AtTop() {
		return StatusUnbalancedContainers
	}
	if !e.container.TopLevelDone() {
		return StatusInvalidArgument
	}

	return StatusOK
}

func (e *Encoder) remaining() int { return len(e.buf) - e.pos }

func (e *Encoder) hasRoom(n int) bool { return e.remaining() >= n }

func (e *Encoder) commit(b []byte) {
	copy(e.buf[e.pos:], b)
	e.pos += len(b)
}

// preflightValue runs the grammar checks every value-producing operation
// shares: no array field may be left in progress, the document must not
// already be complete, and a value of kind k must not be about to land in
// a map key position if k forbids it.
func (e *Encoder) preflightValue(k tag.Kind) Status {
	if e.arr.active {
		return StatusIncompleteArrayField
	}
	if e.container.AtTop() && e.container.TopLevelDone() {
		return StatusDocumentComplete
	}
	if e.container.NextIsKey() && k.ForbiddenAsKey() {
		return StatusIncorrectMapKeyType
	}

	return StatusOK
}

// emitScalar runs the shared preflight, then atomically commits token and
// advances the grammar.
func (e *Encoder) emitScalar(k tag.Kind, token []byte) Status {
	if st := e.preflightValue(k); !st.OK() {
		return st
	}
	if !e.hasRoom(len(token)) {
		return StatusNeedMoreRoom
	}

	e.commit(token)
	e.container.ValueCompleted()

	return StatusOK
}

// AddPadding writes up to n padding bytes, which carry no grammar meaning
// and may appear anywhere, including before the document's first value.
// written reports how many bytes were actually written; StatusNeedMoreRoom
// means fewer than n fit and the caller should flush, rotate buffers, and
// retry for the remainder.
func (e *Encoder) AddPadding(n int, written *int) Status {
	if e.arr.active {
		return StatusIncompleteArrayField
	}
	if n < 0 {
		return StatusInvalidArgument
	}

	room := e.remaining()
	k := n
	needMoreRoom := false
	if k > room {
		k = room
		needMoreRoom = true
	}

	for i := 0; i < k; i++ {
		e.buf[e.pos+i] = tag.Padding
	}
	e.pos += k
	if written != nil {
		*written = k
	}

	if needMoreRoom {
		return StatusNeedMoreRoom
	}

	return StatusOK
}

// AddNil writes the nil value. A nil value may never occupy a map key.
func (e *Encoder) AddNil() Status {
	return e.emitScalar(tag.KindNil, []byte{tag.Nil})
}

// AddBoolean writes a boolean value.
func (e *Encoder) AddBoolean(v bool) Status {
	t := tag.False
	if v {
		t = tag.True
	}

	return e.emitScalar(tag.KindOther, []byte{t})
}

// AddInteger writes a signed integer given as a sign (true for
// non-negative) and an unsigned magnitude, using the narrowest wire form
// that represents it exactly.
func (e *Encoder) AddInteger(positive bool, magnitude uint64) Status {
	var buf [integerWorstCaseLen]byte
	token := appendInteger(buf[:0], positive, magnitude)

	return e.emitScalar(tag.KindOther, token)
}

// AddFloat writes value as a binary float, using binary32 when that loses
// no precision and binary64 otherwise.
func (e *Encoder) AddFloat(value float64) Status {
	var buf [binaryFloatWorstCaseLen]byte
	token := appendBinaryFloat(buf[:0], value)

	return e.emitScalar(tag.KindOther, token)
}

// AddDecimalFloat writes value as a decimal float rounded to
// significantDigits decimal digits; significantDigits must be in
// [1, 15], or 0 for full float64 precision.
func (e *Encoder) AddDecimalFloat(value float64, significantDigits int) Status {
	var buf [1 + compactfloat.WorstCaseLen]byte
	buf[0] = tag.FloatDecimal
	token, err := compactfloat.Encode(buf[:1], value, significantDigits)
	if err != nil {
		return StatusInvalidArgument
	}

	return e.emitScalar(tag.KindOther, token)
}

// AddDate writes a plain calendar date.
func (e *Encoder) AddDate(year int32, month, day uint8) Status {
	var buf [1 + compacttime.DateWorstCaseLen]byte
	buf[0] = tag.Date
	token := compacttime.EncodeDate(buf[:1], compacttime.Date{Year: year, Month: month, Day: day})

	return e.emitScalar(tag.KindOther, token)
}

// AddTimeTZ writes a time-of-day in a named timezone (e.g. "E/Berlin").
// The name must not exceed the configured timezone name limit
// (WithTimeZoneNameLimit).
func (e *Encoder) AddTimeTZ(hour, minute, second uint8, nanosecond uint32, tzName string) Status {
	if len(tzName) > e.cfg.tzNameLimit {
		return StatusInvalidArgument
	}

	return e.addTime(compacttime.Time{
		Hour: hour, Minute: minute, Second: second, Nanosecond: nanosecond,
		TZ: compacttime.NamedTimeZone(tzName),
	})
}

// AddTimeLoc writes a time-of-day located by latitude/longitude in
// hundredths of a degree.
func (e *Encoder) AddTimeLoc(hour, minute, second uint8, nanosecond uint32, latHundredths, longHundredths int32) Status {
	return e.addTime(compacttime.Time{
		Hour: hour, Minute: minute, Second: second, Nanosecond: nanosecond,
		TZ: compacttime.CoordsTimeZone(latHundredths, longHundredths),
	})
}

func (e *Encoder) addTime(t compacttime.Time) Status {
	var buf [1 + compacttime.TimeWorstCaseLen]byte
	buf[0] = tag.Time
	token, err := compacttime.EncodeTime(buf[:1], t)
	if err != nil {
		return StatusInvalidArgument
	}

	return e.emitScalar(tag.KindOther, token)
}

// AddTimestampTZ writes a combined date/time in a named timezone.
func (e *Encoder) AddTimestampTZ(year int32, month, day, hour, minute, second uint8, nanosecond uint32, tzName string) Status {
	if len(tzName) > e.cfg.tzNameLimit {
		return StatusInvalidArgument
	}

	return e.addTimestamp(compacttime.Timestamp{
		Date: compacttime.Date{Year: year, Month: month, Day: day},
		Time: compacttime.Time{
			Hour: hour, Minute: minute, Second: second, Nanosecond: nanosecond,
			TZ: compacttime.NamedTimeZone(tzName),
		},
	})
}

// AddTimestampLoc writes a combined date/time located by latitude/
// longitude in hundredths of a degree.
func (e *Encoder) AddTimestampLoc(year int32, month, day, hour, minute, second uint8, nanosecond uint32, latHundredths, longHundredths int32) Status {
	return e.addTimestamp(compacttime.Timestamp{
		Date: compacttime.Date{Year: year, Month: month, Day: day},
		Time: compacttime.Time{
			Hour: hour, Minute: minute, Second: second, Nanosecond: nanosecond,
			TZ: compacttime.CoordsTimeZone(latHundredths, longHundredths),
		},
	})
}

func (e *Encoder) addTimestamp(ts compacttime.Timestamp) Status {
	var buf [1 + compacttime.TimestampWorstCaseLen]byte
	buf[0] = tag.Timestamp
	token, err := compacttime.EncodeTimestamp(buf[:1], ts)
	if err != nil {
		return StatusInvalidArgument
	}

	return e.emitScalar(tag.KindOther, token)
}

// ListBegin opens a list container.
func (e *Encoder) ListBegin() Status { return e.containerBegin(tag.KindList, tag.List) }

// MapBegin opens an unordered key/value map.
func (e *Encoder) MapBegin() Status { return e.containerBegin(tag.KindMap, tag.MapUnordered) }

// OrderedMapBegin opens a map whose keys must be presented in ascending
// order.
func (e *Encoder) OrderedMapBegin() Status { return e.containerBegin(tag.KindMap, tag.MapOrdered) }

// MetadataMapBegin opens a metadata map, a map-shaped container that
// precedes and annotates the value that follows it.
func (e *Encoder) MetadataMapBegin() Status {
	return e.containerBegin(tag.KindMap, tag.MapMetadata)
}

func (e *Encoder) containerBegin(k tag.Kind, t byte) Status {
	if e.container.Level() >= e.container.MaxDepth() {
		return StatusMaxContainerDepthExceeded
	}
	if st := e.preflightValue(k); !st.OK() {
		return st
	}
	if !e.hasRoom(1) {
		return StatusNeedMoreRoom
	}

	e.commit([]byte{t})
	e.container.Push(t == tag.MapUnordered || t == tag.MapOrdered || t == tag.MapMetadata)

	return StatusOK
}

// ContainerEnd closes the innermost open list or map.
func (e *Encoder) ContainerEnd() Status {
	if e.arr.active {
		return StatusIncompleteArrayField
	}
	if e.container.AtTop() {
		return StatusUnbalancedContainers
	}
	if e.container.InMap() && !e.container.ExpectingKey() {
		return StatusMapMissingValue
	}
	if !e.hasRoom(1) {
		return StatusNeedMoreRoom
	}

	e.commit([]byte{tag.ContainerEnd})
	e.container.Pop()

	return StatusOK
}
