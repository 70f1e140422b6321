// Package decoder implements the CBE streaming decoder state machine: an
// event-driven grammar engine that parses complete tokens out of a
// caller-owned buffer and invokes a Callbacks
// method per value. It is the mirror image of package encoder, sharing
// the same container grammar (package container) and the same tag table
// and auxiliary codecs (package tag, internal/compacttime,
// internal/compactfloat).
package decoder

import (
	"math"

	"github.com/cbe-go/cbe/container"
	"github.com/cbe-go/cbe/internal/compactfloat"
	"github.com/cbe-go/cbe/internal/compacttime"
	"github.com/cbe-go/cbe/internal/options"
	"github.com/cbe-go/cbe/tag"
	"github.com/cbe-go/cbe/vlq"
)

// Decoder is the streaming decoder state machine. The zero value is not
// usable; construct one with New.
type Decoder struct {
	cfg *Config
	cb  Callbacks

	streamOffset int64
	container    *container.State
	arr          arrayState
}

// New constructs a Decoder. Call Begin before the first Feed.
func New(opts ...Option) (*Decoder, error) {
	cfg := newConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &Decoder{
		cfg:       cfg,
		container: container.New(cfg.maxDepth),
	}, nil
}

// Begin resets the decoder to start parsing a new document, delivering
// every decoded value to cb.
func (d *Decoder) Begin(cb Callbacks) {
	d.cb = cb
	d.streamOffset = 0
	d.container.Reset()
	d.arr = arrayState{}
}

// StreamOffset returns the number of document bytes consumed so far.
func (d *Decoder) StreamOffset() int64 { return d.streamOffset }

// Depth returns the current container nesting depth (0 at top level).
func (d *Decoder) Depth() int { return d.container.Level() }

// End reports whether the document seen so far is well-formed: exactly
// one top-level value has been decoded, every opened container has been
// closed, and no array field was left with undelivered payload bytes.
func (d *Decoder) End() Status {
	if d.arr.active {
		return StatusIncompleteArrayField
	}
	if !d.container.AtTop() {
		return StatusUnbalancedContainers
	}
	if !d.container.TopLevelDone() {
		return StatusInvalidArgument
	}

	return StatusOK
}

// Feed parses as many complete tokens as buf contains, invoking
// Callbacks for each. consumed reports how many leading bytes of buf were
// parsed. StatusNeedMoreData means the tail of buf (buf[*consumed:])
// holds an incomplete token; the caller must retain it and append more
// bytes before calling Feed again. StatusStopped means a callback
// returned false after consuming buf[:*consumed]; Feed may be called
// again with the remaining bytes to resume.
func (d *Decoder) Feed(buf []byte, consumed *int) Status {
	pos := 0
	for pos < len(buf) {
		n, st := d.decodeOne(buf[pos:])
		pos += n
		d.streamOffset += int64(n)

		switch st {
		case StatusOK:
			continue
		case StatusNeedMoreData:
			if consumed != nil {
				*consumed = pos
			}

			return StatusNeedMoreData
		default:
			if consumed != nil {
				*consumed = pos
			}

			return st
		}
	}

	if consumed != nil {
		*consumed = pos
	}

	// buf ran out with an array field still open: every byte offered was
	// consumed, but the field isn't complete, so the caller must feed
	// more rather than treat this as a finished parse.
	if d.arr.active {
		return StatusNeedMoreData
	}

	return StatusOK
}

// preflightValue mirrors encoder.preflightValue: a value of kind k must
// not land in a forbidden map key position, and the document must not
// already be complete.
func (d *Decoder) preflightValue(k tag.Kind) Status {
	if d.container.AtTop() && d.container.TopLevelDone() {
		return StatusDocumentComplete
	}
	if d.container.NextIsKey() && k.ForbiddenAsKey() {
		return StatusIncorrectMapKeyType
	}

	return StatusOK
}

// decodeOne parses a single token from the head of src, or continues an
// in-progress array payload. It returns the number of bytes consumed and
// a status; StatusStopped is returned (with n already reflecting the
// consumed token) when a Callbacks method returned false.
func (d *Decoder) decodeOne(src []byte) (int, Status) {
	if d.arr.active {
		return d.decodeArrayChunk(src)
	}
	if len(src) == 0 {
		return 0, StatusNeedMoreData
	}

	t := src[0]

	switch {
	case tag.IsSmallInt(t):
		if st := d.preflightValue(tag.KindOther); !st.OK() {
			return 0, st
		}

		v := int8(t)
		positive := v >= 0
		magnitude := uint64(v)
		if !positive {
			magnitude = uint64(-int64(v))
		}

		return d.finishScalar(1, d.cb.OnInteger(positive, magnitude))

	case tag.IsShortString(t):
		length := tag.ShortStringLen(t)
		if st := d.preflightValue(tag.KindOther); !st.OK() {
			return 0, st
		}

		// The payload streams through decodeArrayChunk exactly like a long
		// string's, so a short string split across Feed calls is delivered
		// as it arrives.
		cont := d.cb.OnArrayBegin(ArrayString, uint64(length))
		if length == 0 {
			d.container.ValueCompleted()
		} else {
			d.arr = arrayState{active: true, kind: ArrayString, totalLen: uint64(length), text: textStreamFor(ArrayString)}
		}
		if !cont {
			return 1, StatusStopped
		}

		return 1, StatusOK

	case tag.IsReserved(t):
		return 0, StatusInvalidTag
	}

	switch t {
	case tag.Nil:
		if st := d.preflightValue(tag.KindNil); !st.OK() {
			return 0, st
		}

		return d.finishScalar(1, d.cb.OnNil())

	case tag.False, tag.True:
		if st := d.preflightValue(tag.KindOther); !st.OK() {
			return 0, st
		}

		return d.finishScalar(1, d.cb.OnBoolean(t == tag.True))

	case tag.Padding:
		if !d.cb.OnPadding(1) {
			return 1, StatusStopped
		}

		return 1, StatusOK

	case tag.IntPos, tag.IntNeg:
		magnitude, n, ok := vlq.Get(src[1:])
		if !ok {
			return 0, StatusNeedMoreData
		}
		if st := d.preflightValue(tag.KindOther); !st.OK() {
			return 0, st
		}

		return d.finishScalar(1+n, d.cb.OnInteger(t == tag.IntPos, magnitude))

	case tag.IntPos8, tag.IntNeg8, tag.IntPos16, tag.IntNeg16, tag.IntPos32, tag.IntNeg32, tag.IntPos64, tag.IntNeg64:
		width := sizedIntWidth(t)
		magnitude, ok := readUintLE(src[1:], width)
		if !ok {
			return 0, StatusNeedMoreData
		}
		if st := d.preflightValue(tag.KindOther); !st.OK() {
			return 0, st
		}

		positive := t == tag.IntPos8 || t == tag.IntPos16 || t == tag.IntPos32 || t == tag.IntPos64

		return d.finishScalar(1+width, d.cb.OnInteger(positive, magnitude))

	case tag.FloatBinary32:
		bits, ok := readUintLE(src[1:], 4)
		if !ok {
			return 0, StatusNeedMoreData
		}
		if st := d.preflightValue(tag.KindOther); !st.OK() {
			return 0, st
		}

		return d.finishScalar(1+4, d.cb.OnFloat(float64(math.Float32frombits(uint32(bits)))))

	case tag.FloatBinary64:
		bits, ok := readUintLE(src[1:], 8)
		if !ok {
			return 0, StatusNeedMoreData
		}
		if st := d.preflightValue(tag.KindOther); !st.OK() {
			return 0, st
		}

		return d.finishScalar(1+8, d.cb.OnFloat(math.Float64frombits(bits)))

	case tag.FloatDecimal:
		value, n, ok := compactfloat.Decode(src[1:])
		if !ok {
			return 0, StatusNeedMoreData
		}
		if st := d.preflightValue(tag.KindOther); !st.OK() {
			return 0, st
		}

		return d.finishScalar(1+n, d.cb.OnDecimalFloat(value))

	case tag.Date:
		date, n, ok := compacttime.DecodeDate(src[1:])
		if !ok {
			return 0, StatusNeedMoreData
		}
		if st := d.preflightValue(tag.KindOther); !st.OK() {
			return 0, st
		}

		return d.finishScalar(1+n, d.cb.OnDate(date.Year, date.Month, date.Day))

	case tag.Time:
		tm, n, ok := compacttime.DecodeTime(src[1:])
		if !ok {
			return 0, StatusNeedMoreData
		}
		if st := d.preflightValue(tag.KindOther); !st.OK() {
			return 0, st
		}

		return d.finishScalar(1+n, d.cb.OnTime(tm.Hour, tm.Minute, tm.Second, tm.Nanosecond, TimeZone{inner: tm.TZ}))

	case tag.Timestamp:
		ts, n, ok := compacttime.DecodeTimestamp(src[1:])
		if !ok {
			return 0, StatusNeedMoreData
		}
		if st := d.preflightValue(tag.KindOther); !st.OK() {
			return 0, st
		}

		return d.finishScalar(1+n, d.cb.OnTimestamp(
			ts.Date.Year, ts.Date.Month, ts.Date.Day,
			ts.Time.Hour, ts.Time.Minute, ts.Time.Second, ts.Time.Nanosecond,
			TimeZone{inner: ts.Time.TZ},
		))

	case tag.String, tag.Bytes, tag.URI, tag.Comment:
		length, n, ok := vlq.Get(src[1:])
		if !ok {
			return 0, StatusNeedMoreData
		}
		if st := d.preflightValue(tag.KindOther); !st.OK() {
			return 0, st
		}

		kind := arrayKindForTag(t)
		cont := d.cb.OnArrayBegin(kind, length)
		if length == 0 {
			d.container.ValueCompleted()
		} else {
			d.arr = arrayState{active: true, kind: kind, totalLen: length, text: textStreamFor(kind)}
		}
		if !cont {
			return 1 + n, StatusStopped
		}

		return 1 + n, StatusOK

	case tag.List:
		if d.container.Level() >= d.container.MaxDepth() {
			return 0, StatusMaxContainerDepthExceeded
		}
		if st := d.preflightValue(tag.KindList); !st.OK() {
			return 0, st
		}

		cont := d.cb.OnListBegin()
		d.container.Push(false)
		if !cont {
			return 1, StatusStopped
		}

		return 1, StatusOK

	case tag.MapUnordered, tag.MapOrdered, tag.MapMetadata:
		if d.container.Level() >= d.container.MaxDepth() {
			return 0, StatusMaxContainerDepthExceeded
		}
		if st := d.preflightValue(tag.KindMap); !st.OK() {
			return 0, st
		}

		var cont bool
		switch t {
		case tag.MapOrdered:
			cont = d.cb.OnOrderedMapBegin()
		case tag.MapMetadata:
			cont = d.cb.OnMetadataMapBegin()
		default:
			cont = d.cb.OnMapBegin()
		}
		d.container.Push(true)
		if !cont {
			return 1, StatusStopped
		}

		return 1, StatusOK

	case tag.ContainerEnd:
		if d.container.AtTop() {
			return 0, StatusUnbalancedContainers
		}
		if d.container.InMap() && !d.container.ExpectingKey() {
			return 0, StatusMapMissingValue
		}
		cont := d.cb.OnContainerEnd()
		d.container.Pop()
		if !cont {
			return 1, StatusStopped
		}

		return 1, StatusOK

	default:
		return 0, StatusInvalidTag
	}
}

// finishScalar advances the grammar and converts a callback's bool result
// into a Status, given that n bytes of the scalar token were consumed.
func (d *Decoder) finishScalar(n int, cont bool) (int, Status) {
	d.container.ValueCompleted()
	if !cont {
		return n, StatusStopped
	}

	return n, StatusOK
}

func (d *Decoder) decodeArrayChunk(src []byte) (int, Status) {
	if len(src) == 0 {
		return 0, StatusNeedMoreData
	}

	remaining := d.arr.totalLen - d.arr.written
	n := uint64(len(src))
	if n > remaining {
		n = remaining
	}

	chunk := src[:n]
	final := d.arr.written+n == d.arr.totalLen
	if d.arr.text != nil && !d.arr.text.Feed(chunk, final) {
		return 0, StatusInvalidArrayData
	}

	cont := d.cb.OnArrayData(chunk)
	d.arr.written += n
	if d.arr.written == d.arr.totalLen {
		d.arr.active = false
		d.container.ValueCompleted()
	}

	if !cont {
		return int(n), StatusStopped
	}

	return int(n), StatusOK
}

func arrayKindForTag(t byte) ArrayKind {
	switch t {
	case tag.Bytes:
		return ArrayBytes
	case tag.URI:
		return ArrayURI
	case tag.Comment:
		return ArrayComment
	default:
		return ArrayString
	}
}

func sizedIntWidth(t byte) int {
	switch t {
	case tag.IntPos8, tag.IntNeg8:
		return 1
	case tag.IntPos16, tag.IntNeg16:
		return 2
	case tag.IntPos32, tag.IntNeg32:
		return 4
	default:
		return 8
	}
}

// readUintLE reads a little-endian unsigned integer of width bytes from
// the head of src. ok is false if src is too short.
func readUintLE(src []byte, width int) (uint64, bool) {
	if len(src) < width {
		return 0, false
	}

	var v uint64
	for i := 0; i < width; i++ {
		v |= uint64(src[i]) << (8 * i)
	}

	return v, true
}
