package encoder

import (
	"github.com/cbe-go/cbe/internal/validate"
	"github.com/cbe-go/cbe/tag"
	"github.com/cbe-go/cbe/vlq"
)

// arrayState tracks an in-progress length-prefixed array field: string,
// bytes, uri, or comment. The header (tag plus VLQ length) is committed
// atomically at Begin; the payload may then be handed over across many
// AddData calls and buffer rotations.
type arrayState struct {
	active   bool
	kind     tag.ArrayKind
	totalLen uint64
	written  uint64
	text     *validate.Stream // nil for ArrayBytes, which carries no text constraint
}

// textStreamFor returns the incremental validator for kind, or nil for
// ArrayBytes.
func textStreamFor(kind tag.ArrayKind) *validate.Stream {
	switch kind {
	case tag.ArrayString:
		return validate.NewStream(validate.StreamUTF8)
	case tag.ArrayComment:
		return validate.NewStream(validate.StreamComment)
	case tag.ArrayURI:
		return validate.NewStream(validate.StreamURI)
	default:
		return nil
	}
}

func arrayTag(kind tag.ArrayKind) byte {
	switch kind {
	case tag.ArrayBytes:
		return tag.Bytes
	case tag.ArrayURI:
		return tag.URI
	case tag.ArrayComment:
		return tag.Comment
	default:
		return tag.String
	}
}

// arrayHeader builds the tag(+length) bytes for an array field, using the
// short-string form when possible.
func arrayHeader(kind tag.ArrayKind, totalLen uint64) []byte {
	if kind == tag.ArrayString && totalLen <= uint64(tag.ShortStringMax-tag.ShortStringBase) {
		return []byte{tag.ShortStringBase + byte(totalLen)}
	}

	var hdr [1 + 10]byte
	hdr[0] = arrayTag(kind)
	n := 1 + vlq.Put(hdr[1:], totalLen)

	return hdr[:n]
}

// StringBegin, BytesBegin, URIBegin and CommentBegin open a streaming array
// field of the declared total length. AddData then transfers payload bytes,
// which may span any number of buffers; the grammar's value slot is
// consumed once the last payload byte is written (immediately for a
// zero-length field).
func (e *Encoder) StringBegin(totalLen int) Status  { return e.arrayBegin(tag.ArrayString, totalLen) }
func (e *Encoder) BytesBegin(totalLen int) Status   { return e.arrayBegin(tag.ArrayBytes, totalLen) }
func (e *Encoder) URIBegin(totalLen int) Status     { return e.arrayBegin(tag.ArrayURI, totalLen) }
func (e *Encoder) CommentBegin(totalLen int) Status { return e.arrayBegin(tag.ArrayComment, totalLen) }

func (e *Encoder) arrayBegin(kind tag.ArrayKind, totalLen int) Status {
	if e.arr.active {
		return StatusInvalidArgument
	}
	if totalLen < 0 {
		return StatusInvalidArgument
	}

	if st := e.preflightValue(tag.KindOther); !st.OK() {
		return st
	}

	hdr := arrayHeader(kind, uint64(totalLen))
	if !e.hasRoom(len(hdr)) {
		return StatusNeedMoreRoom
	}

	e.commit(hdr)
	e.arr = arrayState{active: totalLen > 0, kind: kind, totalLen: uint64(totalLen), text: textStreamFor(kind)}
	if totalLen == 0 {
		// No AddData call will ever follow for an empty field, so the
		// grammar must advance here instead of waiting for completion.
		e.container.ValueCompleted()
	}

	return StatusOK
}

// AddData transfers as much of buf as the current buffer has room for into
// the in-progress array field opened by one of the Begin methods. written
// reports how many bytes of buf were consumed. StatusNeedMoreRoom means
// buf was only partially consumed and the caller must flush, call
// SetBuffer, and retry with buf[*written:]. The grammar's value slot is
// consumed only once the field's full length has been written, per
// arrayBegin's deferral; until then no other Encoder operation may be
// issued.
func (e *Encoder) AddData(buf []byte, written *int) Status {
	if !e.arr.active {
		return StatusNotInsideArrayField
	}

	remaining := e.arr.totalLen - e.arr.written
	if uint64(len(buf)) > remaining {
		return StatusArrayFieldLengthExceeded
	}

	room := e.remaining()
	n := len(buf)
	needMoreRoom := false
	if n > room {
		n = room
		needMoreRoom = true
	}

	chunk := buf[:n]
	final := e.arr.written+uint64(n) == e.arr.totalLen
	if e.arr.text != nil && !e.arr.text.Feed(chunk, final) {
		return StatusInvalidArrayData
	}

	e.commit(chunk)
	e.arr.written += uint64(n)
	if written != nil {
		*written = n
	}

	if final {
		e.arr.active = false
		e.container.ValueCompleted()
	}

	if needMoreRoom {
		return StatusNeedMoreRoom
	}

	return StatusOK
}

// ArrayBytesRemaining returns how many payload bytes the in-progress array
// field still needs, or 0 when no array field is open.
func (e *Encoder) ArrayBytesRemaining() uint64 {
	if !e.arr.active {
		return 0
	}

	return e.arr.totalLen - e.arr.written
}

// AddString, AddBytes, AddURI and AddComment encode a complete array field
// in one call. Unlike the streaming Begin/AddData pair, they are atomic:
// either the whole header and payload fit in the current buffer and are
// committed together, or nothing is written and StatusNeedMoreRoom is
// returned so the caller can retry against a fresh buffer.
func (e *Encoder) AddString(data []byte) Status {
	if !validate.UTF8(data) {
		return StatusInvalidArrayData
	}

	return e.addArray(tag.ArrayString, data)
}

func (e *Encoder) AddBytes(data []byte) Status { return e.addArray(tag.ArrayBytes, data) }

func (e *Encoder) AddURI(data []byte) Status {
	if !validate.URI(data) {
		return StatusInvalidArrayData
	}

	return e.addArray(tag.ArrayURI, data)
}

func (e *Encoder) AddComment(data []byte) Status {
	if !validate.Comment(data) {
		return StatusInvalidArrayData
	}

	return e.addArray(tag.ArrayComment, data)
}

func (e *Encoder) addArray(kind tag.ArrayKind, data []byte) Status {
	if e.arr.active {
		return StatusInvalidArgument
	}

	if st := e.preflightValue(tag.KindOther); !st.OK() {
		return st
	}

	hdr := arrayHeader(kind, uint64(len(data)))
	if !e.hasRoom(len(hdr) + len(data)) {
		return StatusNeedMoreRoom
	}

	e.commit(hdr)
	e.commit(data)
	e.container.ValueCompleted()

	return StatusOK
}
