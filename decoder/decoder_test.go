package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbe-go/cbe/encoder"
)

// recorder captures every callback invocation as a small log of
// descriptive strings, enough to assert decode order and values without
// hand-writing a callback type per test.
type recorder struct {
	BaseCallbacks
	events        []string
	lastPositive  bool
	lastMagnitude uint64
	lastFloat     float64
	lastData      []byte
}

func (r *recorder) OnNil() bool { r.events = append(r.events, "nil"); return true }
func (r *recorder) OnBoolean(v bool) bool {
	r.events = append(r.events, boolStr(v))
	return true
}
func (r *recorder) OnInteger(positive bool, magnitude uint64) bool {
	r.events = append(r.events, "int")
	r.lastPositive = positive
	r.lastMagnitude = magnitude
	return true
}
func (r *recorder) OnFloat(v float64) bool       { r.events = append(r.events, "float"); r.lastFloat = v; return true }
func (r *recorder) OnListBegin() bool            { r.events = append(r.events, "list("); return true }
func (r *recorder) OnMapBegin() bool             { r.events = append(r.events, "map("); return true }
func (r *recorder) OnContainerEnd() bool         { r.events = append(r.events, ")"); return true }
func (r *recorder) OnArrayBegin(k ArrayKind, n uint64) bool {
	r.events = append(r.events, "arr(")
	return true
}
func (r *recorder) OnArrayData(data []byte) bool {
	r.lastData = append(r.lastData[:0:0], data...)
	r.events = append(r.events, "data")
	return true
}

func boolStr(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func encodeOne(t *testing.T, fn func(e *encoder.Encoder)) []byte {
	t.Helper()
	buf := make([]byte, 256)
	enc, err := encoder.New()
	require.NoError(t, err)
	enc.Begin(buf)
	fn(enc)
	require.True(t, enc.End().OK())

	return buf[:enc.BufferOffset()]
}

func TestDecodeInteger(t *testing.T) {
	doc := encodeOne(t, func(e *encoder.Encoder) { require.True(t, e.AddInteger(true, 0x10000).OK()) })

	dec, err := New()
	require.NoError(t, err)
	rec := &recorder{}
	dec.Begin(rec)

	var consumed int
	st := dec.Feed(doc, &consumed)
	require.True(t, st.OK())
	assert.Equal(t, len(doc), consumed)
	assert.Equal(t, []string{"int"}, rec.events)
	assert.True(t, dec.End().OK())
}

func TestDecodeStringShortForm(t *testing.T) {
	doc := encodeOne(t, func(e *encoder.Encoder) { require.True(t, e.AddString([]byte("hi")).OK()) })

	dec, err := New()
	require.NoError(t, err)
	rec := &recorder{}
	dec.Begin(rec)

	var consumed int
	st := dec.Feed(doc, &consumed)
	require.True(t, st.OK())
	assert.Equal(t, []string{"arr(", "data"}, rec.events)
	assert.Equal(t, []byte("hi"), rec.lastData)
}

func TestDecodeNestedMapAndList(t *testing.T) {
	doc := encodeOne(t, func(e *encoder.Encoder) {
		require.True(t, e.MapBegin().OK())
		require.True(t, e.AddString([]byte("nums")).OK())
		require.True(t, e.ListBegin().OK())
		require.True(t, e.AddInteger(true, 1).OK())
		require.True(t, e.ContainerEnd().OK())
		require.True(t, e.ContainerEnd().OK())
	})

	dec, err := New()
	require.NoError(t, err)
	rec := &recorder{}
	dec.Begin(rec)

	var consumed int
	st := dec.Feed(doc, &consumed)
	require.True(t, st.OK())
	assert.Equal(t, len(doc), consumed)
	assert.Equal(t, []string{"map(", "arr(", "data", "list(", "int", ")", ")"}, rec.events)
	assert.True(t, dec.End().OK())
}

func TestFeedNeedMoreDataResumes(t *testing.T) {
	doc := encodeOne(t, func(e *encoder.Encoder) { require.True(t, e.AddInteger(true, 0x10000).OK()) })

	dec, err := New()
	require.NoError(t, err)
	rec := &recorder{}
	dec.Begin(rec)

	var consumed int
	st := dec.Feed(doc[:2], &consumed) // tag byte plus one VLQ group, not the whole token
	assert.Equal(t, StatusNeedMoreData, st)
	assert.Equal(t, 0, consumed)
	assert.Empty(t, rec.events)

	st = dec.Feed(doc, &consumed)
	require.True(t, st.OK())
	assert.Equal(t, []string{"int"}, rec.events)
}

func TestDecodeRejectsReservedTag(t *testing.T) {
	dec, err := New()
	require.NoError(t, err)
	dec.Begin(&recorder{})

	var consumed int
	st := dec.Feed([]byte{0x72}, &consumed)
	assert.Equal(t, StatusInvalidTag, st)
}

func TestDecodeArraySpansFeedCalls(t *testing.T) {
	doc := encodeOne(t, func(e *encoder.Encoder) {
		require.True(t, e.BytesBegin(6).OK())
		var n int
		require.True(t, e.AddData([]byte{1, 2, 3, 4, 5, 6}, &n).OK())
	})

	dec, err := New()
	require.NoError(t, err)
	rec := &recorder{}
	dec.Begin(rec)

	// Feed the tag, VLQ length, and the first three payload bytes only;
	// the decoder must hand off the partial chunk and wait for the rest
	// without losing its place in the array.
	var consumed int
	st := dec.Feed(doc[:len(doc)-3], &consumed)
	assert.Equal(t, StatusNeedMoreData, st)
	assert.Equal(t, len(doc)-3, consumed)
	assert.Equal(t, []byte{1, 2, 3}, rec.lastData)
	assert.Equal(t, StatusIncompleteArrayField, dec.End())

	st = dec.Feed(doc[len(doc)-3:], &consumed)
	require.True(t, st.OK())
	assert.Equal(t, 3, consumed)
	assert.Equal(t, []byte{4, 5, 6}, rec.lastData)
	assert.Equal(t, []string{"arr(", "data", "data"}, rec.events)
	assert.True(t, dec.End().OK())
}

func TestEndRejectsIncompleteArrayField(t *testing.T) {
	buf := make([]byte, 64)
	enc, err := encoder.New()
	require.NoError(t, err)
	enc.Begin(buf)
	require.True(t, enc.StringBegin(5).OK())
	var n int
	require.True(t, enc.AddData([]byte("hi"), &n).OK())
	doc := buf[:enc.BufferOffset()]

	dec, err := New()
	require.NoError(t, err)
	rec := &recorder{}
	dec.Begin(rec)

	var consumed int
	st := dec.Feed(doc, &consumed)
	assert.Equal(t, StatusNeedMoreData, st)
	assert.Equal(t, StatusIncompleteArrayField, dec.End())
}

func TestDecodeMapKeyCannotBeList(t *testing.T) {
	dec, err := New()
	require.NoError(t, err)
	dec.Begin(&recorder{})

	var consumed int
	require.True(t, dec.Feed([]byte{0x78}, &consumed).OK()) // MapUnordered
	st := dec.Feed([]byte{0x77}, &consumed)                  // List as a key: forbidden
	assert.Equal(t, StatusIncorrectMapKeyType, st)
}
