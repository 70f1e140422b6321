package cbe

import (
	"fmt"
	"io"
	"strings"

	"github.com/cbe-go/cbe/decoder"
)

// Dump decodes data and writes an indented textual rendering of its
// structure to w, one line per value. It never builds an in-memory
// document tree: each callback writes its line immediately and forgets
// it, tracking only the current nesting depth.
func Dump(w io.Writer, data []byte) error {
	d := &dumper{w: w}

	dec, err := decoder.New()
	if err != nil {
		return err
	}
	dec.Begin(d)

	var consumed int
	if st := dec.Feed(data, &consumed); !st.OK() {
		return st
	}
	if st := dec.End(); !st.OK() {
		return st
	}

	return d.err
}

// dumper implements decoder.Callbacks, printing one line per value.
type dumper struct {
	decoder.BaseCallbacks
	w     io.Writer
	depth int
	err   error
}

func (d *dumper) indent() string { return strings.Repeat("  ", d.depth) }

func (d *dumper) printf(format string, args ...any) bool {
	if d.err != nil {
		return false
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)

	return d.err == nil
}

func (d *dumper) OnPadding(n int) bool { return true }
func (d *dumper) OnNil() bool          { return d.printf("%snil\n", d.indent()) }
func (d *dumper) OnBoolean(v bool) bool {
	return d.printf("%s%t\n", d.indent(), v)
}

func (d *dumper) OnInteger(positive bool, magnitude uint64) bool {
	if positive {
		return d.printf("%s%d\n", d.indent(), magnitude)
	}

	return d.printf("%s-%d\n", d.indent(), magnitude)
}

func (d *dumper) OnFloat(v float64) bool        { return d.printf("%s%g\n", d.indent(), v) }
func (d *dumper) OnDecimalFloat(v float64) bool { return d.printf("%s%gd\n", d.indent(), v) }

func (d *dumper) OnDate(year int32, month, day uint8) bool {
	return d.printf("%s%04d-%02d-%02d\n", d.indent(), year, month, day)
}

func (d *dumper) OnTime(hour, minute, second uint8, nanosecond uint32, tz decoder.TimeZone) bool {
	return d.printf("%s%02d:%02d:%02d.%09d\n", d.indent(), hour, minute, second, nanosecond)
}

func (d *dumper) OnTimestamp(year int32, month, day, hour, minute, second uint8, nanosecond uint32, tz decoder.TimeZone) bool {
	return d.printf("%s%04d-%02d-%02dT%02d:%02d:%02d.%09d\n", d.indent(), year, month, day, hour, minute, second, nanosecond)
}

func (d *dumper) OnArrayBegin(kind decoder.ArrayKind, totalLen uint64) bool {
	if !d.printf("%s%s(%d bytes): ", d.indent(), arrayKindName(kind), totalLen) {
		return false
	}
	if totalLen == 0 {
		// No OnArrayData follows an empty field, so finish its line here.
		return d.printf("%q\n", "")
	}

	return true
}

func (d *dumper) OnArrayData(data []byte) bool {
	return d.printf("%q", data) && d.printf("\n")
}

func (d *dumper) OnListBegin() bool {
	ok := d.printf("%slist {\n", d.indent())
	d.depth++

	return ok
}

func (d *dumper) beginMap(label string) bool {
	ok := d.printf("%s%s {\n", d.indent(), label)
	d.depth++

	return ok
}

func (d *dumper) OnMapBegin() bool         { return d.beginMap("map") }
func (d *dumper) OnOrderedMapBegin() bool  { return d.beginMap("orderedmap") }
func (d *dumper) OnMetadataMapBegin() bool { return d.beginMap("metadata") }

func (d *dumper) OnContainerEnd() bool {
	d.depth--

	return d.printf("%s}\n", d.indent())
}

func arrayKindName(k decoder.ArrayKind) string {
	switch k {
	case decoder.ArrayString:
		return "string"
	case decoder.ArrayBytes:
		return "bytes"
	case decoder.ArrayURI:
		return "uri"
	case decoder.ArrayComment:
		return "comment"
	default:
		return "array"
	}
}
