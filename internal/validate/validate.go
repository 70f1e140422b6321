// Package validate implements boolean text validators for CBE string
// content: well-formed UTF-8 for string/comment, RFC 3986 characters for
// URI, and comment's extra control-character exclusion. Built on
// unicode/utf8 and a hand-rolled RFC 3986 byte class; see DESIGN.md for
// why no third-party validator fits these narrow, CBE-specific character
// classes. Stream adapts these whole-buffer checks to validate a field's
// payload as it arrives in arbitrary chunks.
package validate

import "unicode/utf8"

// UTF8 reports whether b is well-formed UTF-8 with no byte-order mark.
func UTF8(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}

	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return false
	}

	return true
}

// Comment reports whether b is valid CBE comment content: well-formed
// UTF-8, no BOM, and no control characters other than tab, newline, and
// carriage return.
func Comment(b []byte) bool {
	if !UTF8(b) {
		return false
	}

	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
		if r == 0x7f {
			return false
		}
		i += size
	}

	return true
}

// URI reports whether b consists only of characters legal in an RFC 3986
// URI reference: unreserved, reserved (gen-delims + sub-delims), and
// percent-encoding triplets. No normalization is performed.
func URI(b []byte) bool {
	for i := 0; i < len(b); i++ {
		c := b[i]
		if c == '%' {
			if i+2 >= len(b) || !isHex(b[i+1]) || !isHex(b[i+2]) {
				return false
			}
			i += 2
			continue
		}
		if !isURIChar(c) {
			return false
		}
	}

	return true
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// isURIChar reports whether c is an RFC 3986 unreserved, gen-delim, or
// sub-delim character (everything legal outside of a percent-encoding).
func isURIChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}

	switch c {
	case '-', '.', '_', '~', // unreserved
		':', '/', '?', '#', '[', ']', '@', // gen-delims
		'!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=': // sub-delims
		return true
	default:
		return false
	}
}

// splitUTF8 divides b into the longest leading span that ends on a
// complete rune boundary and a trailing span of 0-3 bytes that might be
// the start of a rune continued in the next chunk. It lets a streaming
// caller validate UTF-8 incrementally without rejecting a multi-byte
// rune that happens to straddle a buffer boundary.
func splitUTF8(b []byte) (complete, carry []byte) {
	n := len(b)
	if n == 0 {
		return b, nil
	}

	start := -1
	for k := 1; k <= 4 && k <= n; k++ {
		if utf8.RuneStart(b[n-k]) {
			start = n - k
			break
		}
	}
	if start < 0 {
		return b, nil
	}

	if _, size := utf8.DecodeRune(b[start:]); start+size > n {
		return b[:start], b[start:]
	}

	return b, nil
}

// splitURI divides b into a complete leading span and 0-2 trailing bytes
// that might be the start of a percent-encoding triplet continued in the
// next chunk.
func splitURI(b []byte) (complete, carry []byte) {
	n := len(b)
	if n == 0 {
		return b, nil
	}
	if b[n-1] == '%' {
		return b[:n-1], b[n-1:]
	}
	if n >= 2 && b[n-2] == '%' && isHex(b[n-1]) {
		return b[:n-2], b[n-2:]
	}

	return b, nil
}

// StreamKind selects which validator a Stream applies to each chunk it
// is fed.
type StreamKind int

const (
	StreamUTF8 StreamKind = iota
	StreamComment
	StreamURI
)

// Stream incrementally validates text content that arrives in arbitrary,
// not necessarily rune-aligned chunks: the streaming array field path in
// both encoder and decoder hands payload bytes over as they fit in
// whatever buffer is current, which may split a multi-byte rune or a
// percent-encoding triplet across two chunks. Stream holds back the
// undecided trailing bytes of each chunk and validates them once the
// rest of the sequence arrives.
type Stream struct {
	kind  StreamKind
	carry []byte
}

// NewStream constructs a Stream for the given content kind.
func NewStream(kind StreamKind) *Stream {
	return &Stream{kind: kind}
}

// Feed validates the next chunk of a field's payload, returning false if
// the bytes seen so far (including any carried-over partial sequence)
// are invalid. final reports whether chunk completes the field; a
// nonempty carry at that point means the field ended mid-sequence, which
// is itself a validation failure.
func (s *Stream) Feed(chunk []byte, final bool) bool {
	combined := append(append([]byte(nil), s.carry...), chunk...)

	var complete, carry []byte
	if s.kind == StreamURI {
		complete, carry = splitURI(combined)
	} else {
		complete, carry = splitUTF8(combined)
	}

	var ok bool
	switch s.kind {
	case StreamComment:
		ok = Comment(complete)
	case StreamURI:
		ok = URI(complete)
	default:
		ok = UTF8(complete)
	}
	if !ok {
		return false
	}
	if final && len(carry) > 0 {
		return false
	}

	s.carry = carry

	return true
}
