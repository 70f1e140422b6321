package decoder

import "github.com/cbe-go/cbe/internal/validate"

// arrayState tracks an in-progress array field between Feed calls,
// mirroring encoder.arrayState on the decode side.
type arrayState struct {
	active   bool
	kind     ArrayKind
	totalLen uint64
	written  uint64
	text     *validate.Stream // nil for ArrayBytes, which carries no text constraint
}

// textStreamFor returns the incremental validator for kind, or nil for
// ArrayBytes.
func textStreamFor(kind ArrayKind) *validate.Stream {
	switch kind {
	case ArrayString:
		return validate.NewStream(validate.StreamUTF8)
	case ArrayComment:
		return validate.NewStream(validate.StreamComment)
	case ArrayURI:
		return validate.NewStream(validate.StreamURI)
	default:
		return nil
	}
}
