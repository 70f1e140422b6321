// Package errs holds the sentinel errors shared by the encoder and decoder
// state machines. Callers wrap a package-level sentinel with
// fmt.Errorf("%w: detail", errs.ErrXxx, ...) so errors.Is still matches.
package errs

import "errors"

// Resumable errors. The caller may continue the operation after reacting
// to one of these (flush and supply a new buffer, feed more bytes, or
// decide whether to resume a stopped decode).
var (
	ErrNeedMoreRoom = errors.New("need more room")
	ErrNeedMoreData = errors.New("need more data")
	ErrStopped      = errors.New("stopped in callback")
)

// Grammar and argument errors. These leave the process in an unspecified
// but memory-safe state; the caller should discard it.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidTag also covers the reserved tag ranges 0x72-0x76 and
	// 0x94-0x98.
	ErrInvalidTag           = errors.New("invalid tag")
	ErrInvalidArrayData     = errors.New("invalid array data")
	ErrUnbalancedContainers = errors.New("unbalanced containers")
	ErrIncorrectMapKeyType  = errors.New("incorrect map key type")
	ErrMapMissingValue      = errors.New("map missing value for key")
	ErrIncompleteArrayField = errors.New("incomplete array field")
	ErrArrayFieldTooLong    = errors.New("array field length exceeded")
	ErrNotInsideArrayField  = errors.New("not inside array field")
	ErrMaxContainerDepth    = errors.New("max container depth exceeded")
	ErrDocumentComplete     = errors.New("document already has its top-level value")
	ErrInternalBug          = errors.New("internal bug")
)

// Envelope errors, raised by the envelope package when unwrapping an
// at-rest document container.
var (
	ErrInvalidEnvelopeMagic = errors.New("invalid envelope magic number")
	ErrInvalidEnvelopeFlags = errors.New("invalid envelope flags")
	ErrEnvelopeTooShort     = errors.New("envelope shorter than its fixed header")
	ErrChecksumMismatch     = errors.New("envelope checksum mismatch")
)
