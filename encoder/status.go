package encoder

import (
	"github.com/cbe-go/cbe/errs"
)

// Status is the result of every Encoder operation. The zero value,
// StatusOK, means the operation succeeded. Status implements
// error so callers can use errors.Is against the errs sentinels, or just
// compare against the named Status constants.
type Status uint8

const (
	StatusOK Status = iota
	StatusNeedMoreRoom
	StatusInvalidArgument
	StatusInvalidArrayData
	StatusUnbalancedContainers
	StatusIncorrectMapKeyType
	StatusMapMissingValue
	StatusIncompleteArrayField
	StatusArrayFieldLengthExceeded
	StatusNotInsideArrayField
	StatusMaxContainerDepthExceeded
	StatusDocumentComplete
)

// OK reports whether the status is StatusOK.
func (s Status) OK() bool { return s == StatusOK }

// Error implements the error interface so a non-OK Status can be
// returned and checked anywhere a plain error is expected.
func (s Status) Error() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNeedMoreRoom:
		return errs.ErrNeedMoreRoom.Error()
	case StatusInvalidArgument:
		return errs.ErrInvalidArgument.Error()
	case StatusInvalidArrayData:
		return errs.ErrInvalidArrayData.Error()
	case StatusUnbalancedContainers:
		return errs.ErrUnbalancedContainers.Error()
	case StatusIncorrectMapKeyType:
		return errs.ErrIncorrectMapKeyType.Error()
	case StatusMapMissingValue:
		return errs.ErrMapMissingValue.Error()
	case StatusIncompleteArrayField:
		return errs.ErrIncompleteArrayField.Error()
	case StatusArrayFieldLengthExceeded:
		return errs.ErrArrayFieldTooLong.Error()
	case StatusNotInsideArrayField:
		return errs.ErrNotInsideArrayField.Error()
	case StatusMaxContainerDepthExceeded:
		return errs.ErrMaxContainerDepth.Error()
	case StatusDocumentComplete:
		return errs.ErrDocumentComplete.Error()
	default:
		return "unknown encoder status"
	}
}

// Unwrap lets errors.Is(status, errs.ErrXxx) work against the sentinels
// in the errs package.
func (s Status) Unwrap() error {
	switch s {
	case StatusNeedMoreRoom:
		return errs.ErrNeedMoreRoom
	case StatusInvalidArgument:
		return errs.ErrInvalidArgument
	case StatusInvalidArrayData:
		return errs.ErrInvalidArrayData
	case StatusUnbalancedContainers:
		return errs.ErrUnbalancedContainers
	case StatusIncorrectMapKeyType:
		return errs.ErrIncorrectMapKeyType
	case StatusMapMissingValue:
		return errs.ErrMapMissingValue
	case StatusIncompleteArrayField:
		return errs.ErrIncompleteArrayField
	case StatusArrayFieldLengthExceeded:
		return errs.ErrArrayFieldTooLong
	case StatusNotInsideArrayField:
		return errs.ErrNotInsideArrayField
	case StatusMaxContainerDepthExceeded:
		return errs.ErrMaxContainerDepth
	case StatusDocumentComplete:
		return errs.ErrDocumentComplete
	default:
		return nil
	}
}

var _ error = StatusOK
