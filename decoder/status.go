package decoder

import "github.com/cbe-go/cbe/errs"

// Status is the result of every Decoder operation. The zero value,
// StatusOK, means the operation succeeded.
type Status uint8

const (
	StatusOK Status = iota
	StatusNeedMoreData
	StatusStopped
	StatusInvalidTag
	StatusInvalidArgument
	StatusInvalidArrayData
	StatusUnbalancedContainers
	StatusIncorrectMapKeyType
	StatusMapMissingValue
	StatusArrayFieldLengthExceeded
	StatusNotInsideArrayField
	StatusIncompleteArrayField
	StatusMaxContainerDepthExceeded
	StatusDocumentComplete
	StatusInternalBug
)

// OK reports whether the status is StatusOK.
func (s Status) OK() bool { return s == StatusOK }

// Error implements the error interface.
func (s Status) Error() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNeedMoreData:
		return errs.ErrNeedMoreData.Error()
	case StatusStopped:
		return errs.ErrStopped.Error()
	case StatusInvalidTag:
		return errs.ErrInvalidTag.Error()
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
	case StatusArrayFieldLengthExceeded:
		return errs.ErrArrayFieldTooLong.Error()
	case StatusNotInsideArrayField:
		return errs.ErrNotInsideArrayField.Error()
	case StatusIncompleteArrayField:
		return errs.ErrIncompleteArrayField.Error()
	case StatusMaxContainerDepthExceeded:
		return errs.ErrMaxContainerDepth.Error()
	case StatusDocumentComplete:
		return errs.ErrDocumentComplete.Error()
	case StatusInternalBug:
		return errs.ErrInternalBug.Error()
	default:
		return "unknown decoder status"
	}
}

// Unwrap lets errors.Is(status, errs.ErrXxx) work against the sentinels.
func (s Status) Unwrap() error {
	switch s {
	case StatusNeedMoreData:
		return errs.ErrNeedMoreData
	case StatusStopped:
		return errs.ErrStopped
	case StatusInvalidTag:
		return errs.ErrInvalidTag
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
	case StatusArrayFieldLengthExceeded:
		return errs.ErrArrayFieldTooLong
	case StatusNotInsideArrayField:
		return errs.ErrNotInsideArrayField
	case StatusIncompleteArrayField:
		return errs.ErrIncompleteArrayField
	case StatusMaxContainerDepthExceeded:
		return errs.ErrMaxContainerDepth
	case StatusDocumentComplete:
		return errs.ErrDocumentComplete
	case StatusInternalBug:
		return errs.ErrInternalBug
	default:
		return nil
	}
}

var _ error = StatusOK
