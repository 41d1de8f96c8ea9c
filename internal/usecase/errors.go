package usecase

import "fmt"

type ErrorCode string

const (
	ErrorUnknownIntent      ErrorCode = "UNKNOWN_INTENT"
	ErrorUnknownRequest     ErrorCode = "UNKNOWN_REQUEST"
	ErrorInvalidApplication ErrorCode = "INVALID_APPLICATION"
	ErrorInternal           ErrorCode = "INTERNAL_ERROR"
)

type Error struct {
	Code   ErrorCode
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("usecase: %s (%s)", e.Code, e.Reason)
	}
	return fmt.Sprintf("usecase: %s (%s): %v", e.Code, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewError builds a coded error; the transport adapter uses it for failures
// detected before dispatch.
func NewError(code ErrorCode, reason string, err error) *Error {
	return &Error{Code: code, Reason: reason, Err: err}
}
