package zon

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a fixed codec error condition.
type ErrorCode string

// Encode errors.
const (
	EncodeUnsupportedType ErrorCode = "EncodeUnsupportedType"
	EncodeCycle           ErrorCode = "EncodeCycle"
	EncodeOverflow        ErrorCode = "EncodeOverflow"
	// EncodePoisonKey mirrors DecodePoisonKey for forbidden keys that are
	// rejected before they ever reach the wire.
	EncodePoisonKey ErrorCode = "EncodePoisonKey"
)

// Decode syntax errors.
const (
	DecodeBadEscape          ErrorCode = "DecodeBadEscape"
	DecodeUnterminatedString ErrorCode = "DecodeUnterminatedString"
	DecodeBadCell            ErrorCode = "DecodeBadCell"
	DecodeBadNumber          ErrorCode = "DecodeBadNumber"
	DecodeBadHeader          ErrorCode = "DecodeBadHeader"
	DecodeKeyCollision       ErrorCode = "DecodeKeyCollision"
	DecodePoisonKey          ErrorCode = "DecodePoisonKey"
	DecodeBadUTF8            ErrorCode = "DecodeBadUTF8"
)

// Strict-mode violations.
const (
	ErrRowCount   ErrorCode = "E001"
	ErrFieldCount ErrorCode = "E002"
)

// Resource-limit violations.
const (
	ErrDocumentBytes ErrorCode = "E301"
	ErrLineBytes     ErrorCode = "E302"
	ErrArrayLen      ErrorCode = "E303"
	ErrObjectKeys    ErrorCode = "E304"
	DecodeDepth      ErrorCode = "DecodeDepth"
)

// Error is a tagged codec error. Line and Column are 1-based and
// best-effort; Context carries a snippet of the offending input.
type Error struct {
	Code    ErrorCode
	Message string
	Line    int
	Column  int
	Context string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("zon: %s at line %d: %s", e.Code, e.Line, e.Message)
	}
	return fmt.Sprintf("zon: %s: %s", e.Code, e.Message)
}

// Is implements errors.Is: two *Errors match when their codes match.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// newError creates an error without position information.
func newError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// newErrorAt creates an error carrying a source line and context snippet.
func newErrorAt(code ErrorCode, line int, context, format string, args ...any) *Error {
	if len(context) > 60 {
		context = context[:60] + "..."
	}
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Line:    line,
		Context: context,
	}
}

// IsCode reports whether err is a codec error with the given code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf returns the error code of a codec error, or "" for other errors.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
