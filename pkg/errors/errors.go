package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of failure
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors, fatal for the whole run
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigVersion ErrorCode = "CONFIG_VERSION"

	// Selection and run errors
	ErrInvalidItem ErrorCode = "INVALID_ITEM"
	ErrItemsFailed ErrorCode = "ITEMS_FAILED"

	// Mapping errors
	ErrFileMapping ErrorCode = "FILE_MAPPING"

	// Hook errors
	ErrHookParse     ErrorCode = "HOOK_PARSE"
	ErrHookExecution ErrorCode = "HOOK_EXECUTION"
	ErrHookStart     ErrorCode = "HOOK_START"

	// Path errors
	ErrInvalidPath ErrorCode = "INVALID_PATH"
	ErrHomeNotSet  ErrorCode = "HOME_NOT_SET"

	// FileSystem errors
	ErrDirCreate           ErrorCode = "DIR_CREATE"
	ErrSymlinkExists       ErrorCode = "SYMLINK_EXISTS"
	ErrSymlinkCreate       ErrorCode = "SYMLINK_CREATE"
	ErrUnsupportedPlatform ErrorCode = "UNSUPPORTED_PLATFORM"
)

// DolinkError is the error type shared by every dolink package. Code is
// stable and is what callers and tests match on; Details carries the
// values a caller may want to report (paths, item names, exit codes).
type DolinkError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
	Wrapped error
}

func (e *DolinkError) Error() string {
	msg := "[" + string(e.Code) + "] " + e.Message
	if e.Wrapped == nil {
		return msg
	}
	return msg + ": " + e.Wrapped.Error()
}

func (e *DolinkError) Unwrap() error {
	return e.Wrapped
}

// Is matches any DolinkError carrying the same code
func (e *DolinkError) Is(target error) bool {
	other, ok := as(target)
	return ok && other.Code == e.Code
}

// WithDetail sets key on the error and returns it for chaining
func (e *DolinkError) WithDetail(key string, value any) *DolinkError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

func build(code ErrorCode, message string, wrapped error) *DolinkError {
	return &DolinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]any),
		Wrapped: wrapped,
	}
}

func New(code ErrorCode, message string) *DolinkError {
	return build(code, message, nil)
}

func Newf(code ErrorCode, format string, args ...any) *DolinkError {
	return build(code, fmt.Sprintf(format, args...), nil)
}

// Wrap attaches code and message to err. A nil err stays nil.
func Wrap(err error, code ErrorCode, message string) *DolinkError {
	if err == nil {
		return nil
	}
	return build(code, message, err)
}

func Wrapf(err error, code ErrorCode, format string, args ...any) *DolinkError {
	if err == nil {
		return nil
	}
	return build(code, fmt.Sprintf(format, args...), err)
}

func as(err error) (*DolinkError, bool) {
	var target *DolinkError
	ok := errors.As(err, &target)
	return target, ok
}

// IsErrorCode reports whether err, or anything it wraps, has code
func IsErrorCode(err error, code ErrorCode) bool {
	e, ok := as(err)
	return ok && e.Code == code
}

// GetErrorCode returns the first code found in err's chain, or ErrUnknown
func GetErrorCode(err error) ErrorCode {
	if e, ok := as(err); ok {
		return e.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of the first DolinkError in err's chain
func GetErrorDetails(err error) map[string]any {
	if e, ok := as(err); ok {
		return e.Details
	}
	return nil
}
