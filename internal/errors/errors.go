// Package errors defines the stable error code system for kioskgen.
package errors

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
)

// Code is a stable error code string.
type Code string

// Error codes. Stable public contract.
const (
	EUsage     Code = "E_USAGE"
	ENoWorkdir Code = "E_NO_WORKDIR"

	// Filesystem error codes. "Already exists" is never one of these.
	EMkdirFailed Code = "E_MKDIR_FAILED"
	EStatFailed  Code = "E_STAT_FAILED"
	EWriteFailed Code = "E_WRITE_FAILED"
)

// ScaffoldError is the standard error type for kioskgen errors.
type ScaffoldError struct {
	Code    Code
	Msg     string
	Cause   error
	Details map[string]string // optional structured context
}

// Error returns the stable error format: "CODE: message".
func (e *ScaffoldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *ScaffoldError) Unwrap() error {
	return e.Cause
}

// Wrap creates a new ScaffoldError wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &ScaffoldError{Code: code, Msg: msg, Cause: err}
}

// WrapWithDetails creates a new ScaffoldError wrapping an underlying error with details.
// Details map is copied (nil if empty).
func WrapWithDetails(code Code, msg string, err error, details map[string]string) error {
	return &ScaffoldError{Code: code, Msg: msg, Cause: err, Details: copyDetails(details)}
}

// GetCode extracts the error code from an error, or empty string if not a ScaffoldError.
func GetCode(err error) Code {
	var se *ScaffoldError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// AsScaffoldError returns (*ScaffoldError, true) if err is or wraps a ScaffoldError.
func AsScaffoldError(err error) (*ScaffoldError, bool) {
	var se *ScaffoldError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// LogAttrs returns the code and details of err as slog key/value pairs,
// details sorted by key. It returns nil if err is not a ScaffoldError.
func LogAttrs(err error) []any {
	se, ok := AsScaffoldError(err)
	if !ok {
		return nil
	}

	attrs := []any{slog.String("code", string(se.Code))}
	for _, k := range slices.Sorted(maps.Keys(se.Details)) {
		attrs = append(attrs, slog.String(k, se.Details[k]))
	}
	return attrs
}

func copyDetails(details map[string]string) map[string]string {
	if len(details) == 0 {
		return nil
	}
	cp := make(map[string]string, len(details))
	for k, v := range details {
		cp[k] = v
	}
	return cp
}

// ExitCode returns the appropriate exit code for an error.
// Returns 0 if err is nil, 2 for E_USAGE, 1 for all other errors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if GetCode(err) == EUsage {
		return 2
	}
	return 1
}

// Print writes the error to w in the stable stderr format:
//
//	error_code: <CODE>
//	<message>
//	cause: <underlying error>
//
// The cause line is omitted when there is no underlying error.
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	var se *ScaffoldError
	if errors.As(err, &se) {
		fmt.Fprintf(w, "error_code: %s\n", se.Code)
		fmt.Fprintln(w, se.Msg)
		if se.Cause != nil {
			fmt.Fprintf(w, "cause: %v\n", se.Cause)
		}
	} else {
		fmt.Fprintln(w, err.Error())
	}
}
