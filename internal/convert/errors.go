// ABOUTME: Conversion error types
// ABOUTME: Usage sentinel and operation errors carrying the failing path
package convert

import (
	"errors"
	"fmt"
)

// ErrUsage marks errors in the requested conversion itself, found before
// any file is touched
var ErrUsage = errors.New("usage error")

// Operation represents the conversion step that failed
type Operation string

const (
	OpRead      Operation = "read"
	OpDecode    Operation = "decode"
	OpEncode    Operation = "encode"
	OpTranscode Operation = "transcode"
	OpWrite     Operation = "write"
)

// Error is a failed conversion step on a file
type Error struct {
	Op   Operation
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}
