package clierr

import (
	"errors"
	"fmt"
)

// Process exit codes.
const (
	// ExitOK indicates the command completed successfully.
	ExitOK = 0

	// ExitFailure is used for every error routed through the classifier.
	ExitFailure = 1

	// ExitUsage indicates a usage or argument error detected by the
	// dispatcher before any command body ran.
	ExitUsage = 2
)

// ExitError is an intentional request to terminate the process with Code.
// The classifier never renders or rewrites it.
type ExitError struct {
	Code int
}

// Exit returns a control signal requesting the given exit code.
func Exit(code int) *ExitError {
	return &ExitError{Code: code}
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode returns the exit code carried by err. A nil error maps to
// ExitOK and any error that does not wrap an *ExitError maps to ExitUsage,
// since only dispatcher-level failures escape a wrapped command body.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}

// UsageError reports an invalid flag value or argument detected by the
// dispatcher. It is printed by the dispatcher, not the classifier.
type UsageError struct {
	Message string
}

// Usagef builds a UsageError from a format string.
func Usagef(format string, args ...any) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

func (e *UsageError) Error() string {
	return e.Message
}
