package errors

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ExitCode represents CLI exit codes
type ExitCode int

const (
	// ExitSuccess indicates successful execution
	ExitSuccess ExitCode = 0
	// ExitError indicates a general error
	ExitError ExitCode = 1
	// ExitUsageError indicates invalid command usage
	ExitUsageError ExitCode = 2
)

// Placeholder is printed instead of a rendered path when a render fails.
// A prompt must never show a diagnostic, only this marker.
const Placeholder = ":::::"

// Sentinel errors for rendering failures.
var (
	// ErrListDir indicates a directory on the path could not be listed.
	ErrListDir = errors.New("cannot list directory")
	// ErrInvalidEncoding indicates a path component is not valid UTF-8.
	ErrInvalidEncoding = errors.New("path component is not valid UTF-8")
	// ErrEmptyPath indicates an empty path was given.
	ErrEmptyPath = errors.New("empty path")
	// ErrNotAbsolute indicates a relative path was given.
	ErrNotAbsolute = errors.New("path is not absolute")
	// ErrNoHome indicates the home directory could not be determined.
	ErrNoHome = errors.New("cannot determine home directory")
	// ErrNoWorkingDir indicates the working directory could not be determined.
	ErrNoWorkingDir = errors.New("cannot determine working directory")
)

// CLIError represents a CLI error with user-friendly message and exit code
type CLIError struct {
	// TechnicalError is the underlying technical error (for logging)
	TechnicalError error
	// UserMsg is the user-friendly error message
	UserMsg string
	// ExitCode is the exit code to return
	ExitCode ExitCode
	// StackTrace contains the call stack when debug mode is enabled
	StackTrace string
}

// Error implements the error interface
func (e *CLIError) Error() string {
	if e.TechnicalError != nil {
		return fmt.Sprintf("%s: %v", e.UserMsg, e.TechnicalError)
	}
	return e.UserMsg
}

// Unwrap returns the underlying error
func (e *CLIError) Unwrap() error {
	return e.TechnicalError
}

// WithStackTrace adds a stack trace to the error
func (e *CLIError) WithStackTrace() *CLIError {
	e.StackTrace = captureStackTrace(2) // Skip 2 frames: WithStackTrace and its caller
	return e
}

// NewCLIError creates a new CLIError
func NewCLIError(technicalErr error, userMsg string, exitCode ExitCode) *CLIError {
	return &CLIError{
		TechnicalError: technicalErr,
		UserMsg:        userMsg,
		ExitCode:       exitCode,
	}
}

// NewUsageError creates a CLIError with ExitUsageError code
func NewUsageError(technicalErr error, userMsg string) *CLIError {
	return NewCLIError(technicalErr, userMsg, ExitUsageError)
}

// IsUsage reports whether err carries ExitUsageError
func IsUsage(err error) bool {
	var cliErr *CLIError
	return errors.As(err, &cliErr) && cliErr.ExitCode == ExitUsageError
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// captureStackTrace captures the current call stack
func captureStackTrace(skip int) string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(skip+1, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])

	var sb strings.Builder
	for {
		frame, more := frames.Next()
		if !more {
			break
		}
		// Skip runtime internal frames
		if strings.Contains(frame.Function, "runtime.") {
			continue
		}
		fmt.Fprintf(&sb, "  %s\n    %s:%d\n", frame.Function, frame.File, frame.Line)
	}
	return sb.String()
}

// FormatError formats an error for display, optionally including stack trace
func FormatError(err error, includeStack bool) string {
	var sb strings.Builder

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		sb.WriteString(cliErr.UserMsg)
		if cliErr.TechnicalError != nil && includeStack {
			sb.WriteString("\n\nTechnical details:\n  ")
			sb.WriteString(cliErr.TechnicalError.Error())
		}
		if cliErr.StackTrace != "" && includeStack {
			sb.WriteString("\n\nStack trace:\n")
			sb.WriteString(cliErr.StackTrace)
		}
	} else {
		sb.WriteString(err.Error())
	}

	return sb.String()
}
