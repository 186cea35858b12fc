package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/andybug/predcfb/internal/errs"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // The archive was read but its data was rejected
	ExitCommandError = 2 // Command error (bad flags, unreadable paths, write failures)
)

// Error codes reported in CLI output.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeNotFound    = "E002" // Archive missing or not a zip file
	ErrCodeConfig      = "E003" // Config file invalid
	ErrCodeWriteFailed = "E004" // Export or snapshot write error
	ErrCodeCancelled   = "E005" // Interrupted between files

	ErrCodeFormat    = "E101" // Field count, header, or missing file
	ErrCodeParse     = "E102" // Column text not convertible
	ErrCodeLookup    = "E103" // Unregistered code or identifier
	ErrCodeDuplicate = "E104" // Identifier or code already stored
	ErrCodeCapacity  = "E105" // Arena or index full
	ErrCodeWrongType = "E106" // Identifier stored with another type
)

// kindCodes maps load error kinds to CLI error codes.
var kindCodes = map[errs.Kind]string{
	errs.KindFormat:    ErrCodeFormat,
	errs.KindParse:     ErrCodeParse,
	errs.KindLookup:    ErrCodeLookup,
	errs.KindDuplicate: ErrCodeDuplicate,
	errs.KindCapacity:  ErrCodeCapacity,
	errs.KindWrongType: ErrCodeWrongType,
}

// codeFor returns the CLI error code for a load error.
func codeFor(err error) string {
	if code, ok := kindCodes[errs.KindOf(err)]; ok {
		return code
	}
	return ErrCodeGeneric
}

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E001", "E101", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	fmt.Fprintln(f.Writer, data)
	return nil
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// VerboseLog outputs a message only if verbose mode is enabled.
// When format is JSON, verbose logs go to ErrWriter to avoid corrupting JSON output.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

// errorDetails extracts the row position of a load error, if any.
func errorDetails(err error) map[string]any {
	var e *errs.Error
	if !errors.As(err, &e) || e.File == "" {
		return nil
	}
	details := map[string]any{"file": e.File}
	if e.Line > 0 {
		details["line"] = e.Line
	}
	if e.Column >= 0 {
		details["column"] = e.Column
	}
	if e.Header != "" {
		details["header"] = e.Header
	}
	return details
}
