// Package errors defines the exit-coded error type used by the CLI.
package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/crafted-tech/ztdesktop/internal/logging"

	"github.com/fatih/color"
)

type ExitCode int

const (
	ExitCodeSuccess    ExitCode = 0
	ExitCodeGeneral    ExitCode = 1
	ExitCodeConfig     ExitCode = 2
	ExitCodeClipboard  ExitCode = 3
	ExitCodeWindow     ExitCode = 4
	ExitCodeValidation ExitCode = 5
	ExitCodeNoText     ExitCode = 6
)

type Error struct {
	Code       ExitCode
	Message    string
	Underlying error
	Suggestion string
}

func (e *Error) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Underlying)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Underlying
}

func New(code ExitCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

func NewWithError(code ExitCode, message string, err error) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Underlying: err,
	}
}

func NewWithSuggestion(code ExitCode, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap prefixes err with message. An *Error keeps its code and suggestion;
// anything else gets ExitCodeGeneral.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if wrapped, ok := err.(*Error); ok {
		return &Error{
			Code:       wrapped.Code,
			Message:    message + ": " + wrapped.Message,
			Underlying: wrapped.Underlying,
			Suggestion: wrapped.Suggestion,
		}
	}

	return &Error{
		Code:       ExitCodeGeneral,
		Message:    message,
		Underlying: err,
	}
}

func WrapWithCode(err error, code ExitCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:       code,
		Message:    message,
		Underlying: err,
	}
}

func IsExitCode(err error, code ExitCode) bool {
	if err == nil {
		return false
	}

	if e, ok := err.(*Error); ok {
		return e.Code == code
	}

	return false
}

func ValidationError(message string) *Error {
	return &Error{
		Code:    ExitCodeValidation,
		Message: message,
	}
}

func ConfigError(message string, err error) *Error {
	return &Error{
		Code:       ExitCodeConfig,
		Message:    message,
		Underlying: err,
		Suggestion: "Check the config file (see 'ztdesktop --help' for its location) or pass --config.",
	}
}

// HandleReturn logs err, prints it to stderr and returns the exit code.
func HandleReturn(err error) ExitCode {
	return handle(os.Stderr, err)
}

func handle(w io.Writer, err error) ExitCode {
	if err == nil {
		return ExitCodeSuccess
	}

	exitCode := ExitCodeGeneral
	message := err.Error()
	var suggestion string

	if e, ok := err.(*Error); ok {
		exitCode = e.Code
		message = e.Error()
		suggestion = e.Suggestion

		if e.Underlying != nil {
			logging.Debug().Err(e.Underlying).Int("code", int(e.Code)).Msg(e.Message)
		}
	}

	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow)

	red.Fprint(w, "Error: ")
	fmt.Fprintln(w, message)

	if suggestion != "" {
		yellow.Fprint(w, "Suggestion: ")
		lines := strings.Split(suggestion, "\n")
		fmt.Fprintln(w, lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintln(w, "            "+line)
		}
	}

	return exitCode
}
