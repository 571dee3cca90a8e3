package errors

import (
	"errors"
	"fmt"
)

// Sentinels wrapped by AppError values; match them with errors.Is.
var (
	ErrEmptyInput      = errors.New("input is empty or contains only whitespace")
	ErrInvalidJSON     = errors.New("invalid JSON format")
	ErrMultipleJSON    = errors.New("multiple JSON values found at the root, only one is allowed")
	ErrNumberRange     = errors.New("number out of range")
	ErrFileNotFound    = errors.New("file not found")
	ErrFileEmpty       = errors.New("file is empty")
	ErrInvalidFilePath = errors.New("invalid file path")
	ErrUnknownFormat   = errors.New("unknown output format")
)

// ErrorType is the stage of a run that failed.
type ErrorType string

const (
	ErrorTypeInput   ErrorType = "input"
	ErrorTypeParsing ErrorType = "parsing"
	ErrorTypeConfig  ErrorType = "config"
	ErrorTypeOutput  ErrorType = "output"
	ErrorTypeUnknown ErrorType = "unknown"
)

// AppError ties a failure to the stage that produced it.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *AppError of the same type, so
// errors.Is(err, &AppError{Type: ErrorTypeParsing}) matches any parse failure.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

func newError(kind ErrorType, message string, err error) *AppError {
	return &AppError{Type: kind, Message: message, Err: err}
}

// NewInputError reports a document that could not be opened, decompressed or read.
func NewInputError(message string, err error) *AppError {
	return newError(ErrorTypeInput, message, err)
}

// NewParsingError reports a document that is not a single valid JSON value.
func NewParsingError(message string, err error) *AppError {
	return newError(ErrorTypeParsing, message, err)
}

// NewConfigError reports an unreadable config file or invalid options.
func NewConfigError(message string, err error) *AppError {
	return newError(ErrorTypeConfig, message, err)
}

// NewOutputError reports a report that could not be rendered or written.
func NewOutputError(message string, err error) *AppError {
	return newError(ErrorTypeOutput, message, err)
}

var typePrefixes = map[ErrorType]string{
	ErrorTypeInput:   "Input error",
	ErrorTypeParsing: "JSON parsing error",
	ErrorTypeConfig:  "Configuration error",
	ErrorTypeOutput:  "Output error",
}

// sentinelMessages is checked in order; the first match wins.
var sentinelMessages = []struct {
	err     error
	message string
}{
	{ErrEmptyInput, "The input is empty. Please provide valid JSON data."},
	{ErrInvalidJSON, "The input contains invalid JSON. Please check your JSON syntax."},
	{ErrMultipleJSON, "Multiple JSON values found. Please provide a single JSON document."},
	{ErrNumberRange, "The input contains a number that cannot be represented as a double."},
	{ErrFileNotFound, "The specified file could not be found. Please check the file path."},
	{ErrFileEmpty, "The specified file is empty. Please provide a file with valid JSON content."},
	{ErrInvalidFilePath, "Invalid file path. Please provide a valid file path."},
	{ErrUnknownFormat, "Unknown output format. Use text, json, yaml or markdown."},
}

// UserFriendlyError renders err as the one-line message printed to stderr.
// Config errors carry their cause, since it names the offending option.
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		prefix, ok := typePrefixes[appErr.Type]
		if !ok {
			prefix = "Error"
		}
		if appErr.Type == ErrorTypeConfig && appErr.Err != nil {
			return fmt.Sprintf("%s: %s: %v", prefix, appErr.Message, appErr.Err)
		}
		return fmt.Sprintf("%s: %s", prefix, appErr.Message)
	}

	for _, s := range sentinelMessages {
		if errors.Is(err, s.err) {
			return "Error: " + s.message
		}
	}
	return fmt.Sprintf("Error: %v", err)
}
