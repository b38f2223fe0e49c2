package core

import (
	"errors"
	"fmt"
)

// ErrorKind classifies conversion failures. All kinds are recoverable at
// the boundary: the caller reports them to the user and waits for a
// corrected re-submission. Nothing is retried automatically.
type ErrorKind string

const (
	// DecodeFailure means the input bytes are not valid UTF-8.
	DecodeFailure ErrorKind = "decode_failure"

	// ParseFailure means the LAS or CSV content is malformed per the
	// underlying parser. The parser's own message is carried along.
	ParseFailure ErrorKind = "parse_failure"

	// WriteFailure means a dataset column could not be serialized into a
	// LAS curve (non-numeric values in a curve column).
	WriteFailure ErrorKind = "write_failure"

	// EmptyPlot means no plottable curve remained after vocabulary
	// filtering and the all-columns fallback. Non-fatal, user-visible.
	EmptyPlot ErrorKind = "empty_plot"
)

// ConversionError wraps a failure with its kind. No partial output
// accompanies one of these: conversion is all-or-nothing per call.
type ConversionError struct {
	Kind ErrorKind
	Err  error
}

func (e *ConversionError) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// convErr builds a ConversionError of the given kind.
func convErr(kind ErrorKind, format string, args ...any) *ConversionError {
	return &ConversionError{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the ErrorKind of err, or "" when err is not a
// ConversionError.
func KindOf(err error) ErrorKind {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

// UserMessage provides user-friendly error information with actionable
// guidance. The Code is quoted to support staff for faster diagnosis.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// userMessages maps conversion error kinds to user messages.
var userMessages = map[ErrorKind]UserMessage{
	DecodeFailure: {
		Message: "The file is not valid UTF-8 text",
		Action:  "Re-save the file with UTF-8 encoding and upload again",
		Code:    "DEC001",
	},
	ParseFailure: {
		Message: "The file could not be parsed",
		Action:  "Check that the file is a well-formed LAS or CSV file",
		Code:    "PRS001",
	},
	WriteFailure: {
		Message: "A column could not be written as a LAS curve",
		Action:  "Remove or fix non-numeric values in curve columns",
		Code:    "WRT001",
	},
	EmptyPlot: {
		Message: "No curves available to plot",
		Action:  "Upload a file with at least one curve besides the depth column",
		Code:    "PLT001",
	},
}

// defaultMessage is returned when the error is not a ConversionError.
// Support staff should check application logs for the original error
// when users report ERR000.
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}
	if msg, ok := userMessages[KindOf(err)]; ok {
		return msg
	}
	return defaultMessage
}
