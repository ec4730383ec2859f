// Package yerr describes the failures a lambda handler can run into.
//
// The set of codes is closed: every failure is one of NotFound, Backend,
// Parse or Config, and handlers translate the code into their fixed response.
package yerr

import (
	"errors"
	"fmt"
)

// Code classifies an error.
type Code uint8

const (
	// CodeBackend backend unavailable, access denied or any unclassified failure.
	CodeBackend Code = iota
	// CodeNotFound the requested key does not exist.
	CodeNotFound
	// CodeParse the stored value could not be decoded.
	CodeParse
	// CodeConfig the function is missing required configuration.
	CodeConfig
)

var codeStringMap = map[Code]string{
	CodeBackend:  "Backend",
	CodeNotFound: "NotFound",
	CodeParse:    "Parse",
	CodeConfig:   "Config",
}

func (c Code) String() string {
	msg, ok := codeStringMap[c]
	if !ok {
		return "XXX"
	}
	return msg
}

// Error is a classified error.
type Error struct {
	Code Code
	// Op is the operation that failed, eg. `s3.GetObject`.
	Op  string
	Err error
}

// New creates an Error.
func New(code Code, op string, err error) *Error {
	return &Error{Code: code, Op: op, Err: err}
}

// Errorf creates an Error with a formatted message.
func Errorf(code Code, op string, format string, a ...any) *Error {
	return New(code, op, fmt.Errorf(format, a...))
}

func (e *Error) Error() string {
	msg := "<nil>"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Op == "" {
		return fmt.Sprintf("%s error: message=%s", e.Code, msg)
	}
	return fmt.Sprintf("%s error: op=%s message=%s", e.Code, e.Op, msg)
}

func (e *Error) Unwrap() error { return e.Err }

// CodeOf returns the code of err, errors that were never classified are CodeBackend.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeBackend
}

// IsNotFound reports whether err was classified as CodeNotFound.
func IsNotFound(err error) bool {
	return err != nil && CodeOf(err) == CodeNotFound
}
