// Package errors classifies the failures a holiday search can end in and reports them.
//
// Every failure resolves into one of three kinds. None of them is meant to escape
// the search orchestrator; they exist so callers can log the cause and pick the
// user-facing message.
package errors

import (
	stderrors "errors"
	"fmt"
)

// User-facing messages.
const (
	MsgValidation  = "Please select both a country and a year."
	MsgAPIFallback = "Failed to fetch holidays. Please try again."
	MsgTransport   = "Network error. Please check your connection and try again."
)

// Kind is the failure category.
type Kind int

const (
	// KindUnknown is reported for errors this package did not create.
	KindUnknown Kind = iota
	// KindValidation means the search criteria were incomplete.
	KindValidation
	// KindAPI means the holiday API answered with success=false.
	KindAPI
	// KindTransport means the request failed or the body could not be decoded.
	KindTransport
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAPI:
		return "api"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Error is a classified search failure.
type Error struct {
	Kind Kind
	// Message is safe to show to the user.
	Message string
	// Err is the underlying cause, for logs only.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation returns a validation failure with the fixed user message.
func Validation() *Error {
	return &Error{Kind: KindValidation, Message: MsgValidation}
}

// API returns an API failure. An empty server message is replaced by MsgAPIFallback.
func API(serverMessage string) *Error {
	if serverMessage == "" {
		serverMessage = MsgAPIFallback
	}
	return &Error{Kind: KindAPI, Message: serverMessage}
}

// Transport wraps cause as a transport failure. The cause is never shown to the user.
func Transport(cause error) *Error {
	return &Error{Kind: KindTransport, Message: MsgTransport, Err: cause}
}

// KindOf reports the kind of err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// UserMessage returns the message to display for err.
// Unclassified errors get the transport message so that no raw cause reaches the user.
func UserMessage(err error) string {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Message
	}
	return MsgTransport
}
