package airdropscout

import (
	"errors"
	"fmt"
)

var (
	// ErrServiceUnavailable is the only error Analyze returns. The underlying
	// cause is logged, not wrapped.
	ErrServiceUnavailable = errors.New("AI service connection error")
	// ErrAddressTooShort is returned by Session.Submit for trimmed input of
	// 10 characters or fewer.
	ErrAddressTooShort = errors.New("address is too short")
	// ErrBusy is returned by Session.Submit while an analysis is in flight.
	ErrBusy = errors.New("an analysis is already in progress")
)

// Kind is a classification of generator error type.
type Kind string

const (
	InvalidInput Kind = "invalid_input"
	Transport    Kind = "transport"
	StatusCode   Kind = "status_code"
	Invariant    Kind = "invariant"
)

// GeneratorError represents errors from the generator layer.
type GeneratorError struct {
	Kind    Kind
	Message string
	Err     error
	// The provider name
	Provider string
	// The status for the StatusCode error kind
	Status int
}

func (e *GeneratorError) Error() string {
	switch e.Kind {
	case InvalidInput:
		return fmt.Sprintf("invalid input: %s", e.Message)
	case Transport:
		return fmt.Sprintf("transport error: %s", e.Err)
	case StatusCode:
		return fmt.Sprintf("status error: %s (status %d)", e.Message, e.Status)
	case Invariant:
		return fmt.Sprintf("invariant from %s: %s", e.Provider, e.Message)
	default:
		return e.Message
	}
}

// Unwrap allows errors.Is / errors.As to work with wrapped errors.
func (e *GeneratorError) Unwrap() error {
	return e.Err
}

// Helper constructors
func NewInvalidInputError(msg string) *GeneratorError {
	return &GeneratorError{Kind: InvalidInput, Message: msg}
}

func NewTransportError(err error) *GeneratorError {
	return &GeneratorError{Kind: Transport, Err: err}
}

func NewStatusCodeError(status int, body string) *GeneratorError {
	return &GeneratorError{Kind: StatusCode, Message: body, Status: status}
}

func NewInvariantError(provider string, msg string) *GeneratorError {
	return &GeneratorError{Kind: Invariant, Message: msg, Provider: provider}
}
