package util

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies client-side failures.
type ErrorKind string

const (
	KindNetwork    ErrorKind = "NETWORK_FAILURE"
	KindHTTP       ErrorKind = "HTTP_ERROR"
	KindAuth       ErrorKind = "AUTH_ERROR"
	KindValidation ErrorKind = "VALIDATION_FAILED"
)

// ClientError standardizes application errors.
type ClientError struct {
	Kind       ErrorKind
	Message    string
	HTTPStatus int
	Err        error
}

func (e *ClientError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// NewNetworkFailure wraps a transport-level failure where the exchange never
// completed.
func NewNetworkFailure(err error) error {
	return &ClientError{Kind: KindNetwork, Message: "request failed", Err: err}
}

// NewHTTPError wraps a non-2xx response, keeping the backend-provided message
// when one could be parsed.
func NewHTTPError(status int, message string) error {
	if message == "" {
		message = http.StatusText(status)
	}
	return &ClientError{Kind: KindHTTP, Message: message, HTTPStatus: status}
}

// NewAuthError marks a rejected login or an invalidated session.
func NewAuthError(message string, status int) error {
	if message == "" {
		message = "authentication failed"
	}
	return &ClientError{Kind: KindAuth, Message: message, HTTPStatus: status}
}

// NewValidationError marks a client-side input failure that blocks the call
// entirely.
func NewValidationError(message string) error {
	return &ClientError{Kind: KindValidation, Message: message, HTTPStatus: http.StatusBadRequest}
}

// ToClientError converts generic errors to ClientError.
func ToClientError(err error) *ClientError {
	if err == nil {
		return nil
	}
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr
	}
	return &ClientError{Kind: KindNetwork, Message: "request failed", Err: err}
}

// IsAuthFailure reports whether err corresponds to an unauthorized or
// forbidden exchange, which invalidates the local session.
func IsAuthFailure(err error) bool {
	ce := ToClientError(err)
	if ce == nil {
		return false
	}
	if ce.Kind == KindAuth {
		return true
	}
	return ce.Kind == KindHTTP &&
		(ce.HTTPStatus == http.StatusUnauthorized || ce.HTTPStatus == http.StatusForbidden)
}

// IsValidation reports whether err is a client-side validation failure.
func IsValidation(err error) bool {
	ce := ToClientError(err)
	return ce != nil && ce.Kind == KindValidation
}
