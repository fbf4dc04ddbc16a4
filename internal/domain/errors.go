package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedCurrency = errors.New("currency is not supported by provider")
	ErrUnknownCurrencyCode = errors.New("unknown currency code")
	ErrNotFound            = errors.New("rate not found")
	ErrMalformedResponse   = errors.New("malformed provider response")
	ErrInvalidRate         = errors.New("invalid rate")
	ErrTransport           = errors.New("transport failure")
	ErrCurrencyMismatch    = fmt.Errorf("%w: currency differs from requested", ErrMalformedResponse)
)

// TransportError is returned when the provider could not be reached or answered
// with a non-success status other than 404.
type TransportError struct {
	URL        string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request %s failed with status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("request %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// FieldParseError reports a single provider field that could not be converted.
type FieldParseError struct {
	Field string
	Err   error
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("failed to parse field %q: %v", e.Field, e.Err)
}

func (e *FieldParseError) Unwrap() error { return e.Err }
