package models

import (
	"errors"
	"fmt"
)

// Error kinds surfaced to callers. Every failed aggregation carries exactly one.
const (
	KindValidation = "validation_error"
	KindMissingKey = "missing_key"
	KindAPI        = "api_error"
	KindParse      = "parse_error"
)

// FetchError is the terminal error of a single aggregation request.
type FetchError struct {
	Kind    string
	Message string
	Code    string
}

func (e *FetchError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s (code %s)", e.Kind, e.Message, e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Envelope returns the wire form rendered by the presentation layer.
func (e *FetchError) Envelope() ErrorEnvelope {
	return ErrorEnvelope{Error: e.Kind, Message: e.Message, Code: e.Code}
}

// ErrorEnvelope is the {error, message, code?} object returned on failure.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func NewValidationError(format string, args ...any) *FetchError {
	return &FetchError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NewMissingKeyError(format string, args ...any) *FetchError {
	return &FetchError{Kind: KindMissingKey, Message: fmt.Sprintf(format, args...)}
}

func NewAPIError(code, format string, args ...any) *FetchError {
	return &FetchError{Kind: KindAPI, Message: fmt.Sprintf(format, args...), Code: code}
}

func NewParseError(format string, args ...any) *FetchError {
	return &FetchError{Kind: KindParse, Message: fmt.Sprintf(format, args...)}
}

// AsFetchError unwraps err into a *FetchError. Errors from outside the
// taxonomy are reported as api_error so callers always get one of the four kinds.
func AsFetchError(err error) *FetchError {
	if err == nil {
		return nil
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe
	}
	return &FetchError{Kind: KindAPI, Message: err.Error()}
}
