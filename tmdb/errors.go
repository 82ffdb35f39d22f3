package tmdb

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownCategory indicates a type key outside the category table.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrLimitOutOfRange indicates a limit that is not an integer in [MinLimit, MaxLimit].
	ErrLimitOutOfRange = errors.New("limit out of range")
	// ErrUnavailable indicates a transport failure or a non-success provider response.
	ErrUnavailable = errors.New("catalog unavailable")
	// ErrNoCredential indicates a request attempted without an API key.
	ErrNoCredential = errors.New("no API key provided")
)

// CategoryError reports an unknown type key together with the accepted ones.
type CategoryError struct {
	Input   string
	Closest string
}

func (e *CategoryError) Error() string {
	msg := fmt.Sprintf("invalid type %q, use one of: %s", e.Input, strings.Join(Keys(), ", "))
	if e.Closest != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Closest)
	}
	return msg
}

func (e *CategoryError) Unwrap() error {
	return ErrUnknownCategory
}

// LimitError reports a limit that failed validation.
type LimitError struct {
	Input string
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("limit must be a number between %d and %d, got %q", MinLimit, MaxLimit, e.Input)
}

func (e *LimitError) Unwrap() error {
	return ErrLimitOutOfRange
}

// UnavailableError carries the best available explanation of a failed catalog request.
type UnavailableError struct {
	// StatusCode is the HTTP status, zero when the request never got a response.
	StatusCode int
	// StatusMessage is the provider's human-readable status_message, if any.
	StatusMessage string
	// Err is the underlying transport or decoding error, if any.
	Err error
}

func (e *UnavailableError) Error() string {
	switch {
	case e.StatusMessage != "":
		return e.StatusMessage
	case e.Err != nil:
		return e.Err.Error()
	default:
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
}

func (e *UnavailableError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUnavailable}
	}
	return []error{ErrUnavailable, e.Err}
}

// IsUnauthorized reports whether the provider rejected the API key.
func (e *UnavailableError) IsUnauthorized() bool {
	return e.StatusCode == 401
}
