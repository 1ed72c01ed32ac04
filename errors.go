package dexscreener

import (
	"errors"
	"fmt"
)

var (
	// ErrTooManyAddresses is returned when more token addresses are passed to
	// GetPairsByTokenAddresses than the API accepts in one batch call. The
	// check runs before any request is made.
	ErrTooManyAddresses = errors.New("too many token addresses for a single request")

	// ErrInvalidArgument is returned for caller misuse detected locally, such
	// as an empty address list.
	ErrInvalidArgument = errors.New("invalid argument")
)

// TransportError reports a network or IO failure reaching the API host:
// connection refused, DNS failure, timeout. The underlying cause is available
// through Unwrap.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError reports a non-success HTTP status together with the structured
// failure payload the API returned. Code is empty when the API sent null or
// omitted it.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api responded %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api responded %d: %s", e.StatusCode, e.Message)
}

// apiErrorBody is the wire shape of a failure response.
type apiErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DecodeError reports a response body that did not match the expected schema.
// The cause chain preserves field-level failures such as MalformedNumberError
// and MalformedTimestampError with the offending wire text.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// MalformedNumberError reports a numeric field whose wire value could not be
// interpreted as a float. Raw holds the offending text as received.
type MalformedNumberError struct {
	Raw string
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("malformed number: %q", e.Raw)
}

// MalformedTimestampError reports a timestamp field whose wire value matched
// neither RFC 3339 nor a millisecond epoch count. Raw holds the offending
// text as received.
type MalformedTimestampError struct {
	Raw string
}

func (e *MalformedTimestampError) Error() string {
	return fmt.Sprintf("malformed timestamp: %q", e.Raw)
}
