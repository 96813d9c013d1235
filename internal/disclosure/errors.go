package disclosure

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// Kind tags a fetch failure so callers can branch on the category instead of
// string-matching error text. Every kind is terminal for the current call;
// the client never retries.
type Kind int

const (
	KindUnknown Kind = iota
	// KindTimeout covers the overall request deadline as well as the
	// transport-level timeouts.
	KindTimeout
	// KindConnection covers DNS, dial and other transport failures.
	KindConnection
	// KindHTTPStatus is a completed exchange with a non-2xx status.
	KindHTTPStatus
	// KindParse is a 2xx response whose body is not valid JSON.
	KindParse
	// KindAPIStatus is a well-formed envelope whose status field is not
	// "success", or whose data list is missing or empty.
	KindAPIStatus
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindConnection:
		return "connection"
	case KindHTTPStatus:
		return "http status"
	case KindParse:
		return "parse"
	case KindAPIStatus:
		return "api status"
	default:
		return "unknown"
	}
}

// FetchError is the single error type returned by CompanyStatements.
type FetchError struct {
	Kind Kind
	// StatusCode is set for KindHTTPStatus.
	StatusCode int
	// Status is the envelope status string, set for KindAPIStatus.
	Status string
	Err    error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("disclosure: http %d", e.StatusCode)
	case KindAPIStatus:
		return fmt.Sprintf("disclosure: api status %q", e.Status)
	default:
		if e.Err != nil {
			return fmt.Sprintf("disclosure: %s: %v", e.Kind, e.Err)
		}
		return fmt.Sprintf("disclosure: %s", e.Kind)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// classify maps a transport error from http.Client.Do onto the taxonomy.
func classify(err error) *FetchError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &FetchError{Kind: KindTimeout, Err: err}
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &FetchError{Kind: KindTimeout, Err: err}
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		return &FetchError{Kind: KindConnection, Err: err}
	}
	return &FetchError{Kind: KindUnknown, Err: err}
}
