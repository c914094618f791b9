package rest

import (
	"context"
	"net"
	"strconv"
	"syscall"

	"github.com/go-faster/errors"
)

// Kind enumerates the failure classes a Client can report.
type Kind int

const (
	KindUnknown Kind = iota
	KindOffline
	KindInvalidURL
	KindServerError
	KindInvalidStatus
	KindDecoding
)

func (k Kind) String() string {
	switch k {
	case KindOffline:
		return "offline"
	case KindInvalidURL:
		return "invalid_url"
	case KindServerError:
		return "server_error"
	case KindInvalidStatus:
		return "invalid_status"
	case KindDecoding:
		return "decoding_error"
	default:
		return "unknown"
	}
}

// Error is the classified failure returned by Send and Client.Data.
// StatusCode is set for KindServerError and KindInvalidStatus only.
type Error struct {
	Kind       Kind
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case KindOffline:
		msg = "offline"
	case KindInvalidURL:
		msg = "invalid url"
	case KindServerError:
		msg = "server error " + strconv.Itoa(e.StatusCode)
	case KindInvalidStatus:
		msg = "invalid status " + strconv.Itoa(e.StatusCode)
	case KindDecoding:
		msg = "decode response"
	default:
		msg = "unknown error"
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error of the same kind. A zero StatusCode on the
// target matches any status, so errors.Is(err, ErrServer) holds for every
// 5xx while errors.Is(err, StatusError(503)) only holds for 503.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.StatusCode == 0 || t.StatusCode == e.StatusCode
}

// Sentinels for errors.Is.
var (
	ErrOffline       = &Error{Kind: KindOffline}
	ErrInvalidURL    = &Error{Kind: KindInvalidURL}
	ErrServer        = &Error{Kind: KindServerError}
	ErrInvalidStatus = &Error{Kind: KindInvalidStatus}
	ErrDecoding      = &Error{Kind: KindDecoding}
	ErrUnknown       = &Error{Kind: KindUnknown}
)

// StatusError returns a matcher for a specific rejected status code.
func StatusError(code int) *Error {
	if code >= 500 {
		return &Error{Kind: KindServerError, StatusCode: code}
	}
	return &Error{Kind: KindInvalidStatus, StatusCode: code}
}

// Classify returns err as a taxonomy variant. Errors that already carry a
// classification are returned as is; anything else becomes KindUnknown.
// Classify(nil) returns nil.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}
	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}
	return &Error{Kind: KindUnknown, Err: err}
}

func acceptedStatus(code int) bool {
	return (code >= 200 && code <= 299) || code == 304
}

func classifyStatus(code int) *Error {
	if code >= 500 {
		return &Error{Kind: KindServerError, StatusCode: code}
	}
	return &Error{Kind: KindInvalidStatus, StatusCode: code}
}

// classifyTransport maps a failed round trip onto the taxonomy.
// Connectivity problems become KindOffline; timeouts, TLS failures and
// cancellation stay KindUnknown.
func classifyTransport(err error) *Error {
	if isConnectivity(err) {
		return &Error{Kind: KindOffline, Err: err}
	}
	return &Error{Kind: KindUnknown, Err: err}
}

func isConnectivity(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return false
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	for _, errno := range []syscall.Errno{
		syscall.ECONNREFUSED,
		syscall.ECONNRESET,
		syscall.ENETUNREACH,
		syscall.EHOSTUNREACH,
		syscall.ENETDOWN,
	} {
		if errors.Is(err, errno) {
			return true
		}
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	return false
}
