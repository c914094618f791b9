package rest

import "net/http"

// HTTP methods accepted by Request.
const (
	MethodGet    = http.MethodGet
	MethodPost   = http.MethodPost
	MethodPut    = http.MethodPut
	MethodPatch  = http.MethodPatch
	MethodDelete = http.MethodDelete
	MethodHead   = http.MethodHead
)

// Expectation selects how an accepted response body is handled.
type Expectation int

const (
	// ExpectJSON decodes the body into the request's response type.
	ExpectJSON Expectation = iota
	// ExpectEmpty skips decoding and returns the zero response value.
	ExpectEmpty
)

// Empty is the response type for endpoints that answer success without a
// payload. Requests declaring Empty never decode the body.
type Empty struct{}

// Request describes one HTTP call whose accepted response decodes into T.
type Request[T any] struct {
	Endpoint Endpoint
	Method   string
	Headers  map[string]string
	// Body is encoded with the client's codec when non-nil.
	Body   any
	Expect Expectation
}

// Get builds a body-less GET request.
func Get[T any](endpoint Endpoint) Request[T] {
	return Request[T]{Endpoint: endpoint, Method: MethodGet}
}

// expectation reports the decode path, forcing ExpectEmpty for Empty.
func (r Request[T]) expectation() Expectation {
	var zero T
	if _, ok := any(zero).(Empty); ok {
		return ExpectEmpty
	}
	return r.Expect
}

func (r Request[T]) call() Call {
	method := r.Method
	if method == "" {
		method = MethodGet
	}
	return Call{
		Endpoint: r.Endpoint,
		Method:   method,
		Headers:  r.Headers,
		Body:     r.Body,
	}
}

// Call is the untyped part of a Request handed to a Sender.
type Call struct {
	Endpoint Endpoint
	Method   string
	Headers  map[string]string
	Body     any
}
