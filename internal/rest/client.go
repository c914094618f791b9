package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// DefaultTimeout bounds a single request including reading the body.
	DefaultTimeout      = 20 * time.Second
	defaultUserAgent    = "gallery/0.1"
	defaultMaxBodyBytes = 32 << 20
	// HeaderRequestID carries the per-request correlation id.
	HeaderRequestID = "X-Request-ID"
)

// Codec serializes request bodies and deserializes response bodies.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// JSONCodec is the default Codec.
type JSONCodec struct{}

func (JSONCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (JSONCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Doer performs a prepared HTTP request. *http.Client implements it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Sender is the minimal client surface Send needs: a transport call that
// returns the accepted body (or a classified *Error) and the codec used to
// decode it.
type Sender interface {
	Data(ctx context.Context, call Call) ([]byte, error)
	Codec() Codec
}

// Ensure Client implements Sender at compile time.
var _ Sender = (*Client)(nil)

// Send performs req through s and decodes the accepted body into T.
// Every returned error is a *Error.
func Send[T any](ctx context.Context, s Sender, req Request[T]) (T, error) {
	var out T
	body, err := s.Data(ctx, req.call())
	if err != nil {
		return out, Classify(err)
	}
	if req.expectation() == ExpectEmpty {
		return out, nil
	}
	if err := s.Codec().Unmarshal(body, &out); err != nil {
		var zero T
		return zero, &Error{Kind: KindDecoding, Err: err}
	}
	return out, nil
}

// Client talks JSON over HTTP. It holds no per-request state and is safe
// for concurrent use.
type Client struct {
	doer         Doer
	codec        Codec
	timeout      time.Duration
	userAgent    string
	maxBodyBytes int64
	logger       zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient uses hc as the transport. The client's own Timeout field is
// left alone; the per-request timeout is applied through the context.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.doer = hc
		}
	}
}

// WithDoer replaces the transport entirely.
func WithDoer(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.doer = d
		}
	}
}

// WithCodec replaces the JSON codec.
func WithCodec(codec Codec) Option {
	return func(c *Client) {
		if codec != nil {
			c.codec = codec
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithMaxBodyBytes caps how much of a response body is read.
func WithMaxBodyBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBodyBytes = n
		}
	}
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient builds a Client with a 20s timeout and JSON codec unless
// overridden.
func NewClient(opts ...Option) *Client {
	c := &Client{
		doer:         &http.Client{},
		codec:        JSONCodec{},
		timeout:      DefaultTimeout,
		userAgent:    defaultUserAgent,
		maxBodyBytes: defaultMaxBodyBytes,
		logger:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Timeout returns the configured per-request timeout.
func (c *Client) Timeout() time.Duration { return c.timeout }

// Codec returns the codec used for request and response bodies.
func (c *Client) Codec() Codec { return c.codec }

// Data resolves, encodes and performs call, returning the body of an
// accepted response. Failures are classified before any decoding happens.
func (c *Client) Data(ctx context.Context, call Call) ([]byte, error) {
	reqURL, err := call.Endpoint.URL()
	if err != nil {
		return nil, c.fail(call, "", &Error{Kind: KindInvalidURL, Err: err})
	}

	var body io.Reader
	if call.Body != nil {
		encoded, err := c.codec.Marshal(call.Body)
		if err != nil {
			return nil, c.fail(call, "", &Error{Kind: KindUnknown, Err: errors.Wrap(err, "encode body")})
		}
		body = bytes.NewReader(encoded)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, call.Method, reqURL.String(), body)
	if err != nil {
		return nil, c.fail(call, "", &Error{Kind: KindInvalidURL, Err: errors.Wrap(err, "create request")})
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(HeaderRequestID, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range call.Headers {
		req.Header.Set(k, v)
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Str("request_id", requestID).
		Msg("sending request")

	start := time.Now()
	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, c.fail(call, requestID, classifyTransport(err))
	}
	defer func() { _ = resp.Body.Close() }()

	if !acceptedStatus(resp.StatusCode) {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, c.fail(call, requestID, classifyStatus(resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes))
	if err != nil {
		return nil, c.fail(call, requestID, classifyTransport(errors.Wrap(err, "read body")))
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Int("bytes", len(data)).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")
	return data, nil
}

func (c *Client) fail(call Call, requestID string, err *Error) *Error {
	evt := c.logger.Warn().
		Str("method", call.Method).
		Str("path", call.Endpoint.Path).
		Str("kind", err.Kind.String())
	if requestID != "" {
		evt = evt.Str("request_id", requestID)
	}
	if err.StatusCode != 0 {
		evt = evt.Int("status", err.StatusCode)
	}
	if err.Err != nil {
		evt = evt.AnErr("cause", err.Err)
	}
	evt.Msg("request failed")
	return err
}
