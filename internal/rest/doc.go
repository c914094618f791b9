// Package rest turns declarative request descriptions into decoded, typed
// responses and classifies every failure into a small taxonomy.
//
// # Overview
//
// A call is described by two values:
//
//   - Endpoint: base URL, path and optional query parameters
//   - Request[T]: endpoint, method, headers, optional body, and the
//     expected response handling for T
//
// Send performs the call through a Sender (normally *Client) and either
// returns a T or a *Error, never both.
//
//	client := rest.NewClient(rest.WithTimeout(20 * time.Second))
//	photos, err := rest.Send(ctx, client, rest.Get[[]PhotoDTO](rest.Endpoint{
//		BaseURL: "https://jsonplaceholder.typicode.com/",
//		Path:    "photos",
//	}))
//
// # Request Pipeline
//
//  1. Resolve the endpoint. Malformed base, path or query fails with
//     KindInvalidURL before any I/O.
//  2. Encode the body with the client's Codec. Failure is KindUnknown.
//  3. Perform the transport call under the client timeout (default 20s).
//     Connectivity failures (dial, DNS, refused, reset, unreachable) are
//     KindOffline; everything else on the transport is KindUnknown.
//  4. Classify the status. 2xx and 304 are accepted; 5xx is
//     KindServerError; anything else is KindInvalidStatus. Rejected bodies
//     are discarded, never decoded.
//  5. Decode. Requests for Empty (or with Expect: ExpectEmpty) skip the
//     body entirely. Decode failures are KindDecoding.
//
// # Error Handling
//
// Callers match with errors.Is against the sentinels:
//
//	switch {
//	case errors.Is(err, rest.ErrOffline):
//	case errors.Is(err, rest.StatusError(404)):
//	case errors.Is(err, rest.ErrServer):
//	}
//
// Classify converts any error into the taxonomy; foreign errors become
// KindUnknown wrapping the original. Packages above rest forward errors
// untouched and never re-classify.
//
// # Headers
//
// Every request carries Accept: application/json, a User-Agent of
// gallery/<version> and an X-Request-ID. Requests with a body also carry
// Content-Type: application/json. Request headers override these.
//
// # Thread Safety
//
// Client holds only its transport, codec, timeout and logger. It is safe
// for concurrent use by any number of controllers.
package rest
