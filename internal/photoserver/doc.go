// Package photoserver serves the photo API from fixtures for local
// development and tests.
//
// Routes:
//
//	GET /photos       all fixtures in file order
//	GET /photos/{id}  one fixture; 400 for a non-integer id, 404 if unknown
//
// Config.Latency delays every response and Config.FailStatus answers every
// request with a fixed status, which makes the client's offline, server
// error and invalid status screens easy to reach by hand.
//
// Requests pass through chi's RequestID and Recoverer middleware and are
// logged with zerolog. RequestID honors the client's X-Request-ID header, so
// client and server log lines share an id.
package photoserver
