// Package http implements the REST transport of the bloglist API.
//
// It wires the chi router, the request handlers and the middleware chain:
// trace ids, access logging, gzip and bearer-token authentication for the
// routes that need the caller's identity. Service errors are rendered as
// JSON with the status chosen in errors_mapper.go.
package http
