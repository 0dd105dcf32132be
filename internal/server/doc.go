// Package server runs the HTTP transport of the bloglist API.
//
// It owns the listener lifecycle: startup, termination signal handling and
// graceful shutdown bounded by the configured timeout.
package server
