package adapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/bloglist/models"
)

// Sentinels matched by [errors.Is] on every error returned for a non-2xx
// response.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
	ErrNoToken             = errors.New("no token: log in first")
)

// APIError is a failed response decoded from the server's JSON error body.
type APIError struct {
	Status  int
	Message string
	Fields  []models.FieldViolation

	kind error
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "http %d: %s", e.Status, e.Message)
	for _, f := range e.Fields {
		fmt.Fprintf(&b, "\n  %s (%s): %s", f.Field, f.Rule, f.Message)
	}
	return b.String()
}

func (e *APIError) Unwrap() error {
	return e.kind
}
