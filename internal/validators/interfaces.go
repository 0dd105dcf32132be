// Package validators checks request payloads and path identifiers before
// they reach the store. Every failure is a *ValidationError listing each
// violated rule, which the HTTP layer renders as a 400 with a "fields" list.
package validators

import "context"

// Validator checks obj, optionally restricted to the named fields. It
// returns ErrUnsupportedType for values it does not know how to check.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
