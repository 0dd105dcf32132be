// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password
// hashing, HTTP response writing, identifier generation, JWT token
// generation and validation.
package utils

import (
	"context"

	"github.com/MKhiriev/bloglist/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key under which the authenticated user is stored in
// the request context by the auth middleware.
var UserCtxKey = contextKey("user")

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true : value is found and has the correct type
//   - ok == false: no user was attached to the context
//
// Example usage:
//
//	user, ok := utils.GetUserFromContext(ctx)
//	if !ok {
//	    // request is not authenticated
//	}
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}
