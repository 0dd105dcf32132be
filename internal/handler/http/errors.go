// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/bloglist/internal/validators"
	"github.com/MKhiriev/bloglist/models"
)

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is logged by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is logged when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrUnknownEndpoint is rendered for unregistered paths and methods.
	ErrUnknownEndpoint = errors.New("unknown endpoint")

	// ErrInternal replaces every error that has no public status mapping.
	ErrInternal = errors.New("internal server error")
)

var errInvalidGzipBody = validators.NewValidationError(models.FieldViolation{
	Field:   "body",
	Rule:    validators.RuleFormat,
	Message: "invalid gzip data",
})
