// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the bloglist REST API.
//
// [ServerAdapter] hides the transport from the command-line client. Errors
// for non-2xx responses are [*APIError] values that match the sentinels in
// errors.go with [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/bloglist/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to a bloglist server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)
	// Token returns the stored bearer token, or "" when none is set.
	Token() string

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	// Register creates an account. It does not log the user in.
	Register(ctx context.Context, request models.RegisterUserRequest) (models.User, error)
	// Login exchanges credentials for a token and stores it via SetToken.
	Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error)
	// ListUsers returns every user with their blogs.
	ListUsers(ctx context.Context) ([]models.User, error)

	ListBlogs(ctx context.Context) ([]models.Blog, error)
	GetBlog(ctx context.Context, id string) (models.Blog, error)
	// CreateBlog requires a token; without one it fails with [ErrNoToken].
	CreateBlog(ctx context.Context, request models.CreateBlogRequest) (models.Blog, error)
	UpdateBlog(ctx context.Context, id string, request models.UpdateBlogRequest) (models.Blog, error)
	// DeleteBlog requires a token; without one it fails with [ErrNoToken].
	DeleteBlog(ctx context.Context, id string) error
	BlogStats(ctx context.Context) (models.BlogStats, error)
}
