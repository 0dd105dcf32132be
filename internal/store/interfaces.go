package store

//go:generate mockgen -source=interfaces.go -destination=../mock/repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/bloglist/models"
)

// UserRepository persists user accounts and answers lookups on them.
type UserRepository interface {
	// CreateUser inserts user and returns it with the assigned ID. A
	// duplicate username yields [ErrUsernameTaken].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByID returns [ErrUserNotFound] when no account has id.
	FindUserByID(ctx context.Context, id string) (models.User, error)
	// FindUserByUsername returns [ErrUserNotFound] when no account has username.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// ListUsers returns every user with the Blogs reverse index populated.
	ListUsers(ctx context.Context) ([]models.User, error)
}

// BlogRepository persists blogs and keeps the owner's reverse index in
// step with every create and delete.
type BlogRepository interface {
	// CreateBlog inserts blog and, when it has an owner, appends it to the
	// owner's Blogs.
	CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error)
	// FindBlogByID returns the blog with its owner summary or [ErrBlogNotFound].
	FindBlogByID(ctx context.Context, id string) (models.Blog, error)
	// ListBlogs returns every blog with its owner summary.
	ListBlogs(ctx context.Context) ([]models.Blog, error)
	// UpdateBlog replaces title, author, url and likes of the blog with
	// blog.ID and returns the stored result.
	UpdateBlog(ctx context.Context, blog models.Blog) (models.Blog, error)
	// DeleteBlog removes the blog owned by ownerID and its reverse index
	// entry. It returns [ErrBlogNotFound] when no such blog exists.
	DeleteBlog(ctx context.Context, id, ownerID string) error
}

// IDFormat describes the identifiers of the active backend.
type IDFormat interface {
	// NewID returns a fresh identifier.
	NewID() string
	// Valid reports whether id is well-formed for the backend.
	Valid(id string) bool
}

// ErrorClassificator interprets driver errors of a SQL backend.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
