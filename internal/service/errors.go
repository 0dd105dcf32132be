package service

import "errors"

var (
	ErrTokenInvalid        = errors.New("token invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid username or password")

	// ErrUnauthorized is returned when the caller is missing or does not
	// own the blog it tries to delete.
	ErrUnauthorized = errors.New("user unauthorized")
	ErrBlogNotFound = errors.New("blog not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
