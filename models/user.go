package models

import "time"

// User represents a registered account that can own blogs.
// Credential fields must never leave the server.
type User struct {
	// ID is the backend-assigned identifier (UUID for SQL stores,
	// ObjectID hex for the document store).
	ID string `json:"id"`

	// Username is the unique login name, at least 3 characters long.
	Username string `json:"username"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// Blogs is the reverse index of blogs owned by the user.
	// It is always serialized as an array, never as null.
	Blogs []BlogRef `json:"blogs"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// Summary returns the public owner view of the user that is embedded
// into blog responses.
func (u User) Summary() *UserSummary {
	return &UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name,
	}
}

// UserSummary is the owner view of a user attached to every blog.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
