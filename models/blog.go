// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Blog is a single blog entry. Every persisted blog has a non-empty
// Title and URL.
type Blog struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int64  `json:"likes"`

	// UserID is the owner's identifier. Empty for blogs without an owner.
	UserID string `json:"-"`

	// User is the owner summary populated on reads. Serialized as null
	// when the blog has no owner.
	User *UserSummary `json:"user"`

	CreatedAt time.Time `json:"-"`
}

// Ref returns the user-side reference to the blog.
func (b Blog) Ref() BlogRef {
	return BlogRef{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
	}
}

// IsOwnedBy reports whether userID is the recorded owner of the blog.
func (b Blog) IsOwnedBy(userID string) bool {
	return b.UserID != "" && b.UserID == userID
}

// BlogRef is an entry of the User.Blogs reverse index.
// Only ID is guaranteed; the remaining fields are populated on user listing.
type BlogRef struct {
	ID     string `json:"id"`
	Title  string `json:"title,omitempty"`
	Author string `json:"author,omitempty"`
	URL    string `json:"url,omitempty"`
	Likes  int64  `json:"likes,omitempty"`
}

// TableName returns the name of the database table
// associated with the Blog model.
func (b Blog) TableName() string {
	return "blogs"
}
