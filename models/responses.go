package models

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	// Error is a human readable description of the failure.
	Error string `json:"error"`

	// Fields lists the violated validation rules. Present only for
	// validation failures.
	Fields []FieldViolation `json:"fields,omitempty"`
}

// FieldViolation describes a single broken validation rule in a
// machine-readable form.
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// BlogStats aggregates statistics over all stored blogs.
type BlogStats struct {
	TotalLikes   int64         `json:"total_likes"`
	FavoriteBlog *FavoriteBlog `json:"favorite_blog"`
	MostBlogs    *AuthorBlogs  `json:"most_blogs"`
	MostLikes    *AuthorLikes  `json:"most_likes"`
}

// FavoriteBlog is the blog with the highest number of likes.
type FavoriteBlog struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Likes  int64  `json:"likes"`
}

// AuthorBlogs is an author together with the number of blogs they wrote.
type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes is an author together with the sum of likes of their blogs.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int64  `json:"likes"`
}
