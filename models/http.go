package models

// CreateBlogRequest is the body of POST /api/blogs.
type CreateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`

	// Likes is optional; a missing value is stored as 0.
	Likes *int64 `json:"likes,omitempty"`
}

// ToBlog builds the blog owned by ownerID, applying the likes default.
func (r CreateBlogRequest) ToBlog(ownerID string) Blog {
	var likes int64
	if r.Likes != nil {
		likes = *r.Likes
	}

	return Blog{
		Title:  r.Title,
		Author: r.Author,
		URL:    r.URL,
		Likes:  likes,
		UserID: ownerID,
	}
}

// UpdateBlogRequest is the body of PUT /api/blogs/{id}.
// All fields are replaced; a missing Likes value resets the counter to 0.
type UpdateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int64 `json:"likes,omitempty"`
}

// Apply replaces the mutable fields of blog with the request values.
func (r UpdateBlogRequest) Apply(blog Blog) Blog {
	blog.Title = r.Title
	blog.Author = r.Author
	blog.URL = r.URL
	blog.Likes = 0
	if r.Likes != nil {
		blog.Likes = *r.Likes
	}

	return blog
}

// RegisterUserRequest is the body of POST /api/users.
type RegisterUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned by a successful POST /api/login.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}
