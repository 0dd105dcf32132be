//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=UserServiceWrapper,BlogServiceWrapper,AuthServiceWrapper

package service

import (
	"context"

	"github.com/MKhiriev/bloglist/models"
)

// AuthService verifies credentials and manages bearer tokens.
type AuthService interface {
	// Login returns the user matching the credentials or ErrInvalidCredentials.
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// ResolveUser turns a raw bearer token into the user it was issued to.
	ResolveUser(ctx context.Context, tokenString string) (models.User, error)
}

type UserService interface {
	RegisterUser(ctx context.Context, request models.RegisterUserRequest) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// BlogService exposes reads and writes on blogs. Create and delete need the
// authenticated caller; a nil caller yields ErrUnauthorized.
type BlogService interface {
	ListBlogs(ctx context.Context) ([]models.Blog, error)
	GetBlog(ctx context.Context, id string) (models.Blog, error)
	CreateBlog(ctx context.Context, caller *models.User, request models.CreateBlogRequest) (models.Blog, error)
	UpdateBlog(ctx context.Context, id string, request models.UpdateBlogRequest) (models.Blog, error)
	DeleteBlog(ctx context.Context, caller *models.User, id string) error
}

type StatsService interface {
	BlogStats(ctx context.Context) (models.BlogStats, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// logging or validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// BlogServiceWrapper defines middleware composition for BlogService.
type BlogServiceWrapper interface {
	Wrap(BlogService) BlogService
}

// AuthServiceWrapper defines middleware composition for AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}
