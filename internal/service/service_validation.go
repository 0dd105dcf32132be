package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bloglist/internal/logger"
	"github.com/MKhiriev/bloglist/internal/validators"
	"github.com/MKhiriev/bloglist/models"
)

// ─────────────────────────────────────────────
// users
// ─────────────────────────────────────────────

type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) RegisterUser(ctx context.Context, request models.RegisterUserRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*UserValidationService.RegisterUser").Msg("invalid registration request")
		return models.User{}, fmt.Errorf("error during user validation before saving: %w", err)
	}

	return v.inner.RegisterUser(ctx, request)
}

func (v *UserValidationService) ListUsers(ctx context.Context) ([]models.User, error) {
	return v.inner.ListUsers(ctx)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}

// ─────────────────────────────────────────────
// blogs
// ─────────────────────────────────────────────

// BlogValidationService rejects malformed ids and blogs without title or
// url before they reach the store. Authentication is checked first so an
// anonymous caller always gets ErrUnauthorized.
type BlogValidationService struct {
	inner         BlogService
	blogValidator validators.Validator
	idValidator   validators.Validator
}

func NewBlogValidationService(ids validators.IDFormat) BlogServiceWrapper {
	return &BlogValidationService{
		blogValidator: validators.NewBlogValidator(),
		idValidator:   validators.NewIDValidator(ids),
	}
}

func (v *BlogValidationService) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	return v.inner.ListBlogs(ctx)
}

func (v *BlogValidationService) GetBlog(ctx context.Context, id string) (models.Blog, error) {
	if err := v.idValidator.Validate(ctx, id); err != nil {
		return models.Blog{}, err
	}

	return v.inner.GetBlog(ctx, id)
}

func (v *BlogValidationService) CreateBlog(ctx context.Context, caller *models.User, request models.CreateBlogRequest) (models.Blog, error) {
	if caller == nil {
		return models.Blog{}, ErrUnauthorized
	}
	if err := v.blogValidator.Validate(ctx, request); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*BlogValidationService.CreateBlog").Msg("invalid blog")
		return models.Blog{}, fmt.Errorf("error during blog validation before saving: %w", err)
	}

	return v.inner.CreateBlog(ctx, caller, request)
}

func (v *BlogValidationService) UpdateBlog(ctx context.Context, id string, request models.UpdateBlogRequest) (models.Blog, error) {
	if err := v.idValidator.Validate(ctx, id); err != nil {
		return models.Blog{}, err
	}
	if err := v.blogValidator.Validate(ctx, request); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*BlogValidationService.UpdateBlog").Str("blog_id", id).Msg("invalid blog")
		return models.Blog{}, fmt.Errorf("error during blog validation before updating: %w", err)
	}

	return v.inner.UpdateBlog(ctx, id, request)
}

func (v *BlogValidationService) DeleteBlog(ctx context.Context, caller *models.User, id string) error {
	if caller == nil {
		return ErrUnauthorized
	}
	if err := v.idValidator.Validate(ctx, id); err != nil {
		return err
	}

	return v.inner.DeleteBlog(ctx, caller, id)
}

func (v *BlogValidationService) Wrap(wrapped BlogService) BlogService {
	v.inner = wrapped
	return v
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *AuthValidationService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("error during login validation: %w", err)
	}

	return v.inner.Login(ctx, request)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) ResolveUser(ctx context.Context, tokenString string) (models.User, error) {
	return v.inner.ResolveUser(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}
