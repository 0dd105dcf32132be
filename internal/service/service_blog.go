package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/bloglist/internal/logger"
	"github.com/MKhiriev/bloglist/internal/store"
	"github.com/MKhiriev/bloglist/internal/validators"
	"github.com/MKhiriev/bloglist/models"
)

// blogService implements the ownership rules for blog mutations.
// Creation and deletion need an authenticated caller; updates do not.
type blogService struct {
	blogRepository store.BlogRepository

	logger *logger.Logger
}

func NewBlogService(blogRepository store.BlogRepository, logger *logger.Logger) BlogService {
	return &blogService{
		blogRepository: blogRepository,
		logger:         logger,
	}
}

func (s *blogService) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	blogs, err := s.blogRepository.ListBlogs(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*blogService.ListBlogs").Msg("listing blogs failed")
		return nil, fmt.Errorf("listing blogs failed: %w", err)
	}

	return blogs, nil
}

func (s *blogService) GetBlog(ctx context.Context, id string) (models.Blog, error) {
	blog, err := s.blogRepository.FindBlogByID(ctx, id)
	if err != nil {
		return models.Blog{}, s.mapFindError(ctx, "*blogService.GetBlog", id, err)
	}

	return blog, nil
}

// CreateBlog stores the blog with caller as owner. Likes default to 0.
func (s *blogService) CreateBlog(ctx context.Context, caller *models.User, request models.CreateBlogRequest) (models.Blog, error) {
	log := logger.FromContext(ctx)

	if caller == nil {
		return models.Blog{}, ErrUnauthorized
	}

	created, err := s.blogRepository.CreateBlog(ctx, request.ToBlog(caller.ID))
	if err != nil {
		log.Err(err).Str("func", "*blogService.CreateBlog").Str("user_id", caller.ID).Msg("blog creation failed")
		return models.Blog{}, fmt.Errorf("blog creation failed: %w", err)
	}
	created.User = caller.Summary()

	log.Info().Str("blog_id", created.ID).Str("user_id", caller.ID).Msg("blog created")
	return created, nil
}

// UpdateBlog replaces the mutable fields of an existing blog. Ownership is
// not checked.
func (s *blogService) UpdateBlog(ctx context.Context, id string, request models.UpdateBlogRequest) (models.Blog, error) {
	log := logger.FromContext(ctx)

	existing, err := s.blogRepository.FindBlogByID(ctx, id)
	if err != nil {
		return models.Blog{}, s.mapFindError(ctx, "*blogService.UpdateBlog", id, err)
	}

	updated, err := s.blogRepository.UpdateBlog(ctx, request.Apply(existing))
	if errors.Is(err, store.ErrBlogNotFound) {
		return models.Blog{}, ErrBlogNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*blogService.UpdateBlog").Str("blog_id", id).Msg("blog update failed")
		return models.Blog{}, fmt.Errorf("blog update failed: %w", err)
	}

	return updated, nil
}

// DeleteBlog removes the blog when caller owns it. A blog that does not
// exist is reported exactly like a blog owned by someone else.
func (s *blogService) DeleteBlog(ctx context.Context, caller *models.User, id string) error {
	log := logger.FromContext(ctx)

	if caller == nil {
		return ErrUnauthorized
	}

	blog, err := s.blogRepository.FindBlogByID(ctx, id)
	switch {
	case errors.Is(err, store.ErrInvalidID):
		return validators.MalformedID(validators.FieldID)
	case errors.Is(err, store.ErrBlogNotFound):
		log.Debug().Str("func", "*blogService.DeleteBlog").Str("blog_id", id).Msg("delete of absent blog")
		return ErrUnauthorized
	case err != nil:
		log.Err(err).Str("func", "*blogService.DeleteBlog").Str("blog_id", id).Msg("blog search failed")
		return fmt.Errorf("blog search failed: %w", err)
	}

	if !blog.IsOwnedBy(caller.ID) {
		log.Warn().Str("blog_id", id).Str("user_id", caller.ID).Msg("delete of a blog owned by another user")
		return ErrUnauthorized
	}

	err = s.blogRepository.DeleteBlog(ctx, id, caller.ID)
	if errors.Is(err, store.ErrBlogNotFound) {
		return ErrUnauthorized
	}
	if err != nil {
		log.Err(err).Str("func", "*blogService.DeleteBlog").Str("blog_id", id).Msg("blog deletion failed")
		return fmt.Errorf("blog deletion failed: %w", err)
	}

	log.Info().Str("blog_id", id).Str("user_id", caller.ID).Msg("blog deleted")
	return nil
}

func (s *blogService) mapFindError(ctx context.Context, fn, id string, err error) error {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		return validators.MalformedID(validators.FieldID)
	case errors.Is(err, store.ErrBlogNotFound):
		return ErrBlogNotFound
	default:
		logger.FromContext(ctx).Err(err).Str("func", fn).Str("blog_id", id).Msg("blog search failed")
		return fmt.Errorf("blog search failed: %w", err)
	}
}
