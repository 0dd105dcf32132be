// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/bloglist/internal/logger"
	"github.com/MKhiriev/bloglist/models"
)

// blogRepository is the SQL implementation of [BlogRepository]. Writes
// that touch both blogs and user_blogs run in one transaction.
type blogRepository struct {
	*DB
	ids IDFormat
}

// NewBlogRepository constructs a [BlogRepository] backed by db.
func NewBlogRepository(db *DB, ids IDFormat) BlogRepository {
	db.logger.Debug().Msg("creating blog repository")
	return &blogRepository{
		DB:  db,
		ids: ids,
	}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanBlogWithOwner(s scanner) (models.Blog, error) {
	var blog models.Blog
	var userID, username, name sql.NullString

	err := s.Scan(
		&blog.ID,
		&blog.Title,
		&blog.Author,
		&blog.URL,
		&blog.Likes,
		&userID,
		&blog.CreatedAt,
		&username,
		&name,
	)
	if err != nil {
		return models.Blog{}, err
	}

	if userID.Valid {
		blog.UserID = userID.String
		blog.User = &models.UserSummary{
			ID:       userID.String,
			Username: username.String,
			Name:     name.String,
		}
	}

	return blog, nil
}

// CreateBlog inserts blog and its user_blogs entry atomically. The
// returned blog carries the assigned ID; the owner summary is left to the
// caller.
func (r *blogRepository) CreateBlog(ctx context.Context, blog models.Blog) (models.Blog, error) {
	log := logger.FromContext(ctx)

	blog.ID = r.ids.NewID()
	blog.CreatedAt = now()

	insertBlog, blogArgs, err := buildInsertBlogQuery(r.builder, blog)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.CreateBlog").Msg("failed to build query")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.CreateBlog").Msg("failed to begin transaction")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, insertBlog, blogArgs...); err != nil {
		log.Err(err).
			Str("func", "*blogRepository.CreateBlog").
			Stringer("classification", r.errorClassificator.Classify(err)).
			Msg("failed to insert blog")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if blog.UserID != "" {
		insertRef, refArgs, err := buildInsertUserBlogQuery(r.builder, blog.UserID, blog.ID)
		if err != nil {
			log.Err(err).Str("func", "*blogRepository.CreateBlog").Msg("failed to build query")
			return models.Blog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, insertRef, refArgs...); err != nil {
			log.Err(err).
				Str("func", "*blogRepository.CreateBlog").
				Str("user_id", blog.UserID).
				Msg("failed to append blog to user")
			return models.Blog{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*blogRepository.CreateBlog").Msg("failed to commit transaction")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return blog, nil
}

// FindBlogByID returns the blog with id and its owner summary.
func (r *blogRepository) FindBlogByID(ctx context.Context, id string) (models.Blog, error) {
	log := logger.FromContext(ctx)

	if !r.ids.Valid(id) {
		return models.Blog{}, ErrInvalidID
	}

	query, args, err := buildSelectBlogQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.FindBlogByID").Msg("failed to build query")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	blog, err := scanBlogWithOwner(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Blog{}, ErrBlogNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.FindBlogByID").Str("blog_id", id).Msg("failed to find blog")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return blog, nil
}

// ListBlogs returns every blog in creation order.
func (r *blogRepository) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBlogsQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.ListBlogs").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*blogRepository.ListBlogs").
			Stringer("classification", r.errorClassificator.Classify(err)).
			Msg("failed to query blogs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	blogs := make([]models.Blog, 0, 50)
	for rows.Next() {
		blog, err := scanBlogWithOwner(rows)
		if err != nil {
			log.Err(err).Str("func", "*blogRepository.ListBlogs").Msg("failed to scan blog row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		blogs = append(blogs, blog)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*blogRepository.ListBlogs").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return blogs, nil
}

// UpdateBlog overwrites the mutable fields of the blog with blog.ID and
// returns the stored row with its owner summary.
func (r *blogRepository) UpdateBlog(ctx context.Context, blog models.Blog) (models.Blog, error) {
	log := logger.FromContext(ctx)

	if !r.ids.Valid(blog.ID) {
		return models.Blog{}, ErrInvalidID
	}

	query, args, err := buildUpdateBlogQuery(r.builder, blog)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.UpdateBlog").Msg("failed to build query")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*blogRepository.UpdateBlog").
			Str("blog_id", blog.ID).
			Stringer("classification", r.errorClassificator.Classify(err)).
			Msg("failed to update blog")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.UpdateBlog").Msg("failed to read affected rows")
		return models.Blog{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return models.Blog{}, ErrBlogNotFound
	}

	return r.FindBlogByID(ctx, blog.ID)
}

// DeleteBlog removes the blog with id owned by ownerID together with the
// owner's user_blogs entry.
func (r *blogRepository) DeleteBlog(ctx context.Context, id, ownerID string) error {
	log := logger.FromContext(ctx)

	if !r.ids.Valid(id) {
		return ErrInvalidID
	}

	deleteBlog, blogArgs, err := buildDeleteBlogQuery(r.builder, id, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.DeleteBlog").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	deleteRef, refArgs, err := buildDeleteUserBlogQuery(r.builder, id, ownerID)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.DeleteBlog").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.DeleteBlog").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteRef, refArgs...); err != nil {
		log.Err(err).Str("func", "*blogRepository.DeleteBlog").Str("blog_id", id).Msg("failed to remove blog from user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	result, err := tx.ExecContext(ctx, deleteBlog, blogArgs...)
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.DeleteBlog").Str("blog_id", id).Msg("failed to delete blog")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*blogRepository.DeleteBlog").Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrBlogNotFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*blogRepository.DeleteBlog").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
