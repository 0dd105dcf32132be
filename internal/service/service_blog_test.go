// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/bloglist/internal/logger"
	"github.com/MKhiriev/bloglist/internal/mock"
	"github.com/MKhiriev/bloglist/internal/store"
	"github.com/MKhiriev/bloglist/internal/validators"
	"github.com/MKhiriev/bloglist/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestBlogService(t *testing.T) (BlogService, *mock.MockBlogRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockBlogRepository(ctrl)

	return NewBlogService(repo, logger.Nop()), repo
}

func int64Ptr(v int64) *int64 { return &v }

var (
	owner    = models.User{ID: "u-owner", Username: "root", Name: "Superuser"}
	stranger = models.User{ID: "u-other", Username: "mluukkai", Name: "Matti"}
)

// ── CreateBlog ───────────────────────────────────────────────────────────────

func TestBlogService_CreateBlog_DefaultsLikesAndSetsOwner(t *testing.T) {
	svc, repo := newTestBlogService(t)
	ctx := context.Background()

	repo.EXPECT().CreateBlog(ctx, models.Blog{
		Title:  "Net Runners",
		Author: "Arasaka",
		URL:    "cyberpunk.com",
		Likes:  0,
		UserID: owner.ID,
	}).DoAndReturn(func(_ context.Context, b models.Blog) (models.Blog, error) {
		b.ID = "b-1"
		return b, nil
	})

	got, err := svc.CreateBlog(ctx, &owner, models.CreateBlogRequest{Title: "Net Runners", Author: "Arasaka", URL: "cyberpunk.com"})

	require.NoError(t, err)
	assert.Equal(t, "b-1", got.ID)
	assert.Equal(t, int64(0), got.Likes)
	require.NotNil(t, got.User)
	assert.Equal(t, models.UserSummary{ID: owner.ID, Username: "root", Name: "Superuser"}, *got.User)
}

func TestBlogService_CreateBlog_KeepsProvidedLikes(t *testing.T) {
	svc, repo := newTestBlogService(t)
	ctx := context.Background()

	repo.EXPECT().CreateBlog(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, b models.Blog) (models.Blog, error) {
		assert.Equal(t, int64(100000), b.Likes)
		return b, nil
	})

	_, err := svc.CreateBlog(ctx, &owner, models.CreateBlogRequest{Title: "t", URL: "u", Likes: int64Ptr(100000)})
	require.NoError(t, err)
}

func TestBlogService_CreateBlog_NoCaller(t *testing.T) {
	svc, _ := newTestBlogService(t)

	_, err := svc.CreateBlog(context.Background(), nil, models.CreateBlogRequest{Title: "t", URL: "u"})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestBlogService_CreateBlog_StoreFailure(t *testing.T) {
	svc, repo := newTestBlogService(t)
	ctx := context.Background()

	repo.EXPECT().CreateBlog(ctx, gomock.Any()).Return(models.Blog{}, store.ErrCommitingTransaction)

	_, err := svc.CreateBlog(ctx, &owner, models.CreateBlogRequest{Title: "t", URL: "u"})

	assert.ErrorIs(t, err, store.ErrCommitingTransaction)
}

// ── DeleteBlog ───────────────────────────────────────────────────────────────

func TestBlogService_DeleteBlog(t *testing.T) {
	ctx := context.Background()
	blog := models.Blog{ID: "b-1", Title: "Env Variables", UserID: owner.ID}
	orphan := models.Blog{ID: "b-2", Title: "Supertest"}

	tests := []struct {
		name    string
		caller  *models.User
		setup   func(repo *mock.MockBlogRepository)
		wantErr error
	}{
		{
			name:   "owner deletes",
			caller: &owner,
			setup: func(repo *mock.MockBlogRepository) {
				repo.EXPECT().FindBlogByID(ctx, "b-1").Return(blog, nil)
				repo.EXPECT().DeleteBlog(ctx, "b-1", owner.ID).Return(nil)
			},
		},
		{
			name:    "no caller",
			caller:  nil,
			wantErr: ErrUnauthorized,
		},
		{
			name:   "another user",
			caller: &stranger,
			setup: func(repo *mock.MockBlogRepository) {
				repo.EXPECT().FindBlogByID(ctx, "b-1").Return(blog, nil)
			},
			wantErr: ErrUnauthorized,
		},
		{
			name:   "blog without owner",
			caller: &owner,
			setup: func(repo *mock.MockBlogRepository) {
				repo.EXPECT().FindBlogByID(ctx, "b-1").Return(orphan, nil)
			},
			wantErr: ErrUnauthorized,
		},
		{
			name:   "absent blog",
			caller: &owner,
			setup: func(repo *mock.MockBlogRepository) {
				repo.EXPECT().FindBlogByID(ctx, "b-1").Return(models.Blog{}, store.ErrBlogNotFound)
			},
			wantErr: ErrUnauthorized,
		},
		{
			name:   "malformed id",
			caller: &owner,
			setup: func(repo *mock.MockBlogRepository) {
				repo.EXPECT().FindBlogByID(ctx, "b-1").Return(models.Blog{}, store.ErrInvalidID)
			},
			wantErr: validators.ErrValidation,
		},
		{
			name:   "deleted concurrently",
			caller: &owner,
			setup: func(repo *mock.MockBlogRepository) {
				repo.EXPECT().FindBlogByID(ctx, "b-1").Return(blog, nil)
				repo.EXPECT().DeleteBlog(ctx, "b-1", owner.ID).Return(store.ErrBlogNotFound)
			},
			wantErr: ErrUnauthorized,
		},
		{
			name:   "store failure",
			caller: &owner,
			setup: func(repo *mock.MockBlogRepository) {
				repo.EXPECT().FindBlogByID(ctx, "b-1").Return(blog, nil)
				repo.EXPECT().DeleteBlog(ctx, "b-1", owner.ID).Return(store.ErrExecutingQuery)
			},
			wantErr: store.ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestBlogService(t)
			if tt.setup != nil {
				tt.setup(repo)
			}

			err := svc.DeleteBlog(ctx, tt.caller, "b-1")
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── UpdateBlog ───────────────────────────────────────────────────────────────

func TestBlogService_UpdateBlog_ReplacesFields(t *testing.T) {
	svc, repo := newTestBlogService(t)
	ctx := context.Background()

	existing := models.Blog{ID: "b-1", Title: "Old", Author: "A", URL: "old.dev", Likes: 7, UserID: owner.ID}
	repo.EXPECT().FindBlogByID(ctx, "b-1").Return(existing, nil)
	repo.EXPECT().UpdateBlog(ctx, models.Blog{
		ID: "b-1", Title: "New", Author: "", URL: "new.dev", Likes: 0, UserID: owner.ID,
	}).DoAndReturn(func(_ context.Context, b models.Blog) (models.Blog, error) {
		return b, nil
	})

	got, err := svc.UpdateBlog(ctx, "b-1", models.UpdateBlogRequest{Title: "New", URL: "new.dev"})

	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, int64(0), got.Likes, "absent likes reset the counter")
}

func TestBlogService_UpdateBlog_NotFound(t *testing.T) {
	svc, repo := newTestBlogService(t)
	ctx := context.Background()

	repo.EXPECT().FindBlogByID(ctx, "b-1").Return(models.Blog{}, store.ErrBlogNotFound)

	_, err := svc.UpdateBlog(ctx, "b-1", models.UpdateBlogRequest{Title: "t", URL: "u"})

	assert.ErrorIs(t, err, ErrBlogNotFound)
}

func TestBlogService_UpdateBlog_VanishedBeforeWrite(t *testing.T) {
	svc, repo := newTestBlogService(t)
	ctx := context.Background()

	repo.EXPECT().FindBlogByID(ctx, "b-1").Return(models.Blog{ID: "b-1"}, nil)
	repo.EXPECT().UpdateBlog(ctx, gomock.Any()).Return(models.Blog{}, store.ErrBlogNotFound)

	_, err := svc.UpdateBlog(ctx, "b-1", models.UpdateBlogRequest{Title: "t", URL: "u", Likes: int64Ptr(3)})

	assert.ErrorIs(t, err, ErrBlogNotFound)
}

// ── reads ────────────────────────────────────────────────────────────────────

func TestBlogService_GetBlog(t *testing.T) {
	svc, repo := newTestBlogService(t)
	ctx := context.Background()
	blog := models.Blog{ID: "b-1", Title: "Env Variables", User: owner.Summary()}

	gomock.InOrder(
		repo.EXPECT().FindBlogByID(ctx, "b-1").Return(blog, nil),
		repo.EXPECT().FindBlogByID(ctx, "b-2").Return(models.Blog{}, store.ErrBlogNotFound),
		repo.EXPECT().FindBlogByID(ctx, "b-3").Return(models.Blog{}, errors.New("boom")),
	)

	got, err := svc.GetBlog(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, blog, got)

	_, err = svc.GetBlog(ctx, "b-2")
	assert.ErrorIs(t, err, ErrBlogNotFound)

	_, err = svc.GetBlog(ctx, "b-3")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrBlogNotFound)
}

func TestBlogService_ListBlogs(t *testing.T) {
	svc, repo := newTestBlogService(t)
	ctx := context.Background()
	blogs := []models.Blog{{ID: "b-1"}, {ID: "b-2"}}

	repo.EXPECT().ListBlogs(ctx).Return(blogs, nil)

	got, err := svc.ListBlogs(ctx)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
