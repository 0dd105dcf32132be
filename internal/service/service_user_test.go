package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/bloglist/internal/logger"
	"github.com/MKhiriev/bloglist/internal/mock"
	"github.com/MKhiriev/bloglist/internal/store"
	"github.com/MKhiriev/bloglist/internal/utils"
	"github.com/MKhiriev/bloglist/internal/validators"
	"github.com/MKhiriev/bloglist/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserService(t *testing.T) (UserService, *mock.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	return NewUserService(repo, testAppConfig, logger.Nop()), repo
}

func TestUserService_RegisterUser_HashesPassword(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "mluukkai", user.Username)
			assert.Equal(t, "Matti Luukkainen", user.Name)
			assert.NotEqual(t, "salainen", user.PasswordHash)

			ok, err := utils.ComparePassword(user.PasswordHash, "salainen")
			require.NoError(t, err)
			assert.True(t, ok)

			user.ID = "u-1"
			return user, nil
		},
	)

	got, err := svc.RegisterUser(ctx, models.RegisterUserRequest{
		Username: "mluukkai",
		Name:     "Matti Luukkainen",
		Password: "salainen",
	})

	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	assert.Empty(t, got.PasswordHash, "hash must not leave the service")
	assert.NotNil(t, got.Blogs)
	assert.Empty(t, got.Blogs)
}

func TestUserService_RegisterUser_UsernameTaken(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrUsernameTaken)

	_, err := svc.RegisterUser(ctx, models.RegisterUserRequest{Username: "root", Password: "salainen"})

	var verr *validators.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, validators.FieldUsername, verr.Fields[0].Field)
	assert.Equal(t, validators.RuleUnique, verr.Fields[0].Rule)
}

func TestUserService_RegisterUser_StoreFailure(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrExecutingQuery)

	_, err := svc.RegisterUser(ctx, models.RegisterUserRequest{Username: "root", Password: "salainen"})

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.NotErrorIs(t, err, validators.ErrValidation)
}

func TestUserService_ListUsers(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	users := []models.User{
		{ID: "u-1", Username: "root", Blogs: []models.BlogRef{{ID: "b-1", Title: "Env Variables"}}},
		{ID: "u-2", Username: "mluukkai", Blogs: []models.BlogRef{}},
	}
	repo.EXPECT().ListUsers(ctx).Return(users, nil)

	got, err := svc.ListUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestUserService_ListUsers_Error(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()
	dbErr := errors.New("boom")

	repo.EXPECT().ListUsers(ctx).Return(nil, dbErr)

	_, err := svc.ListUsers(ctx)

	assert.ErrorIs(t, err, dbErr)
}
