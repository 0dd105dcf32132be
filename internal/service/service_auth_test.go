package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/bloglist/internal/config"
	"github.com/MKhiriev/bloglist/internal/logger"
	"github.com/MKhiriev/bloglist/internal/mock"
	"github.com/MKhiriev/bloglist/internal/store"
	"github.com/MKhiriev/bloglist/internal/utils"
	"github.com/MKhiriev/bloglist/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testAppConfig = config.App{
	TokenSignKey:     "test-sign-key",
	TokenIssuer:      "bloglist",
	TokenDuration:    time.Hour,
	PasswordHashCost: bcrypt.MinCost,
	Version:          "test",
}

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	return NewAuthService(repo, testAppConfig, logger.Nop()), repo
}

func storedUser(t *testing.T, password string) models.User {
	t.Helper()

	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)

	return models.User{
		ID:           "0190a7b2-58f1-7c4e-9d1a-3e6f0b2c4d5e",
		Username:     "root",
		Name:         "Superuser",
		PasswordHash: hash,
		Blogs:        []models.BlogRef{},
	}
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()
	user := storedUser(t, "salainen")

	repo.EXPECT().FindUserByUsername(ctx, "root").Return(user, nil)

	got, err := svc.Login(ctx, models.LoginRequest{Username: "root", Password: "salainen"})

	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "root").Return(storedUser(t, "salainen"), nil)

	_, err := svc.Login(ctx, models.LoginRequest{Username: "root", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(ctx, "ghost").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(ctx, models.LoginRequest{Username: "ghost", Password: "salainen"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	svc, repo := newTestAuthService(t)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	repo.EXPECT().FindUserByUsername(ctx, "root").Return(models.User{}, dbErr)

	_, err := svc.Login(ctx, models.LoginRequest{Username: "root", Password: "salainen"})

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()
	user := models.User{ID: "u-1", Username: "root"}

	token, err := svc.CreateToken(ctx, user)
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u-1", parsed.UserID)
	assert.Equal(t, "root", parsed.Username)
}

func TestAuthService_CreateToken_MissingUserID(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.CreateToken(context.Background(), models.User{Username: "root"})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Rejected(t *testing.T) {
	svc, _ := newTestAuthService(t)

	foreignCfg := testAppConfig
	foreignCfg.TokenSignKey = "another-key"
	foreign, err := NewAuthService(nil, foreignCfg, logger.Nop()).CreateToken(context.Background(), models.User{ID: "u-1"})
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":        "not.a.jwt",
		"wrong key":      foreign.SignedString,
		"empty":          "",
		"truncated part": "eyJhbGciOiJIUzI1NiJ9",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), raw)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

// ── ResolveUser ──────────────────────────────────────────────────────────────

func TestAuthService_ResolveUser(t *testing.T) {
	ctx := context.Background()
	user := storedUser(t, "salainen")

	tests := []struct {
		name    string
		token   func(t *testing.T, svc AuthService) string
		setup   func(repo *mock.MockUserRepository)
		wantErr error
	}{
		{
			name: "valid token",
			token: func(t *testing.T, svc AuthService) string {
				tok, err := svc.CreateToken(ctx, user)
				require.NoError(t, err)
				return tok.SignedString
			},
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
			},
		},
		{
			name:    "empty token",
			token:   func(*testing.T, AuthService) string { return "" },
			wantErr: ErrTokenInvalid,
		},
		{
			name:    "malformed token",
			token:   func(*testing.T, AuthService) string { return "abc" },
			wantErr: ErrTokenInvalid,
		},
		{
			name: "owner deleted",
			token: func(t *testing.T, svc AuthService) string {
				tok, err := svc.CreateToken(ctx, user)
				require.NoError(t, err)
				return tok.SignedString
			},
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByID(ctx, user.ID).Return(models.User{}, store.ErrUserNotFound)
			},
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAuthService(t)
			if tt.setup != nil {
				tt.setup(repo)
			}

			got, err := svc.ResolveUser(ctx, tt.token(t, svc))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, user.ID, got.ID)
		})
	}
}

func TestAuthService_ResolveUser_ExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	cfg := testAppConfig
	cfg.TokenDuration = time.Nanosecond
	svc := NewAuthService(repo, cfg, logger.Nop())

	tok, err := svc.CreateToken(context.Background(), models.User{ID: "u-1"})
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	_, err = svc.ResolveUser(context.Background(), tok.SignedString)

	assert.ErrorIs(t, err, ErrTokenInvalid)
}
