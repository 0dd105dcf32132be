package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/bloglist/internal/config"
	"github.com/MKhiriev/bloglist/internal/logger"
	"github.com/MKhiriev/bloglist/internal/store"
	"github.com/MKhiriev/bloglist/internal/utils"
	"github.com/MKhiriev/bloglist/models"
)

// authService is the concrete implementation of AuthService.
// It verifies bcrypt password hashes and issues HS256 JWT tokens whose
// subject is the user ID.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates an existing user.
//
// An unknown username and a wrong password both yield ErrInvalidCredentials
// so the response does not reveal which accounts exist.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByUsername(ctx, request.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("func", "*authService.Login").Str("username", request.Username).Msg("login attempt for unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("username", request.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, err := utils.ComparePassword(user.PasswordHash, request.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("user_id", user.ID).Msg("stored password hash is unusable")
		return models.User{}, fmt.Errorf("error comparing password: %w", err)
	}
	if !ok {
		log.Debug().Str("func", "*authService.Login").Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Str("user_id", user.ID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, bad signature, malformed)
// is normalised to ErrTokenInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("rejected token")
		return models.Token{}, ErrTokenInvalid
	}

	return token, nil
}

// ResolveUser validates tokenString and loads the user named by its subject.
//
// Returns ErrTokenInvalid for an empty or invalid token and ErrUserNotFound
// when the token is valid but the account no longer exists.
func (a *authService) ResolveUser(ctx context.Context, tokenString string) (models.User, error) {
	if tokenString == "" {
		return models.User{}, ErrTokenInvalid
	}

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		logger.FromContext(ctx).Debug().Str("func", "*authService.ResolveUser").Str("user_id", token.UserID).Msg("token owner does not exist")
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.ResolveUser").Str("user_id", token.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}
