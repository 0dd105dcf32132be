// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/bloglist/internal/config"
	"github.com/MKhiriev/bloglist/internal/logger"
	"github.com/MKhiriev/bloglist/internal/store"
	"github.com/MKhiriev/bloglist/internal/utils"
	"github.com/MKhiriev/bloglist/internal/validators"
	"github.com/MKhiriev/bloglist/models"
)

type userService struct {
	userRepository   store.UserRepository
	passwordHashCost int

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository:   userRepository,
		passwordHashCost: cfg.PasswordHashCost,
		logger:           logger,
	}
}

// RegisterUser hashes the password and persists the account with an empty
// blog list. A taken username is reported as a validation failure on the
// username field.
func (s *userService) RegisterUser(ctx context.Context, request models.RegisterUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := utils.HashPassword(request.Password, s.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "*userService.RegisterUser").Msg("password hashing failed")
		return models.User{}, err
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		Username:     request.Username,
		Name:         request.Name,
		PasswordHash: hash,
		Blogs:        []models.BlogRef{},
	})
	if errors.Is(err, store.ErrUsernameTaken) {
		return models.User{}, validators.UsernameTaken()
	}
	if err != nil {
		log.Err(err).Str("func", "*userService.RegisterUser").Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	created.PasswordHash = ""
	if created.Blogs == nil {
		created.Blogs = []models.BlogRef{}
	}

	return created, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userService.ListUsers").Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}
