// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the bcrypt input limit. Longer passwords are cut to
// this many bytes on both hashing and comparison.
const maxPasswordBytes = 72

// HashPassword returns the salted bcrypt hash of password using the given
// cost. A cost outside [bcrypt.MinCost, bcrypt.MaxCost] falls back to
// [bcrypt.DefaultCost].
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword(bcryptInput(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword reports whether password matches the stored bcrypt hash.
// A mismatch returns (false, nil); a malformed hash returns an error.
func ComparePassword(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), bcryptInput(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, fmt.Errorf("error comparing password hash: %w", err)
}

func bcryptInput(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
