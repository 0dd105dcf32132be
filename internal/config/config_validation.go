// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Defaults applied to fields left empty by every configuration source.
const (
	DefaultTokenIssuer     = "bloglist"
	DefaultTokenDuration   = time.Hour
	DefaultVersion         = "dev"
	DefaultHTTPAddress     = ":3003"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultSQLiteDSN       = "file:bloglist.db?_foreign_keys=on"
	DefaultMongoDatabase   = "bloglist"
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = bcrypt.DefaultCost
	}
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}

	if cfg.Storage.DB.DSN == "" && cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.DSN = DefaultSQLiteDSN
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DriverFromDSN(cfg.Storage.DB.DSN)
	}
	if cfg.Storage.DB.Driver == DriverMongo && cfg.Storage.DB.Name == "" {
		cfg.Storage.DB.Name = DefaultMongoDatabase
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
}

// validate checks that the defaulted [StructuredConfig] can be used at
// startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}
	if cfg.App.TokenDuration <= 0 {
		return ErrInvalidTokenDuration
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: %d", ErrInvalidPasswordHashCost, cfg.App.PasswordHashCost)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	case DriverMongo:
		if cfg.Storage.DB.Name == "" {
			return ErrMissingDatabaseName
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDBDriver, cfg.Storage.DB.Driver)
	}

	return nil
}

// DriverFromDSN infers the storage driver from the DSN scheme. Anything
// that is not a postgres or mongodb URL is treated as a SQLite path.
func DriverFromDSN(dsn string) string {
	lower := strings.ToLower(dsn)
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DriverPostgres
	case strings.HasPrefix(lower, "mongodb://"), strings.HasPrefix(lower, "mongodb+srv://"):
		return DriverMongo
	default:
		return DriverSQLite
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerURL == "" {
		return fmt.Errorf("%w: empty server url", ErrInvalidClientConfigs)
	}
	if cfg.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidClientConfigs)
	}

	return nil
}
