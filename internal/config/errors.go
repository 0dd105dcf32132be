package config

import "errors"

// Validation errors returned when the merged configuration cannot be used.
var (
	// ErrMissingTokenSignKey indicates that no token signing secret was set.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
	// ErrInvalidTokenDuration indicates a non-positive token lifetime.
	ErrInvalidTokenDuration = errors.New("token duration must be positive")
	// ErrInvalidPasswordHashCost indicates a bcrypt cost outside the supported range.
	ErrInvalidPasswordHashCost = errors.New("invalid password hash cost")
	// ErrUnsupportedDBDriver indicates a driver other than postgres, sqlite or mongo.
	ErrUnsupportedDBDriver = errors.New("unsupported database driver")
	// ErrMissingDatabaseName indicates the mongo backend was chosen without a database name.
	ErrMissingDatabaseName = errors.New("database name is required for mongo")
	// ErrInvalidClientConfigs indicates invalid command-line client settings
	// (for example, an empty server URL).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
