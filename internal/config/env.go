package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment. prefix is prepended to every
// `env` tag, so the client can share field names with the server config
// under CLIENT_.
func parseEnv(cfg any, prefix string) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: prefix}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
