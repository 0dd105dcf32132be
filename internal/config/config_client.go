package config

import (
	"fmt"
	"time"
)

// DefaultClientServerURL is used when CLIENT_SERVER_URL is not set.
const DefaultClientServerURL = "http://localhost:3003"

// ClientConfig holds the settings of the command-line client. It is read
// from the environment only; subcommand flags override it per invocation.
type ClientConfig struct {
	// ServerURL is the base URL of the bloglist API.
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout is the timeout for each outbound request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is a bearer token used by commands that require authentication.
	// Env: CLIENT_TOKEN
	Token string `env:"TOKEN"`
}

// GetClientConfig parses CLIENT_* environment variables, applies defaults
// and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	clientCfg := &ClientConfig{}
	if err := parseEnv(clientCfg, "CLIENT_"); err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	if clientCfg.ServerURL == "" {
		clientCfg.ServerURL = DefaultClientServerURL
	}
	if clientCfg.RequestTimeout == 0 {
		clientCfg.RequestTimeout = 10 * time.Second
	}

	return clientCfg, clientCfg.validate()
}
