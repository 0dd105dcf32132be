package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bloglist.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestConfigBuilder_Build(t *testing.T) {
	tests := []struct {
		name    string
		configs []*StructuredConfig
		want    *StructuredConfig
	}{
		{
			name: "nothing collected",
			want: &StructuredConfig{},
		},
		{
			name: "disjoint fields are combined",
			configs: []*StructuredConfig{
				{Storage: Storage{DB: DB{Driver: DriverSQLite}}},
				{Server: Server{HTTPAddress: ":3003"}},
			},
			want: &StructuredConfig{
				Storage: Storage{DB: DB{Driver: DriverSQLite}},
				Server:  Server{HTTPAddress: ":3003"},
			},
		},
		{
			name: "first non-zero value wins",
			configs: []*StructuredConfig{
				{App: App{TokenIssuer: "env"}},
				{App: App{TokenIssuer: "flags", TokenDuration: time.Hour}},
			},
			want: &StructuredConfig{App: App{TokenIssuer: "env", TokenDuration: time.Hour}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.configs...)

			got, err := b.build()

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigBuilder_BuildReportsCollectedError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestConfigBuilder_EnvOverFlagsOverJSON(t *testing.T) {
	clearEnvVars(t)
	path := writeConfigFile(t, `{
		"app": {"token_issuer": "json", "token_sign_key": "json-key", "version": "v0.9.0"},
		"storage": {"db": {"dsn": "file:blogs.db"}}
	}`)
	t.Setenv("APP_TOKEN_ISSUER", "env")

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-token-issuer", "flags", "-token-sign-key", "flag-key", "-c", path}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "env", cfg.App.TokenIssuer)
	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
	assert.Equal(t, "v0.9.0", cfg.App.Version)
	assert.Equal(t, "file:blogs.db", cfg.Storage.DB.DSN)
	assert.Equal(t, path, cfg.JSONFilePath)
}

func TestConfigBuilder_JSONPathFromEnvWins(t *testing.T) {
	clearEnvVars(t)
	envPath := writeConfigFile(t, `{"app": {"version": "from-env-file"}}`)
	flagPath := writeConfigFile(t, `{"app": {"version": "from-flag-file"}}`)
	t.Setenv("CONFIG", envPath)

	cfg, err := newConfigBuilder().
		withEnv().
		withFlags([]string{"-config", flagPath}).
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "from-env-file", cfg.App.Version)
}

func TestConfigBuilder_WithJSONWithoutPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestConfigBuilder_SourceErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) *configBuilder
	}{
		{
			name: "bad env value",
			setup: func(t *testing.T) *configBuilder {
				t.Setenv("SERVER_REQUEST_TIMEOUT", "a while")
				return newConfigBuilder().withEnv()
			},
		},
		{
			name: "unknown flag",
			setup: func(t *testing.T) *configBuilder {
				return newConfigBuilder().withFlags([]string{"-no-such-flag"})
			},
		},
		{
			name: "missing json file",
			setup: func(t *testing.T) *configBuilder {
				return newConfigBuilder().withFlags([]string{"-c", filepath.Join(t.TempDir(), "absent.json")}).withJSON()
			},
		},
		{
			name: "malformed json file",
			setup: func(t *testing.T) *configBuilder {
				path := writeConfigFile(t, `{"app": `)
				return newConfigBuilder().withFlags([]string{"-c", path}).withJSON()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)

			cfg, err := tt.setup(t).build()

			require.Error(t, err)
			assert.Contains(t, err.Error(), "error occured during building config")
			assert.Nil(t, cfg)
		})
	}
}
