package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects partial configs in precedence order and merges
// them. Source errors are accumulated and reported once by build.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 3),
	}
}

// build merges the collected configs. mergo only fills fields that are
// still zero, so the first source to set a value wins.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(merged, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return merged, nil
}

func (b *configBuilder) add(cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, cfg)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	return b.add(envCfg, parseEnv(envCfg, ""))
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	return b.add(ParseFlags(args))
}

// withJSON loads the file named by the highest-precedence source that sets
// CONFIG / -config. It is a no-op when none does.
func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			return b.add(parseJSON(cfg.JSONFilePath))
		}
	}

	return b
}
