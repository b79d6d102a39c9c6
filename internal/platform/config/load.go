package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir points Load at a directory other than ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// layer contributes one source of keys to k. Later layers win.
type layer struct {
	name string
	load func(k *koanf.Koanf) error
}

// Load resolves the configuration for profile. Sources, lowest precedence
// first:
//
//   - built-in defaults (defaults.go)
//   - {configDir}/base.yaml
//   - {configDir}/{profile}.yaml
//   - APP_* environment variables
//
// An environment variable is matched against the keys the earlier layers
// produced, so field names containing underscores survive the mapping:
//
//	APP_LOG_LEVEL                            -> log.level
//	APP_STORAGE_POSTGRES_MAX_CONNS           -> storage.postgres.max_conns
//	APP_STORAGE_CIRCUIT_BREAKER_MAX_FAILURES -> storage.circuit_breaker.max_failures
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(&o)
	}

	layers := []layer{
		{name: "defaults", load: loadDefaults},
		yamlLayer(filepath.Join(o.configDir, "base.yaml")),
		yamlLayer(filepath.Join(o.configDir, profile+".yaml")),
		{name: "environment", load: loadEnv},
	}

	k := koanf.New(".")
	for _, l := range layers {
		if err := l.load(k); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func loadDefaults(k *koanf.Koanf) error {
	for key, val := range defaults() {
		if err := k.Set(key, val); err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
	}
	return nil
}

func yamlLayer(path string) layer {
	return layer{
		name: path,
		load: func(k *koanf.Koanf) error {
			return k.Load(file.Provider(path), yaml.Parser())
		},
	}
}

func loadEnv(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envKeyMapper(k.Keys()),
	}), nil)
}

// envKeyMapper maps APP_FOO_BAR_BAZ onto whichever known key flattens to
// foo_bar_baz. Unknown variables fall back to one level per underscore.
func envKeyMapper(known []string) func(string, string) (string, any) {
	byFlat := make(map[string]string, len(known))
	for _, key := range known {
		byFlat[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(name, value string) (string, any) {
		flat := strings.ToLower(strings.TrimPrefix(name, envPrefix))
		if key, ok := byFlat[flat]; ok {
			return key, value
		}
		return strings.ReplaceAll(flat, "_", "."), value
	}
}

// validateProfile rejects names that would resolve outside the config dir.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
