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

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir    string
	overrideFile string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// WithOverrideFile adds a YAML file applied after the profile and before
// the environment, for deployment-specific settings mounted at runtime. An
// empty path is ignored.
func WithOverrideFile(path string) Option {
	return func(o *loadOptions) {
		o.overrideFile = path
	}
}

// Load reads configuration in layers, later layers winning:
//
//  0. Built-in defaults
//  1. {configDir}/base.yaml
//  2. {configDir}/{profile}.yaml
//  3. The WithOverrideFile file, when given
//  4. Environment variables with the APP_ prefix
//
// Environment keys are matched against the keys already loaded, so
// underscores inside a field name survive:
//
//	APP_SERVER_READ_TIMEOUT        -> server.read_timeout
//	APP_DATABASE_BUSY_TIMEOUT      -> database.busy_timeout
//	APP_CLIENT_RETRY_MAX_ATTEMPTS  -> client.retry.max_attempts
//	APP_BOARD_COLUMN_DELETE_POLICY -> board.column_delete_policy
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	// Every known key exists after the defaults, so the env lookup resolves
	// keys that no YAML file mentions.
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	files := []struct{ label, path string }{
		{"base config", filepath.Join(o.configDir, "base.yaml")},
		{"profile config", filepath.Join(o.configDir, profile+".yaml")},
	}
	if o.overrideFile != "" {
		files = append(files, struct{ label, path string }{"override config", o.overrideFile})
	}
	for _, f := range files {
		if err := k.Load(file.Provider(f.path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s %s: %w", f.label, f.path, err)
		}
	}

	envLookup := buildEnvLookup(k.Keys())
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if koanfKey, ok := envLookup[key]; ok {
				return koanfKey, value
			}
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
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

// validateProfile rejects empty profiles and anything that could escape the
// config directory.
func validateProfile(profile string) error {
	if strings.TrimSpace(profile) == "" {
		return errors.New("profile must not be empty")
	}
	if strings.ContainsAny(profile, `/\`) {
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	}
	if strings.Contains(profile, "..") {
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// buildEnvLookup maps the underscore form of each koanf key back to the key,
// for example "server_read_timeout" to "server.read_timeout".
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		envKey := strings.ReplaceAll(key, ".", "_")
		lookup[envKey] = key
	}
	return lookup
}
