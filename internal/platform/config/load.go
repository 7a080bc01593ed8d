package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	envFileSuffix    = "_FILE"
	defaultConfigDir = "configs"
)

// secretKeys may also be read from a file named by APP_<KEY>_FILE, the way
// container secrets are mounted. A file wins over the plain variable.
var secretKeys = []string{
	"database.dsn",
	"auth.jwt.secret",
	"auth.introspection.client_secret",
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory holding base.yaml and the profile files.
// The default is "configs" under the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load layers configuration, later layers overriding earlier ones:
//
//	defaults -> {dir}/base.yaml -> {dir}/{profile}.yaml -> APP_* env -> APP_*_FILE secrets
//
// Environment variables name known keys only, with dots written as
// underscores, so field names containing underscores resolve unambiguously:
//
//	APP_SERVER_READ_TIMEOUT                          -> server.read_timeout
//	APP_DATABASE_DSN                                 -> database.dsn
//	APP_AUTH_INTROSPECTION_CLIENT_RETRY_MAX_ATTEMPTS -> auth.introspection.client.retry.max_attempts
//	APP_AUTH_JWT_SECRET_FILE=/run/secrets/jwt        -> auth.jwt.secret
//
// Variables that name no known key are ignored.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	for _, name := range []string{"base", profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}

	known := envKeys(k.Keys())
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			// An empty key tells the provider to skip the variable.
			return known[name], value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	if err := loadSecretFiles(k); err != nil {
		return nil, err
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

// loadSecretFiles overrides each secret key whose _FILE variable is set with
// the file's contents, minus trailing newlines.
func loadSecretFiles(k *koanf.Koanf) error {
	for _, key := range secretKeys {
		path := os.Getenv(envName(key) + envFileSuffix)
		if path == "" {
			continue
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s from %s: %w", key, envName(key)+envFileSuffix, err)
		}
		if err := k.Set(key, strings.TrimRight(string(raw), "\r\n")); err != nil {
			return fmt.Errorf("setting %s: %w", key, err)
		}
	}
	return nil
}

// envKeys maps the variable name of every known key to the key.
func envKeys(keys []string) map[string]string {
	m := make(map[string]string, len(keys))
	for _, key := range keys {
		m[envName(key)] = key
	}
	return m
}

// envName turns auth.jwt.secret into APP_AUTH_JWT_SECRET.
func envName(key string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

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
