// Package config manages environment variables.
//
// It reads variables from the `.env` file and an optional YAML file,
// loads them into structured Go types (struct), and validates that
// required values are present so they can be reused across the
// application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into the
	// process env before anything below reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix is stripped from every environment variable read.
	EnvPrefix = "GRUBDASH_"

	// ConfigFileEnv names an optional YAML file loaded before the env.
	ConfigFileEnv = EnvPrefix + "CONFIG_FILE"

	// ServiceName tags logs, traces and APM dashboards.
	ServiceName = "grubdash"
)

/*
	Key mapping:
	- Env vars are read using the prefix GRUBDASH_
	- Keys are lowercased with the prefix removed
	- A double underscore marks nesting, single underscores stay in the key
	  e.g. GRUBDASH_SERVER__READ_TIMEOUT -> server.read_timeout
*/

// Config is the root configuration object for the application.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Store         StoreConfig          `koanf:"store"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RateLimit is the allowed requests per second per client IP. Zero disables it.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`
}

// StoreConfig controls the in-memory collections.
type StoreConfig struct {
	// SeedFixtures loads the embedded dish and order fixtures on start-up.
	SeedFixtures bool `koanf:"seed_fixtures"`
}

// DefaultConfig returns the values used for anything not set by the
// YAML file or the environment.
func DefaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:               "5000",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		Store:         StoreConfig{SeedFixtures: true},
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig builds the configuration from defaults, the optional YAML
// file named by GRUBDASH_CONFIG_FILE and GRUBDASH_* environment variables,
// in that order of precedence (last wins). The result is validated.
func LoadConfig() (*Config, error) {
	// The "." is the key-path delimiter koanf uses to represent nesting.
	k := koanf.New(".")

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("could not load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Start from the defaults so unset keys keep their values.
	mainConfig := DefaultConfig()

	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	// Comma separated origins are accepted from the environment.
	mainConfig.Server.CORSAllowedOrigins = splitOrigins(mainConfig.Server.CORSAllowedOrigins)

	validate := validator.New()
	if err := validate.Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Set default observability config if the block was explicitly nulled.
	if mainConfig.Observability == nil {
		mainConfig.Observability = DefaultObservabilityConfig()
	}

	// Service name and environment always follow the primary config.
	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// envKey maps GRUBDASH_SERVER__READ_TIMEOUT to server.read_timeout.
func envKey(s string) string {
	if s == ConfigFileEnv {
		return ""
	}
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

func splitOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		for _, part := range strings.Split(o, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
