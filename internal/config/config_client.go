package config

import (
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientConfig is the configuration container for the keyhub CLI client.
// It is populated from environment variables and command-line flags; the
// flags take precedence.
type ClientConfig struct {
	// Adapter holds the settings of the HTTP adapter talking to the server.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`

	// Storage holds the local cache settings.
	Storage ClientStorage `envPrefix:"STORAGE_"`
}

// ClientAdapter holds the HTTP client settings for reaching the server API.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the server API
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_HTTP_ADDRESS
	HTTPAddress string `env:"HTTP_ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientStorage groups the local cache backends of the CLI client.
type ClientStorage struct {
	// DB holds the sqlite cache settings.
	DB ClientDB `envPrefix:"DB_"`
}

// ClientDB holds connection settings for the local sqlite cache.
type ClientDB struct {
	// DSN is the sqlite database path (e.g. "~/.keyhub/cache.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// GetClientConfig loads and validates the client configuration from
// environment variables and the given command-line arguments. Environment
// values take precedence over flag values for fields set in both.
//
// The returned [flag.FlagSet] exposes the positional arguments remaining
// after flag parsing.
func GetClientConfig(args []string) (*ClientConfig, *flag.FlagSet, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, nil, fmt.Errorf("error get client env config: %w", err)
	}

	cfg, fs := ParseClientFlags(args)
	if err := mergo.Merge(cfg, envCfg); err != nil {
		return nil, nil, fmt.Errorf("error merging configs: %w", err)
	}

	return cfg, fs, cfg.validate()
}
