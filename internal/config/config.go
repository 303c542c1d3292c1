package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for jobscout.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds the backend endpoint settings used by the HTTP adapter.
	API API `envPrefix:"JOBSCOUT_API_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"JOBSCOUT_STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"JOBSCOUT_WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the JOBSCOUT_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"JOBSCOUT_CONFIG"`
}

// API holds network settings for the outbound backend connection.
type API struct {
	// Address is the base URL of the job-search backend,
	// e.g. "http://localhost:8000".
	// Env: JOBSCOUT_API_ADDRESS
	Address string `env:"ADDRESS" json:"address"`

	// RequestTimeout is the default timeout for a single outbound request
	// (e.g. "15s", "1m").
	// Env: JOBSCOUT_API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database that keeps the
// bearer credential and the job-catalog cache.
type DB struct {
	// DSN is the SQLite file path, e.g. "jobscout.db".
	// Env: JOBSCOUT_STORAGE_DB_DSN
	DSN string `env:"DSN" json:"dsn"`
}

// Workers contains background worker settings.
type Workers struct {
	// RefreshInterval defines how often the catalog refresh job re-fetches
	// the job list into the local cache (e.g. "5m").
	// Env: JOBSCOUT_WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL" json:"refresh_interval"`
}

// Defaults applied in GetClientConfig when neither env, flags nor the JSON
// file provide a value.
const (
	defaultAPIAddress      = "http://localhost:8000"
	defaultRequestTimeout  = 15 * time.Second
	defaultDSN             = "jobscout.db"
	defaultRefreshInterval = 5 * time.Minute
)

// ClientConfig is the validated client view of the merged configuration,
// consumed by the wiring code in cmd/client.
type ClientConfig struct {
	// API contains backend endpoint settings.
	API API
	// Storage contains local storage settings.
	Storage Storage
	// Workers contains background job settings.
	Workers Workers
}

// GetClientConfig builds and validates the client configuration.
//
// Sources are merged in order of precedence: environment variables, then
// command-line flags, then the optional JSON file named by either of the
// first two. Missing values fall back to compiled-in defaults before
// validation.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		API:     cfg.API,
		Storage: cfg.Storage,
		Workers: cfg.Workers,
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.API.Address == "" {
		cfg.API.Address = defaultAPIAddress
	}
	if cfg.API.RequestTimeout == 0 {
		cfg.API.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultDSN
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = defaultRefreshInterval
	}
}
