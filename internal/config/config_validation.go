package config

import "strings"

// validate checks that the final merged [ClientConfig] satisfies all
// application invariants before it is used at startup. Defaults are applied
// beforehand, so an error here means an explicitly broken value.
func (cfg *ClientConfig) validate() error {
	if cfg.API.Address == "" || cfg.API.RequestTimeout <= 0 {
		return ErrInvalidAPIConfigs
	}

	// The credential must survive restarts; an in-memory DB would silently
	// log the user out on every launch.
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
