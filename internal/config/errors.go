package config

import "errors"

var (
	ErrInvalidAPIConfigs     = errors.New("invalid api configs: address and request timeout are required")
	ErrInvalidStorageConfigs = errors.New("invalid storage configs: local db dsn is required")
	ErrInvalidWorkerConfigs  = errors.New("invalid worker configs: refresh interval is required")
)
