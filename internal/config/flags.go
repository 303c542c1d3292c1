package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a backend API base URL, e.g. http://localhost:8000
//	-d local sqlite database path
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
//	-refresh-interval catalog cache refresh interval (e.g., "5m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var apiAddress string
	var databaseDSN string
	var requestTimeout time.Duration
	var refreshInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&apiAddress, "a", "", "Backend API base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Catalog refresh interval (e.g., 5m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		API: API{
			Address:        apiAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
