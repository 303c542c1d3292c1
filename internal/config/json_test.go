package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"api": {"address": "http://backend:8000", "request_timeout": "30s"},
		"storage": {"db": {"dsn": "/data/jobscout.db"}},
		"workers": {"refresh_interval": "2m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "http://backend:8000", cfg.API.Address)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "/data/jobscout.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	// Raw nanosecond numbers are accepted alongside "30s"-style strings.
	path := writeTempConfig(t, `{"api": {"request_timeout": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.API.RequestTimeout)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempConfig(t, `{"api": {`)

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestParseJSON_InvalidDurationString(t *testing.T) {
	path := writeTempConfig(t, `{"workers": {"refresh_interval": "soon"}}`)

	_, err := parseJSON(path)
	require.Error(t, err)
}
