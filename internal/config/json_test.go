package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "1h",
			"administrator": "NbMgWsvCJs8MVoBpN2ZjsL5XziSK56rjT3",
			"initial_fee": 42,
			"trial_period": "72h",
			"paid_period": 3600000000000,
			"resubscribe_policy": "extend"
		},
		"server": {
			"http_address": "localhost:8080",
			"grpc_address": "localhost:9090",
			"request_timeout": "30s",
			"rate_limit": 4,
			"rate_burst": 8
		},
		"storage": {
			"db": { "driver": "sqlite", "dsn": "file:vault.db" }
		},
		"events": { "amqp_url": "amqp://localhost:5672/", "exchange": "audit" },
		"adapter": { "http_address": "http://localhost:8080", "request_timeout": "5s", "passphrase": "pw" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "NbMgWsvCJs8MVoBpN2ZjsL5XziSK56rjT3", cfg.App.Administrator)
	assert.Equal(t, uint64(42), cfg.App.InitialFee)
	assert.Equal(t, 72*time.Hour, cfg.App.TrialPeriod)
	assert.Equal(t, time.Hour, cfg.App.PaidPeriod)
	assert.Equal(t, "extend", cfg.App.ResubscribePolicy)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 4.0, cfg.Server.RateLimit)
	assert.Equal(t, 8, cfg.Server.RateBurst)

	assert.Equal(t, "sqlite", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:vault.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "amqp://localhost:5672/", cfg.Events.AMQPURL)
	assert.Equal(t, "audit", cfg.Events.Exchange)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "pw", cfg.Adapter.Passphrase)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")

	jsonBody := `{
		"app": { "paid_period": "not-a-duration" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// With non-pointer nested structs, all fields are zero values.
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "partial.json")

	jsonBody := `{
		"server": { "http_address": "127.0.0.1:8000" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "127.0.0.1:8000", cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Server.GRPCAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)

	// Others remain zero
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Events{}, cfg.Events)
}
