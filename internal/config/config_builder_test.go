package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFrom merges the given partial configs the same way the builder does,
// bypassing the env/flag sources so tests stay hermetic.
func buildFrom(t *testing.T, configs ...*StructuredConfig) (*StructuredConfig, error) {
	t.Helper()
	b := newConfigBuilder()
	b.configs = append(b.configs, configs...)
	return b.withDefaults().build()
}

// validTestConfig is a minimal config that passes validation.
func validTestConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{TokenCipherKey: "cipher-key", TestMode: true},
	}
}

// TestBuild_DefaultsFillGaps verifies that defaults only fill fields the
// higher-priority sources left empty.
func TestBuild_DefaultsFillGaps(t *testing.T) {
	cfg, err := buildFrom(t, validTestConfig())
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "https://api.track.toggl.com/api/v9", cfg.Toggl.BaseURL)
	assert.Equal(t, time.Hour, cfg.Workers.RemindInterval)
	assert.Equal(t, 3*time.Hour, cfg.Workers.RunningAlertThreshold)
	assert.Equal(t, "ja", cfg.App.Language)
}

// TestBuild_FirstSourceWins verifies merge priority: an explicit value from
// an earlier source is not overridden by a later one.
func TestBuild_FirstSourceWins(t *testing.T) {
	first := validTestConfig()
	first.Server.HTTPAddress = "127.0.0.1:9000"
	second := &StructuredConfig{Server: Server{HTTPAddress: "0.0.0.0:7000"}}

	cfg, err := buildFrom(t, first, second)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
}

// TestBuild_MissingLineCredentials verifies that outside test mode the LINE
// channel credentials are mandatory.
func TestBuild_MissingLineCredentials(t *testing.T) {
	cfg := validTestConfig()
	cfg.App.TestMode = false

	_, err := buildFrom(t, cfg)
	assert.ErrorIs(t, err, ErrMissingLineCredentials)
}

// TestBuild_MissingCipherKey verifies that the token cipher key is always
// mandatory, test mode or not.
func TestBuild_MissingCipherKey(t *testing.T) {
	cfg := validTestConfig()
	cfg.App.TokenCipherKey = ""

	_, err := buildFrom(t, cfg)
	assert.ErrorIs(t, err, ErrMissingTokenCipherKey)
}

// TestParseJSON_FullFile verifies JSON file parsing including duration
// strings.
func TestParseJSON_FullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"app": {"token_cipher_key": "k", "language": "en"},
		"line": {"channel_secret": "s", "channel_access_token": "a"},
		"server": {"http_address": ":8000", "request_timeout": "1m"},
		"workers": {"remind_interval": "45m", "running_alert_threshold": "90m"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "k", cfg.App.TokenCipherKey)
	assert.Equal(t, "en", cfg.App.Language)
	assert.Equal(t, "s", cfg.Line.ChannelSecret)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, 45*time.Minute, cfg.Workers.RemindInterval)
	assert.Equal(t, 90*time.Minute, cfg.Workers.RunningAlertThreshold)
}

// TestParseJSON_MissingFile verifies the error path for an absent file.
func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
