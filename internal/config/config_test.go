package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/evananthony17/discord-ask-bot-sub000/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(viper.New(), home)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".askbot", "roster.toml"), cfg.RosterPath)
	assert.Equal(t, filepath.Join(home, ".askbot", "nicknames.yaml"), cfg.NicknamesPath)
	assert.Equal(t, filepath.Join(home, ".askbot", "history.toml"), cfg.HistoryPath)
	assert.Equal(t, 72*time.Hour, cfg.RecencyWindow)
	assert.Equal(t, 200, cfg.RecencyMaxMessages)
	assert.Equal(t, 8, cfg.MaxResults)
	assert.Equal(t, 5, cfg.MaxChoices)
	assert.Equal(t, 30*time.Second, cfg.SessionTimeout)
	assert.InDelta(t, 5.0, cfg.HistoryRatePerSecond, 1e-9)
	assert.Equal(t, domain.DefaultThresholds(), cfg.Thresholds)
	assert.NotNil(t, cfg.Viper)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".askbot")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	content := `
[session]
timeout = "5s"

[engine]
max_choices = 3

[thresholds]
multi_token = 0.9
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

	cfg, err := Load(viper.New(), home)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.SessionTimeout)
	assert.Equal(t, 3, cfg.MaxChoices)
	assert.InDelta(t, 0.9, cfg.Thresholds.MultiToken, 1e-9)
	assert.InDelta(t, 0.85, cfg.Thresholds.SingleVsMulti, 1e-9)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("ASKBOT_SESSION_TIMEOUT", "2s")

	cfg, err := Load(viper.New(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.SessionTimeout)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".askbot")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[engine]\nmax_choices = 12\n"), 0o600))

	_, err := Load(viper.New(), home)
	assert.ErrorContains(t, err, "engine.max_choices must be between 1 and 8")
}

func TestLoadMalformedConfigFile(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".askbot")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[engine\n"), 0o600))

	_, err := Load(viper.New(), home)
	assert.ErrorContains(t, err, "read config file")
}
