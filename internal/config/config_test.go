package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"codeberg.org/mutker/statusbar/internal/config"
	"codeberg.org/mutker/statusbar/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "statusbar.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
interval = 5
log_level = "debug"
monitor = true
battery = "BAT1"
icons = "ascii"
pidfile = "/run/statusbar.pid"
`)
	t.Setenv("STATUSBAR_CONFIG", path)

	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Interval, "Expected Interval 5")
	assert.Equal(t, 5*time.Second, cfg.GetInterval())
	assert.Equal(t, config.LogLevelDebug, cfg.GetLogLevel())
	assert.True(t, cfg.IsMonitorMode(), "Expected Monitor true")
	assert.Equal(t, "BAT1", cfg.GetBattery())
	assert.Equal(t, config.IconSetASCII, cfg.GetIconSet())
	assert.Equal(t, "/run/statusbar.pid", cfg.GetPIDFile())
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("STATUSBAR_CONFIG", "")

	cfg, err := config.Load(nil)
	require.NoError(t, err, "Failed to load config")

	assert.Equal(t, config.DefaultInterval, cfg.Interval, "Expected default Interval 1")
	assert.Equal(t, config.DefaultLogLevel, cfg.LogLevel, "Expected default LogLevel warning")
	assert.False(t, cfg.Monitor, "Expected default Monitor false")
	assert.Empty(t, cfg.Battery)
	assert.Equal(t, config.DefaultIcons, cfg.Icons)
	assert.Equal(t, filepath.Join(os.TempDir(), "statusbar.pid"), cfg.PIDFile)
}

func TestLoadConfigFileInvalidFormat(t *testing.T) {
	path := writeConfig(t, `
This is not a valid TOML file
`)
	t.Setenv("STATUSBAR_CONFIG", path)

	_, err := config.Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to read config file")
	assert.True(t, errors.HasCode(err, errors.ErrReadConfig))
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := config.Load([]string{"--config", filepath.Join(t.TempDir(), "missing.toml")})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrReadConfig))
}

func TestInvalidLogLevel(t *testing.T) {
	t.Setenv("STATUSBAR_CONFIG", writeConfig(t, `log_level = "invalid"`))

	_, err := config.Load(nil)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidLogLevel))
}

func TestInvalidInterval(t *testing.T) {
	t.Setenv("STATUSBAR_CONFIG", "")

	_, err := config.Load([]string{"--interval", "0"})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidInterval))
}

func TestInvalidIconSet(t *testing.T) {
	t.Setenv("STATUSBAR_CONFIG", "")

	_, err := config.Load([]string{"--icons", "nerdfont"})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrInvalidIconSet))
}

func TestUnknownFlag(t *testing.T) {
	_, err := config.Load([]string{"--bogus"})
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrBindFlags))
}

func TestPrecedence(t *testing.T) {
	t.Setenv("STATUSBAR_CONFIG", writeConfig(t, `
interval = 3
log_level = "error"
`))
	t.Setenv("STATUSBAR_LOG_LEVEL", "info")

	cfg, err := config.Load([]string{"--interval", "7"})
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Interval, "Expected flag to override file")
	assert.Equal(t, "info", cfg.LogLevel, "Expected env to override file")
}

func TestLogLevelFlag(t *testing.T) {
	t.Setenv("STATUSBAR_CONFIG", "")

	cfg, err := config.Load([]string{"--log-level", "debug"})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel, "Expected LogLevel to be set by flag")
}

func TestIconSetString(t *testing.T) {
	assert.Equal(t, "ascii", config.IconSetASCII.String())
	assert.Equal(t, "emoji", config.IconSetEmoji.String())

	path := writeConfig(t, "")

	cfg, err := config.Load([]string{"--config", path, "--icons", "ascii"})
	require.NoError(t, err)
	assert.Equal(t, "ascii", cfg.GetIconSet().String())
}
