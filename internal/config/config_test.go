package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"analog-clock/internal/theme"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, Defaults, *cfg)
	assert.Equal(t, int32(600), cfg.Window.Width)
	assert.Equal(t, int32(60), cfg.Window.TargetFPS)
	assert.Equal(t, 250.0, cfg.Clock.Radius)
	assert.True(t, cfg.Weather.Enabled)
	assert.Equal(t, 5*time.Second, cfg.WeatherTimeout())
	assert.Equal(t, theme.ModeAuto, cfg.ThemeMode())
}

func TestLoad_OverlaysFileOntoDefaults(t *testing.T) {
	path := writeConfig(t, `
debug_logging = true

[window]
width = 800
height = 480

[clock]
theme = "dark"

[weather]
enabled = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.DebugLogging)
	assert.Equal(t, int32(800), cfg.Window.Width)
	assert.Equal(t, int32(480), cfg.Window.Height)
	// Untouched keys keep their defaults.
	assert.Equal(t, "Analog Clock", cfg.Window.Title)
	assert.Equal(t, int32(60), cfg.Window.TargetFPS)
	assert.Equal(t, theme.ModeDark, cfg.ThemeMode())
	assert.False(t, cfg.Weather.Enabled)
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := writeConfig(t, `[window`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"zero width", "[window]\nwidth = 0\n"},
		{"negative fps", "[window]\ntarget_fps = -1\n"},
		{"zero radius", "[clock]\nradius = 0\n"},
		{"bad theme", "[clock]\ntheme = \"sepia\"\n"},
		{"enabled weather without url", "[weather]\nenabled = true\nurl = \"\"\n"},
		{"zero weather timeout", "[weather]\ntimeout_seconds = 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.body)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_DisabledWeatherSkipsWeatherValidation(t *testing.T) {
	path := writeConfig(t, "[weather]\nenabled = false\nurl = \"\"\ntimeout_seconds = 0\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Weather.Enabled)
}
