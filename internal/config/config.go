// Package config loads the TOML configuration file. Every value has a
// default, so a missing file yields a fully usable config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"

	"analog-clock/internal/theme"
)

type Values struct {
	Window       Window  `toml:"window"`
	Clock        Clock   `toml:"clock"`
	Weather      Weather `toml:"weather"`
	DebugLogging bool    `toml:"debug_logging"`
}

type Window struct {
	Width     int32  `toml:"width"`
	Height    int32  `toml:"height"`
	Title     string `toml:"title"`
	TargetFPS int32  `toml:"target_fps"`
}

type Clock struct {
	Radius float64 `toml:"radius"`
	// Theme is "auto", "light" or "dark". Auto follows the hour of day.
	Theme string `toml:"theme"`
}

type Weather struct {
	Enabled        bool   `toml:"enabled"`
	URL            string `toml:"url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

var Defaults = Values{
	Window: Window{
		Width:     600,
		Height:    600,
		Title:     "Analog Clock",
		TargetFPS: 60,
	},
	Clock: Clock{
		Radius: 250,
		Theme:  "auto",
	},
	Weather: Weather{
		Enabled:        true,
		URL:            "https://wttr.in/?format=%t+%C",
		TimeoutSeconds: 5,
	},
}

// DefaultPath returns the per-user config location, creating parent
// directories as needed.
func DefaultPath() (string, error) {
	return xdg.ConfigFile("analog-clock/config.toml")
}

// Load reads the config at path, overlaying the file onto Defaults. A
// missing file is not an error; a malformed or invalid one is.
func Load(path string) (*Values, error) {
	vals := Defaults

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &vals, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &vals); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := vals.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &vals, nil
}

func (v *Values) validate() error {
	if v.Window.Width <= 0 || v.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", v.Window.Width, v.Window.Height)
	}
	if v.Window.TargetFPS <= 0 {
		return fmt.Errorf("target_fps must be positive, got %d", v.Window.TargetFPS)
	}
	if v.Clock.Radius <= 0 {
		return fmt.Errorf("clock radius must be positive, got %g", v.Clock.Radius)
	}
	if _, err := theme.ParseMode(v.Clock.Theme); err != nil {
		return err
	}
	if v.Weather.Enabled {
		if v.Weather.URL == "" {
			return errors.New("weather is enabled but url is empty")
		}
		if v.Weather.TimeoutSeconds <= 0 {
			return fmt.Errorf("weather timeout_seconds must be positive, got %d", v.Weather.TimeoutSeconds)
		}
	}
	return nil
}

// WeatherTimeout returns the weather fetch timeout as a duration.
func (v *Values) WeatherTimeout() time.Duration {
	return time.Duration(v.Weather.TimeoutSeconds) * time.Second
}

// ThemeMode returns the parsed theme mode. Load has already validated it,
// so this cannot fail on a loaded config.
func (v *Values) ThemeMode() theme.Mode {
	mode, _ := theme.ParseMode(v.Clock.Theme)
	return mode
}
