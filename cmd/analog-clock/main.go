package main

import (
	"context"
	"flag"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"analog-clock/internal/config"
	"analog-clock/internal/face"
	"analog-clock/internal/render"
	"analog-clock/internal/weather"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to config.toml (default: user config dir)")
	debugFlag := flag.Bool("debug", false, "enable verbose debug logging")
	flag.Parse()

	initLogging(*debugFlag)

	path := *configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			log.Error().Err(err).Msg("failed to resolve config path")
			return 1
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Error().Err(err).Msg("failed to load config")
		return 1
	}
	if cfg.DebugLogging {
		initLogging(true)
	}

	center := face.Point{
		X: float64(cfg.Window.Width) / 2,
		Y: float64(cfg.Window.Height) / 2,
	}
	clock := face.New(center, cfg.Clock.Radius, cfg.ThemeMode(), clockwork.NewRealClock())
	clock.SetWeather(fetchWeather(cfg))

	render.NewWindow(cfg, clock).Run()
	return 0
}

// fetchWeather performs the one startup fetch. There is no periodic
// refresh; the returned string is displayed for the process lifetime.
func fetchWeather(cfg *config.Values) string {
	if !cfg.Weather.Enabled {
		return ""
	}

	client := weather.NewClient(cfg.Weather.URL, cfg.WeatherTimeout(), log.Logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.WeatherTimeout())
	defer cancel()

	text, err := client.Fetch(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("weather fetch failed, using fallback")
		return weather.Fallback
	}
	return text
}
