package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// initLogging sets up the global logger: human-readable console output
// plus a small rotating file under the user state dir.
func initLogging(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}}

	logPath := filepath.Join(xdg.StateHome, "analog-clock", "analog-clock.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0o750); err == nil {
		writers = append(writers, &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    1,
			MaxBackups: 2,
		})
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).
		With().Timestamp().Logger()
}
