package main

import (
	"os"

	"github.com/delhivery/moirai-sub000/config"
	"github.com/rs/zerolog"
)

// newLogger returns a configured zerolog.Logger: pretty console output,
// level taken from cfg.LogLevel (falling back to env-derived debug/info
// if LogLevel does not parse).
func newLogger(cfg *config.Config) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: os.Stderr}
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
		if cfg.IsDevelopment() {
			lvl = zerolog.DebugLevel
		}
	}
	zerolog.SetGlobalLevel(lvl)
	return zerolog.New(out).With().Timestamp().Logger()
}
