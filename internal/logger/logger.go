// Package logger builds the zerolog logger shared by the server, the
// database layer and the command line tools.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/recipfy/recipe-service/config"
)

// New returns a logger writing human readable output outside production
// and JSON lines in production
func New(cfg *config.Config) zerolog.Logger {
	var out io.Writer = os.Stdout
	if !cfg.Env.IsProduction() {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	return NewWithWriter(out, cfg.Log.Level).With().
		Str("service", "recipe-service").
		Str("env", string(cfg.Env)).
		Logger()
}

// NewWithWriter builds a timestamped logger at the given level. Unknown
// levels fall back to info.
func NewWithWriter(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
