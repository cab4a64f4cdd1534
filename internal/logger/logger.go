// Package logger configures the process-wide zerolog instance.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Level  string `mapstructure:"level" validate:"required|in:trace,debug,info,warn,error"`
	Format string `mapstructure:"format" validate:"in:json,console"`
}

// Init builds the global logger from config and returns it. Unknown levels
// fall back to info rather than failing startup.
func Init(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var output io.Writer = os.Stdout
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	l := zerolog.New(output).Level(level).With().Timestamp().Logger()
	log.Logger = l
	return l
}
