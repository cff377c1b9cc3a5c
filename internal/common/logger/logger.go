package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds configuration for the application logger
type Config struct {
	// Level is a zerolog level name (debug, info, warn, error); defaults to info
	Level string

	// JSON switches from the console writer to raw JSON lines
	JSON bool

	// Output defaults to stdout
	Output io.Writer
}

// New builds the root logger
func New(cfg *Config) (zerolog.Logger, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	level := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(cfg.Level)
		if err != nil {
			return zerolog.Nop(), err
		}
		level = parsed
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if !cfg.JSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
