package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the process-wide logger. Init replaces it.
var Logger = log.Logger

type Config struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or pretty
}

func Init(cfg Config) {
	InitWithWriter(cfg, os.Stdout)
}

// InitWithWriter is Init with an explicit output, used by tests.
func InitWithWriter(cfg Config, out io.Writer) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	output := out
	if cfg.Format == "pretty" {
		output = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	Logger = zerolog.New(output).Level(level).With().Timestamp().Logger()
	log.Logger = Logger
}

func Debug() *zerolog.Event { return Logger.Debug() }
func Info() *zerolog.Event  { return Logger.Info() }
func Warn() *zerolog.Event  { return Logger.Warn() }
func Error() *zerolog.Event { return Logger.Error() }
func Fatal() *zerolog.Event { return Logger.Fatal() }

// WithRun returns a context carrying a child logger tagged with runID.
func WithRun(ctx context.Context, runID string) context.Context {
	l := Logger.With().Str("run_id", runID).Logger()
	return l.WithContext(ctx)
}

// Ctx returns the logger stored in ctx, falling back to Logger.
func Ctx(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return &Logger
	}
	return l
}
