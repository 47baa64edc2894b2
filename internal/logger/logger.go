package logger

import (
	"os"
	"strings"
	"time"

	"github.com/mekalanagasita-alt/Online-Examination-System/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init sets up the global zerolog logger with development defaults. It runs
// before the config is loaded so config loading itself can log.
func Init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// Apply switches the global logger to the configured level and output.
// Production gets plain JSON lines on stdout.
func Apply(cfg *config.Config) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil || level == zerolog.NoLevel {
		log.Warn().Str("level", cfg.Log.Level).Msg("Unknown log level, keeping info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Log.Env == "production" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	log.Debug().Str("level", level.String()).Str("env", cfg.Log.Env).Msg("Logger configured")
}
