// Package config loads CLI configuration from defaults, an optional TOML
// file, a .env file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds CLI configuration.
type Config struct {
	// Workers bounds parallel sheet parsing; 0 means one per CPU.
	Workers int `toml:"workers"`
	// Pretty enables indented JSON output.
	Pretty bool `toml:"pretty"`
	// LogLevel is one of debug, info, warn, error, disabled.
	LogLevel string `toml:"log_level"`
	// Env selects the log format; "production" writes JSON lines.
	Env string `toml:"env"`

	dotEnvLoaded bool
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{}
}

// Load builds the configuration. Values from the TOML file at path (when
// path is non-empty) override the defaults; EXCELREADER_WORKERS, LOGLEVEL
// and ENV, optionally set through a .env file, override the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.dotEnvLoaded = godotenv.Load() == nil

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if cfg.Workers < 0 {
		return nil, fmt.Errorf("config: workers must be >= 0, got %d", cfg.Workers)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("EXCELREADER_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: EXCELREADER_WORKERS: %w", err)
		}
		c.Workers = n
	}
	if v := os.Getenv("LOGLEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("ENV"); v != "" {
		c.Env = v
	}
	return nil
}

// SetupLogging configures the global zerolog logger from cfg.
func SetupLogging(cfg *Config) {
	if cfg.Env == "production" {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	level, known := ParseLevel(cfg.LogLevel, cfg.Env)
	zerolog.SetGlobalLevel(level)
	if !known {
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to info.", cfg.LogLevel)
	}

	// report on the .env file only once logging is set up
	if cfg.dotEnvLoaded {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found; proceeding with existing environment variables.")
	}
}

// ParseLevel maps a level name to a zerolog level. An empty name defaults
// to warn in production and info elsewhere. known is false for
// unrecognised names, which map to info.
func ParseLevel(name, env string) (level zerolog.Level, known bool) {
	switch strings.ToLower(name) {
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled":
		return zerolog.Disabled, true
	case "":
		if env == "production" {
			return zerolog.WarnLevel, true
		}
		return zerolog.InfoLevel, true
	default:
		return zerolog.InfoLevel, false
	}
}
