// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/danielhkuo/hackconsole/db"
)

const (
	DefaultBaseURL   = "http://127.0.0.1:8000"
	DefaultSQLiteURL = "file:hackconsole.db"
	DefaultHost      = "127.0.0.1"
	DefaultPort      = 3319
	DefaultLogLevel  = "info"
)

var (
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrMissingDatabaseURL = errors.New("database URL required (use -d or DATABASE_URL env)")
	ErrUnsupportedDBType  = errors.New("unsupported database type")
	ErrMalformedField     = errors.New("field must be name=value")
)

// AllowedOrigin is the one cross-origin page allowed to call the console
// server; empty means same-origin only.
type Config struct {
	BaseURL       string `yaml:"base_url" env:"HACKATHON_API_URL"`
	DatabaseType  string `yaml:"database_type" env:"DATABASE_TYPE"`
	DatabaseURL   string `yaml:"database_url" env:"DATABASE_URL"`
	Host          string `yaml:"host" env:"CONSOLE_HOST"`
	Port          int    `yaml:"port" env:"PORT"`
	AllowedOrigin string `yaml:"allowed_origin" env:"CONSOLE_ALLOWED_ORIGIN"`
	LogLevel      string `yaml:"log_level" env:"LOG_LEVEL"`
	ConfigPath    string `yaml:"-" env:"CONFIG_PATH"`
}

// Level returns the slog level named by LogLevel.
func (c Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseFlags builds the configuration and returns the arguments left
// after the flags (the action name and its fields).
// Precedence: flags, then environment, then the YAML file, then defaults.
func ParseFlags(args []string) (Config, []string, error) {
	var flags Config

	fs := flag.NewFlagSet("hackconsole", flag.ContinueOnError)

	fs.StringVar(&flags.BaseURL, "u", "", "Hackathon API base URL")
	fs.StringVar(&flags.DatabaseType, "t", "", "Session database type (sqlite, postgres or redis)")
	fs.StringVar(&flags.DatabaseURL, "d", "", "Session database URL")
	fs.StringVar(&flags.Host, "host", "", "Console server listen address (serve mode)")
	fs.IntVar(&flags.Port, "p", 0, "Console server port (serve mode)")
	fs.StringVar(&flags.AllowedOrigin, "origin", "", "Cross-origin page allowed to call the console server")
	fs.StringVar(&flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&flags.ConfigPath, "c", "", "YAML config file")

	if err := fs.Parse(args); err != nil {
		return Config{}, nil, err
	}

	path := flags.ConfigPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	// cleanenv applies the environment on top of the file
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.ConfigPath = path

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "u":
			cfg.BaseURL = flags.BaseURL
		case "t":
			cfg.DatabaseType = flags.DatabaseType
		case "d":
			cfg.DatabaseURL = flags.DatabaseURL
		case "host":
			cfg.Host = flags.Host
		case "p":
			cfg.Port = flags.Port
		case "origin":
			cfg.AllowedOrigin = flags.AllowedOrigin
		case "log-level":
			cfg.LogLevel = flags.LogLevel
		}
	})

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = db.TypeSQLite
	}
	switch cfg.DatabaseType {
	case db.TypeSQLite:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = DefaultSQLiteURL
		}
	case db.TypePostgres, db.TypeRedis:
		if cfg.DatabaseURL == "" {
			return Config{}, nil, ErrMissingDatabaseURL
		}
	default:
		return Config{}, nil, fmt.Errorf("%w: %q", ErrUnsupportedDBType, cfg.DatabaseType)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return Config{}, nil, fmt.Errorf("%w: log level %q", ErrInvalidConfig, cfg.LogLevel)
	}

	return cfg, fs.Args(), nil
}

// ParseFields turns name=value arguments into a field map. The value is
// everything after the first '='; later duplicates win.
func ParseFields(args []string) (map[string]string, error) {
	fields := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformedField, arg)
		}
		fields[name] = value
	}
	return fields, nil
}
