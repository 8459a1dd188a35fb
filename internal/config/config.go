// Package config loads the depot's settings from defaults, an optional
// .env file and the process environment. Command-line flags are applied on
// top by the caller.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// Backends.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// Config holds all runtime settings.
type Config struct {
	Backend       string
	DBPath        string
	PostgresDSN   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	Addr     string
	LogPath  string
	LogLevel string // debug, info, warn or error

	// JWTSecret signs session tokens. Empty means load or generate one in the store.
	JWTSecret string

	ReseedCorrupt bool
	HashPasswords bool

	// Locale formats numbers in rendered reports.
	Locale string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Backend:       BackendSQLite,
		DBPath:        "juicedepot.sqlite3",
		RedisPrefix:   "juicedepot:",
		Addr:          ":8080",
		LogLevel:      "info",
		ReseedCorrupt: true,
		Locale:        "en",
	}
}

// Load returns the defaults overridden by envFile (if it exists) and the
// environment. An empty envFile means ".env".
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
	}

	cfg := Default()
	cfg.Backend = envString("JUICEDEPOT_BACKEND", cfg.Backend)
	cfg.DBPath = envString("JUICEDEPOT_DB", cfg.DBPath)
	cfg.PostgresDSN = envString("JUICEDEPOT_POSTGRES_DSN", cfg.PostgresDSN)
	cfg.RedisAddr = envString("JUICEDEPOT_REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = envString("JUICEDEPOT_REDIS_PASSWORD", cfg.RedisPassword)
	cfg.RedisPrefix = envString("JUICEDEPOT_REDIS_PREFIX", cfg.RedisPrefix)
	cfg.Addr = envString("JUICEDEPOT_ADDR", cfg.Addr)
	cfg.LogPath = envString("JUICEDEPOT_LOG", cfg.LogPath)
	cfg.LogLevel = envString("JUICEDEPOT_LOG_LEVEL", cfg.LogLevel)
	cfg.JWTSecret = envString("JUICEDEPOT_JWT_SECRET", cfg.JWTSecret)
	cfg.Locale = envString("JUICEDEPOT_LOCALE", cfg.Locale)

	var err error
	if cfg.RedisDB, err = envInt("JUICEDEPOT_REDIS_DB", cfg.RedisDB); err != nil {
		return Config{}, err
	}
	if cfg.ReseedCorrupt, err = envBool("JUICEDEPOT_RESEED_CORRUPT", cfg.ReseedCorrupt); err != nil {
		return Config{}, err
	}
	if cfg.HashPasswords, err = envBool("JUICEDEPOT_HASH_PASSWORDS", cfg.HashPasswords); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that the settings needed by the chosen backend are present.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendSQLite:
		if c.DBPath == "" {
			return errors.New("sqlite backend requires a database path")
		}
	case BackendPostgres:
		if c.PostgresDSN == "" {
			return errors.New("postgres backend requires a DSN")
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return errors.New("redis backend requires an address")
		}
		if c.RedisDB < 0 {
			return errors.New("redis database must not be negative")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}

	if _, err := c.Language(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses the configured log level.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// Language parses the configured locale.
func (c Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	return tag, nil
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, v)
	}
	return n, nil
}

func envBool(key string, fallback bool) (bool, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", key, v)
	}
	return b, nil
}
