// Package config собирает конфигурацию сервера: значения по умолчанию,
// необязательный .env файл, переменные окружения TASKMANAGER_* и флаги командной строки.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "TASKMANAGER_"

// MinSecretLen минимальная длина секрета подписи токенов (HS256)
const MinSecretLen = 32

// Config holds the server configuration
type Config struct {
	CORSOrigins               []string      `env:"CORS_ORIGINS" envSeparator:","`
	Addr                      string        `env:"ADDR" envDefault:":8080"`
	DBDriver                  string        `env:"DB_DRIVER" envDefault:"sqlite"`
	DatabaseDSN               string        `env:"DATABASE_DSN" envDefault:"taskmanager.db"`
	JWTSecret                 string        `env:"JWT_SECRET"`
	RedisURL                  string        `env:"REDIS_URL"`
	LogLevel                  string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat                 string        `env:"LOG_FORMAT" envDefault:"text"`
	OTELEndpoint              string        `env:"OTEL_ENDPOINT"`
	EnvFile                   string
	TokenTTL                  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	ShutdownTimeout           time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	RevocationCleanupInterval time.Duration `env:"REVOCATION_CLEANUP_INTERVAL" envDefault:"1h"`
	AuthRateLimit             float64       `env:"AUTH_RATE_LIMIT" envDefault:"10"`
	AuthRateBurst             int           `env:"AUTH_RATE_BURST" envDefault:"5"`
	BcryptCost                int           `env:"BCRYPT_COST" envDefault:"12"`
	RequireCurrentPassword    bool          `env:"REQUIRE_CURRENT_PASSWORD" envDefault:"true"`
	TrustProxy                bool          `env:"TRUST_PROXY" envDefault:"false"`
	ShowVersion               bool
}

// Load собирает конфигурацию из args (без имени программы).
// Приоритет: флаги > окружение > .env файл > значения по умолчанию.
func Load(args []string) (*Config, error) {
	fset := flag.NewFlagSet("server", flag.ContinueOnError)
	fset.SetOutput(io.Discard)

	var flags Config
	fset.StringVar(&flags.Addr, "a", "", "Адрес HTTP сервера (host:port)")
	fset.StringVar(&flags.DBDriver, "db-driver", "", "Драйвер БД: sqlite или postgres")
	fset.StringVar(&flags.DatabaseDSN, "d", "", "DSN базы данных")
	fset.StringVar(&flags.RedisURL, "redis", "", "URL Redis для списка отозванных токенов")
	fset.StringVar(&flags.LogLevel, "log-level", "", "Уровень логирования: debug, info, warn, error")
	fset.StringVar(&flags.EnvFile, "env-file", ".env", "Путь к .env файлу")
	fset.BoolVar(&flags.ShowVersion, "version", false, "Show version information")

	if err := fset.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if flags.EnvFile != "" {
		// godotenv не перезаписывает уже выставленные переменные
		if err := godotenv.Load(flags.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", flags.EnvFile, err)
		}
	}

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.EnvFile = flags.EnvFile
	cfg.ShowVersion = flags.ShowVersion
	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			cfg.Addr = flags.Addr
		case "db-driver":
			cfg.DBDriver = flags.DBDriver
		case "d":
			cfg.DatabaseDSN = flags.DatabaseDSN
		case "redis":
			cfg.RedisURL = flags.RedisURL
		case "log-level":
			cfg.LogLevel = flags.LogLevel
		}
	})

	if cfg.ShowVersion {
		return cfg, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет конфигурацию на допустимые значения
func (c *Config) Validate() error {
	var errs []error

	if c.Addr == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	switch c.DBDriver {
	case "sqlite", "postgres":
	default:
		errs = append(errs, fmt.Errorf("unsupported db driver %q", c.DBDriver))
	}
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("database dsn is required"))
	}
	if len(c.JWTSecret) < MinSecretLen {
		errs = append(errs, fmt.Errorf("jwt secret must be at least %d bytes", MinSecretLen))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("token ttl must be positive"))
	}
	if c.BcryptCost < 10 || c.BcryptCost > 31 {
		errs = append(errs, fmt.Errorf("bcrypt cost must be between 10 and 31, got %d", c.BcryptCost))
	}
	if c.AuthRateLimit <= 0 || c.AuthRateBurst <= 0 {
		errs = append(errs, errors.New("auth rate limit and burst must be positive"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("shutdown timeout must be positive"))
	}
	if c.RevocationCleanupInterval <= 0 {
		errs = append(errs, errors.New("revocation cleanup interval must be positive"))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unsupported log format %q", c.LogFormat))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// SlogLevel переводит LogLevel в slog.Level
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("unsupported log level %q", c.LogLevel)
	}
	return level, nil
}
