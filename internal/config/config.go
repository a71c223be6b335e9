package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTesting     = "testing"
)

// Store drivers selectable with STORE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

type Config struct {
	Port        string `conf:"default:3000,env:PORT"`
	Environment string `conf:"default:development,enum:development|testing|production,env:ENVIRONMENT"`
	LogLevel    string `conf:"default:info,env:LOG_LEVEL"`
	LogFile     string `conf:"env:LOG_FILE"`

	// Product store
	StoreDriver string `conf:"default:sqlite,enum:sqlite|postgres|redis|memory,env:STORE_DRIVER"`
	StoreKey    string `conf:"default:gestor_estoque_data,env:STORE_KEY"`
	SQLiteDSN   string `conf:"default:estoque.db,env:SQLITE_DSN"`
	DatabaseURL string `conf:"env:DATABASE_URL,noprint"`
	DBHost      string `conf:"env:DB_HOST"`
	DBPort      string `conf:"default:5432,env:DB_PORT"`
	DBUser      string `conf:"env:DB_USER"`
	DBPassword  string `conf:"env:DB_PASSWORD,noprint"`
	DBName      string `conf:"env:DB_NAME"`
	RedisURL    string `conf:"default:redis://localhost:6379,env:REDIS_URL"`

	// Listing and export
	Locale         string `conf:"default:pt-BR,env:LOCALE"`
	ExportDir      string `conf:"default:./exports,env:EXPORT_DIR"`
	ExportFormat   string `conf:"default:csv,enum:csv|xlsx,env:EXPORT_FORMAT"`
	ExportSchedule string `conf:"env:EXPORT_SCHEDULE"`
}

// Load reads .env (if present), the environment and command-line flags
// (--export-dir, --store-driver, ...).
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that conf tags cannot express.
func Validate(cfg *Config) error {
	var errs []string

	if _, err := language.Parse(cfg.Locale); err != nil {
		errs = append(errs, fmt.Sprintf("LOCALE %q is not a valid language tag", cfg.Locale))
	}
	if cfg.StoreDriver == DriverPostgres && cfg.DatabaseURL == "" && cfg.DBHost == "" {
		errs = append(errs, "STORE_DRIVER=postgres needs DATABASE_URL or DB_HOST")
	}
	if cfg.Environment == EnvProduction && cfg.StoreDriver == DriverMemory {
		errs = append(errs, "STORE_DRIVER=memory is not durable and cannot be used in production")
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.New("config validation failed: " + strings.Join(errs, "; "))
}

// PostgresDSN prefers DATABASE_URL and falls back to the DB_* parts.
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

// Language returns the collation locale, falling back to Brazilian Portuguese.
func (c *Config) Language() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.BrazilianPortuguese
	}
	return tag
}
