package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for policyradar-engine.
// Configuration can come from YAML file (config.yaml) or environment variables.
// Environment variables always override YAML values for fields that support both.
// Secrets (passwords) must only come from environment variables.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"0.0.0.0"`
	Port     string `yaml:"port" env:"PORT" env-default:"8000"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// Database configuration (PostgreSQL)
	Database DatabaseConfig `yaml:"database"`

	// Redis cache configuration
	Redis RedisConfig `yaml:"redis"`

	// Pagination defaults applied by the API layer
	Pagination PaginationConfig `yaml:"pagination"`

	// Reference data: supported jurisdictions and industry tags
	Reference ReferenceConfig `yaml:"reference"`

	// Synthetic data generation settings
	Synthetic SyntheticConfig `yaml:"synthetic"`

	// CacheTTLSeconds is how long computed analytics summaries stay cached.
	CacheTTLSeconds int `yaml:"cache_ttl_seconds" env:"CACHE_TTL_SECONDS" env-default:"3600"`
}

// DatabaseConfig holds PostgreSQL database configuration.
type DatabaseConfig struct {
	Host           string `yaml:"host" env:"PGHOST" env-default:"localhost"`
	Port           int    `yaml:"port" env:"PGPORT" env-default:"5432"`
	User           string `yaml:"user" env:"PGUSER" env-default:"policyradar"`
	Password       string `yaml:"-" env:"PGPASSWORD"` // Secret - not in YAML
	Database       string `yaml:"database" env:"PGDATABASE" env-default:"policyradar"`
	MaxConnections int32  `yaml:"max_connections" env:"PGMAX_CONNECTIONS" env-default:"25"`
	SSLMode        string `yaml:"ssl_mode" env:"PGSSLMODE" env-default:"disable"`
	MigrationsPath string `yaml:"migrations_path" env:"PGMIGRATIONS_PATH" env-default:"migrations"`
}

// RedisConfig holds Redis cache configuration.
// An empty host disables the cache client entirely.
type RedisConfig struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"-" env:"REDIS_PASSWORD"` // Secret - not in YAML
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// PaginationConfig holds the pagination bounds enforced at the API boundary.
type PaginationConfig struct {
	DefaultLimit int `yaml:"default_limit" env:"PAGINATION_DEFAULT_LIMIT" env-default:"100"`
	MaxLimit     int `yaml:"max_limit" env:"PAGINATION_MAX_LIMIT" env-default:"1000"`
}

// ReferenceConfig holds list-valued reference data loaded once at startup.
type ReferenceConfig struct {
	Jurisdictions []string `yaml:"jurisdictions" env:"JURISDICTIONS" env-separator:","`
	Industries    []string `yaml:"industries" env:"INDUSTRIES" env-separator:","`
}

// SyntheticConfig holds settings for the offline data generator.
type SyntheticConfig struct {
	DataDir string `yaml:"data_dir" env:"DATA_DIR" env-default:"./data"`
}

// DefaultJurisdictions are used when no jurisdiction list is configured.
var DefaultJurisdictions = []string{
	"US", "EU", "UK", "JP", "CA", "AU", "CN", "IN", "BR", "MX",
	"DE", "FR", "IT", "ES", "NL", "SE", "CH", "NO", "DK", "FI",
	"SG", "HK", "KR", "TW", "TH", "MY", "ID", "PH", "VN",
}

// DefaultIndustries are used when no industry list is configured.
var DefaultIndustries = []string{
	"financial_services", "technology", "energy", "healthcare",
	"manufacturing", "retail", "telecommunications", "transportation",
	"real_estate", "utilities", "materials", "consumer_goods",
	"industrials", "media", "aerospace", "defense", "pharmaceuticals",
	"biotechnology", "automotive", "chemicals",
}

// Load reads configuration from config.yaml with environment variable overrides.
// The version parameter is injected at build time and set on the returned Config.
// A missing config.yaml is not an error; environment variables and defaults apply.
func Load(version string) (*Config, error) {
	cfg := &Config{
		Version: version,
	}

	if _, err := os.Stat("config.yaml"); err == nil {
		if err := cleanenv.ReadConfig("config.yaml", cfg); err != nil {
			return nil, fmt.Errorf("failed to read config.yaml: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills reference lists that cleanenv cannot default.
func (c *Config) applyDefaults() {
	if len(c.Reference.Jurisdictions) == 0 {
		c.Reference.Jurisdictions = DefaultJurisdictions
	}
	if len(c.Reference.Industries) == 0 {
		c.Reference.Industries = DefaultIndustries
	}
}

func (c *Config) validate() error {
	if c.Pagination.DefaultLimit < 1 || c.Pagination.DefaultLimit > c.Pagination.MaxLimit {
		return fmt.Errorf("default_limit %d must be within 1..%d", c.Pagination.DefaultLimit, c.Pagination.MaxLimit)
	}
	if c.CacheTTLSeconds < 0 {
		return fmt.Errorf("cache_ttl_seconds must not be negative")
	}
	return nil
}

// ConnectionString returns a PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// SupportsJurisdiction reports whether code is in the configured jurisdiction list.
func (c *Config) SupportsJurisdiction(code string) bool {
	for _, j := range c.Reference.Jurisdictions {
		if j == code {
			return true
		}
	}
	return false
}
