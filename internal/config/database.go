// Package config loads runtime configuration from the environment and an
// optional YAML file.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Supported values for DatabaseConfig.Driver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DefaultSQLiteDSN is used when DB_DRIVER is sqlite and DATABASE_URL is unset.
const DefaultSQLiteDSN = "magazine.db"

// DatabaseConfig holds the connection settings for the magazine store.
type DatabaseConfig struct {
	// Driver is "sqlite" (default) or "postgres".
	Driver string `yaml:"driver"`

	// DSN is the data source name. Required for postgres.
	// For sqlite it is a file path and defaults to DefaultSQLiteDSN.
	DSN string `yaml:"dsn"`

	// CircuitBreaker guards connection acquisition when Enabled.
	CircuitBreaker CircuitBreakerConfig `yaml:"circuit_breaker"`

	// LogLevel is one of debug, info, warn, error. Default: info
	LogLevel string `yaml:"log_level"`
}

// CircuitBreakerConfig for database connection acquisition.
type CircuitBreakerConfig struct {
	Enabled bool `yaml:"enabled"`

	// Timeout before transitioning from open to half-open. Default: 30s
	Timeout time.Duration `yaml:"timeout"`
}

// LoadDatabaseConfig loads database configuration from environment variables,
// applies defaults and validates the result.
func LoadDatabaseConfig() (*DatabaseConfig, error) {
	cfg := DatabaseConfigFromEnv()
	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}
	return cfg, nil
}

// DatabaseConfigFromEnv reads environment variables without applying defaults
// or validating, so later layers (file, flags) can still override them.
func DatabaseConfigFromEnv() *DatabaseConfig {
	return &DatabaseConfig{
		Driver: GetEnvString("DB_DRIVER", DriverSQLite),
		DSN:    GetEnvString("DATABASE_URL", ""),
		CircuitBreaker: CircuitBreakerConfig{
			Enabled: GetEnvBool("DB_CIRCUIT_BREAKER_ENABLED", false),
			Timeout: GetEnvDuration("DB_CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		LogLevel: GetEnvString("LOG_LEVEL", "info"),
	}
}

// LoadFile overlays the YAML file at path onto cfg. Keys absent from the file
// keep their current value. Call Finalize once every layer is applied.
func (c *DatabaseConfig) LoadFile(path string) error {
	// #nosec G304 -- path is provided by the operator on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var file struct {
		Database *DatabaseConfig `yaml:"database"`
	}
	file.Database = c
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	return nil
}

// Finalize normalizes the driver name, fills defaults and validates.
func (c *DatabaseConfig) Finalize() error {
	c.Driver = strings.ToLower(strings.TrimSpace(c.Driver))
	c.applyDefaults()
	return c.Validate()
}

func (c *DatabaseConfig) applyDefaults() {
	if c.Driver == DriverSQLite && c.DSN == "" {
		c.DSN = DefaultSQLiteDSN
	}
	if c.CircuitBreaker.Timeout <= 0 {
		c.CircuitBreaker.Timeout = 30 * time.Second
	}
}

// Validate checks configuration correctness.
func (c *DatabaseConfig) Validate() error {
	switch c.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("DB_DRIVER must be %s or %s, got %q", DriverSQLite, DriverPostgres, c.Driver)
	}

	if strings.TrimSpace(c.DSN) == "" {
		return fmt.Errorf("DATABASE_URL is required for driver %s", c.Driver)
	}

	if c.CircuitBreaker.Timeout <= 0 {
		return fmt.Errorf("DB_CIRCUIT_BREAKER_TIMEOUT must be positive")
	}

	return nil
}
