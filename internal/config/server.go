package config

import (
	"fmt"
	"time"
)

const minJWTSecretLength = 32

// ServerConfig holds settings for the HTTP API.
type ServerConfig struct {
	// Addr is the listen address. Default: ":8080"
	Addr string

	// ShutdownTimeout bounds graceful shutdown. Default: 5s
	ShutdownTimeout time.Duration

	// Version is reported by /health. Default: "dev"
	Version string

	// EnsureSchema creates missing tables at startup. Default: true
	EnsureSchema bool

	// TracingEndpoint is the OTLP/HTTP traces URL. Empty disables span export.
	TracingEndpoint string

	// JWTSecret enables bearer authentication on write requests when set.
	JWTSecret string

	RateLimit RateLimitConfig
}

// RateLimitConfig configures the process-wide request token bucket.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate. Zero disables limiting. Default: 0
	RequestsPerSecond float64

	// Burst is the bucket size. Default: 20
	Burst int
}

// Enabled reports whether requests should be rate limited.
func (c RateLimitConfig) Enabled() bool {
	return c.RequestsPerSecond > 0
}

// LoadServerConfig loads HTTP server configuration from environment variables.
func LoadServerConfig() (*ServerConfig, error) {
	cfg := &ServerConfig{
		Addr:            GetEnvString("HTTP_ADDR", ":8080"),
		ShutdownTimeout: GetEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 5*time.Second),
		Version:         GetEnvString("VERSION", "dev"),
		EnsureSchema:    GetEnvBool("DB_ENSURE_SCHEMA", true),
		JWTSecret:       GetEnvString("JWT_SECRET", ""),
		TracingEndpoint: GetEnvString("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", ""),
		RateLimit: RateLimitConfig{
			RequestsPerSecond: GetEnvFloat("RATE_LIMIT_RPS", 0),
			Burst:             GetEnvInt("RATE_LIMIT_BURST", 20),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks configuration correctness.
func (c *ServerConfig) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("HTTP_ADDR cannot be empty")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	if c.JWTSecret != "" && len(c.JWTSecret) < minJWTSecretLength {
		return fmt.Errorf("JWT_SECRET must be at least %d bytes", minJWTSecretLength)
	}
	if c.RateLimit.RequestsPerSecond < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS cannot be negative")
	}
	if c.RateLimit.Enabled() && c.RateLimit.Burst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1 when rate limiting is enabled")
	}
	return nil
}
