// Package observability groups the logging, metrics and tracing helpers
// shared by the persistence adapters, the use cases and the CLI.
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus metrics registry and recorders
//   - tracing: OpenTelemetry tracer access and span helpers
package observability
