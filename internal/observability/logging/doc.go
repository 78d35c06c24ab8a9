// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the application.
//
// Key features:
//   - JSON and text output formats
//   - Run ID tagging for CLI invocations
//   - Context-aware logging
//   - Configurable log levels
//
// Example usage:
//
//	import "magazine-press/internal/observability/logging"
//
//	func main() {
//	    logger := logging.NewLogger()
//	    ctx := logging.WithLogger(context.Background(), logger)
//	    logging.FromContext(ctx).Info("schema ready")
//	}
package logging
