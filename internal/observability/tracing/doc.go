// Package tracing provides OpenTelemetry tracing integration.
//
// The use cases open one span per operation through GetTracer and close it
// with End, which records a returned error on the span.
//
// Example usage:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "magazine.Contributors")
//	defer func() { tracing.End(span, err) }()
package tracing
