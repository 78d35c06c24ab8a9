// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - Database operation metrics (duration by operation and outcome)
//   - Business metrics (authors, magazines and articles created)
//   - Validation failures by entity and field
//
// All metrics are automatically registered with the Prometheus default registry.
//
// Example usage:
//
//	import "magazine-press/internal/observability/metrics"
//
//	func createArticle() {
//	    start := time.Now()
//	    // ... insert ...
//	    metrics.RecordDBQuery("articles.create", "ok", time.Since(start))
//	    metrics.RecordEntityCreated(metrics.EntityArticle)
//	}
package metrics
