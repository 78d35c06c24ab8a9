// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Entity label values.
const (
	EntityAuthor   = "author"
	EntityMagazine = "magazine"
	EntityArticle  = "article"
)

// Database metrics track database performance
var (
	// DBQueryDuration measures the time a repository operation holds its connection
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation", "status"},
	)
)

// Business metrics track application-specific operations
var (
	// EntitiesCreatedTotal counts rows inserted per entity
	EntitiesCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "entities_created_total",
			Help: "Total number of entities inserted into the store",
		},
		[]string{"entity"},
	)

	// ValidationFailuresTotal counts rejected inputs per entity and field
	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validation_failures_total",
			Help: "Total number of inputs rejected by entity validation",
		},
		[]string{"entity", "field"},
	)
)
