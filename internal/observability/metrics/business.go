package metrics

import (
	"errors"
	"time"

	"magazine-press/internal/domain/entity"
)

// RecordDBQuery records the duration of a database operation.
// Status should be either "ok" or "error".
func RecordDBQuery(operation, status string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// RecordEntityCreated records one inserted row for the entity.
func RecordEntityCreated(entityName string) {
	EntitiesCreatedTotal.WithLabelValues(entityName).Inc()
}

// RecordValidationFailure increments the failure counter when err is a
// validation error. Other errors are ignored.
func RecordValidationFailure(entityName string, err error) {
	var ve *entity.ValidationError
	if !errors.As(err, &ve) {
		return
	}
	ValidationFailuresTotal.WithLabelValues(entityName, ve.Field).Inc()
}
