package http

import (
	"context"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"magazine-press/internal/handler/http/respond"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // RFC 3339
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// BreakerState reports the state of a circuit breaker.
type BreakerState interface {
	State() gobreaker.State
}

// HealthHandler reports store reachability and, when configured, the
// connection circuit breaker state.
type HealthHandler struct {
	DB      Pinger
	Breaker BreakerState // optional
	Version string
}

// ServeHTTP returns 200 when every check passes and 503 otherwise.
// An open breaker makes the service unhealthy; half-open does not.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus)
	healthy := true

	switch {
	case h.DB == nil:
		checks["database"] = CheckStatus{Status: "unhealthy", Message: "not configured"}
		healthy = false
	default:
		if err := h.DB.PingContext(ctx); err != nil {
			checks["database"] = CheckStatus{Status: "unhealthy", Message: "ping failed"}
			healthy = false
		} else {
			checks["database"] = CheckStatus{Status: "healthy"}
		}
	}

	if h.Breaker != nil {
		state := h.Breaker.State()
		check := CheckStatus{Status: "healthy", Message: state.String()}
		if state == gobreaker.StateOpen {
			check.Status = "unhealthy"
			healthy = false
		}
		checks["circuit_breaker"] = check
	}

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	}
	code := http.StatusOK
	if !healthy {
		resp.Status = "unhealthy"
		code = http.StatusServiceUnavailable
	}
	respond.JSON(w, code, resp)
}

// LiveHandler answers liveness checks without touching dependencies.
type LiveHandler struct{}

func (LiveHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"status": "alive"})
}
