package http

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/time/rate"

	"magazine-press/internal/handler/http/respond"
)

var httpRateLimitedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "http_rate_limited_total",
		Help: "Total number of requests rejected by the rate limiter",
	},
)

// NewRateLimiter returns a token bucket that allows burst requests at once and
// refills at requestsPerSecond. It returns nil when requestsPerSecond is not
// positive, which RateLimit treats as unlimited.
func NewRateLimiter(requestsPerSecond float64, burst int) *rate.Limiter {
	if requestsPerSecond <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(requestsPerSecond), burst)
}

// RateLimit returns middleware that answers 429 once the shared bucket is empty.
// Requests are rejected rather than queued.
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				httpRateLimitedTotal.Inc()
				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(limiter)))
				respond.JSON(w, http.StatusTooManyRequests, respond.ErrorBody{Error: "rate limit exceeded"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// retryAfterSeconds is the time for one token to refill, rounded up to a whole second.
func retryAfterSeconds(limiter *rate.Limiter) int {
	perSecond := float64(limiter.Limit())
	if perSecond >= 1 {
		return 1
	}
	return int(1/perSecond + 0.999)
}
