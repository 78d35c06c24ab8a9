// Package http wires the magazine store's HTTP surface: request middleware,
// metrics, health checks and the route table shared by cmd/api.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"magazine-press/internal/handler/http/auth"
	"magazine-press/internal/handler/http/requestid"
	"magazine-press/internal/handler/http/respond"
	"magazine-press/internal/observability/logging"
	"magazine-press/internal/observability/tracing"
)

// statusRecorder remembers the status code and body size written through it.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (w *statusRecorder) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.status = code
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// Unwrap supports http.ResponseController.
func (w *statusRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// Logging returns middleware that puts a request-scoped logger (tagged with the
// request id) into the context and logs each completed request.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqLogger := logger.With(slog.String("request_id", requestid.FromContext(r.Context())))
			r = r.WithContext(logging.WithLogger(r.Context(), reqLogger))

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			traceID := trace.SpanFromContext(r.Context()).SpanContext().TraceID().String()
			duration := time.Since(start)
			reqLogger.Info("request completed",
				slog.String("trace_id", traceID),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr),
				slog.Int("status", rec.status),
				slog.Int("bytes", rec.bytes),
				slog.Duration("duration", duration),
				slog.String("duration_ms", fmt.Sprintf("%.2f", duration.Seconds()*1000)),
			)
		})
	}
}

// Recover returns middleware that turns a panic into a 500 response and logs the stack.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					respond.JSON(w, http.StatusInternalServerError, respond.ErrorBody{Error: "internal server error"})
					logger.Error("panic recovered",
						slog.String("request_id", requestid.FromContext(r.Context())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.Any("panic", rec),
						slog.String("stack", string(debug.Stack())),
					)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// LimitRequestBody returns middleware that caps request bodies at maxBytes.
func LimitRequestBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// ChainOptions selects the optional parts of the middleware stack.
type ChainOptions struct {
	// Limiter caps the request rate. Nil disables rate limiting.
	Limiter *rate.Limiter

	// JWTSecret enables bearer authentication on write methods when set.
	JWTSecret []byte
}

// Chain applies the standard middleware stack around h. Metrics sits directly
// around the mux so that it can read the matched route pattern. Tracing sits
// outside Logging so the completion log line carries the trace id.
func Chain(logger *slog.Logger, opts ChainOptions, h http.Handler) http.Handler {
	h = MetricsMiddleware(h)
	h = LimitRequestBody(1 << 20)(h)
	if len(opts.JWTSecret) > 0 {
		h = auth.Middleware(opts.JWTSecret)(h)
	}
	h = RateLimit(opts.Limiter)(h)
	h = Logging(logger)(h)
	h = tracing.Middleware(h)
	h = Recover(logger)(h)
	return requestid.Middleware(h)
}
