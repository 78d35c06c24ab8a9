package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hhttp "magazine-press/internal/handler/http"
)

/* ───────── スタブ実装 ───────── */

type stubPinger struct{ err error }

func (s stubPinger) PingContext(context.Context) error { return s.err }

type stubBreaker struct{ state gobreaker.State }

func (s stubBreaker) State() gobreaker.State { return s.state }

/* ───────── テストケース ───────── */

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		handler    *hhttp.HealthHandler
		wantCode   int
		wantStatus string
		wantChecks map[string]string
	}{
		{
			name:       "healthy",
			handler:    &hhttp.HealthHandler{DB: stubPinger{}, Version: "1.0.0"},
			wantCode:   http.StatusOK,
			wantStatus: "healthy",
			wantChecks: map[string]string{"database": "healthy"},
		},
		{
			name:       "ping fails",
			handler:    &hhttp.HealthHandler{DB: stubPinger{err: errors.New("connection refused")}},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "unhealthy",
			wantChecks: map[string]string{"database": "unhealthy"},
		},
		{
			name:       "no database",
			handler:    &hhttp.HealthHandler{},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "unhealthy",
			wantChecks: map[string]string{"database": "unhealthy"},
		},
		{
			name:       "breaker open",
			handler:    &hhttp.HealthHandler{DB: stubPinger{}, Breaker: stubBreaker{gobreaker.StateOpen}},
			wantCode:   http.StatusServiceUnavailable,
			wantStatus: "unhealthy",
			wantChecks: map[string]string{"database": "healthy", "circuit_breaker": "unhealthy"},
		},
		{
			name:       "breaker half-open",
			handler:    &hhttp.HealthHandler{DB: stubPinger{}, Breaker: stubBreaker{gobreaker.StateHalfOpen}},
			wantCode:   http.StatusOK,
			wantStatus: "healthy",
			wantChecks: map[string]string{"database": "healthy", "circuit_breaker": "healthy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			var resp hhttp.HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			require.Len(t, resp.Checks, len(tt.wantChecks))
			for name, status := range tt.wantChecks {
				assert.Equal(t, status, resp.Checks[name].Status, name)
			}
		})
	}
}

func TestLiveHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	hhttp.LiveHandler{}.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
