package circuitbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
)

func testConfig() Config {
	return Config{
		Name:             "test-circuit",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          50 * time.Millisecond,
		FailureThreshold: 0.6,
		MinRequests:      3,
	}
}

func TestNew(t *testing.T) {
	cb := New(testConfig())

	if cb.Name() != "test-circuit" {
		t.Errorf("expected name='test-circuit', got %q", cb.Name())
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("expected initial state=Closed, got %v", cb.State())
	}
}

func TestDBConfig(t *testing.T) {
	cfg := DBConfig(45 * time.Second)

	if cfg.Name != "database" {
		t.Errorf("expected name='database', got %q", cfg.Name)
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("expected timeout=45s, got %v", cfg.Timeout)
	}
	if cfg.FailureThreshold != 1.0 || cfg.MinRequests != 5 {
		t.Errorf("unexpected trip settings: %+v", cfg)
	}
}

func TestCircuitBreaker_TripsAndRecovers(t *testing.T) {
	cb := New(testConfig())
	boom := errors.New("boom")

	// below MinRequests the circuit stays closed
	for i := 0; i < 2; i++ {
		_, _ = cb.Execute(func() (interface{}, error) { return nil, boom })
	}
	if cb.IsOpen() {
		t.Fatal("circuit opened before MinRequests")
	}

	_, _ = cb.Execute(func() (interface{}, error) { return nil, boom })
	if !cb.IsOpen() {
		t.Fatalf("expected Open after 3 failures, got %v", cb.State())
	}

	called := false
	_, err := cb.Execute(func() (interface{}, error) {
		called = true
		return nil, nil
	})
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected ErrOpenState, got %v", err)
	}
	if called {
		t.Error("function must not run while open")
	}

	time.Sleep(80 * time.Millisecond)
	if cb.State() != gobreaker.StateHalfOpen {
		t.Fatalf("expected HalfOpen after timeout, got %v", cb.State())
	}

	if _, err := cb.Execute(func() (interface{}, error) { return "ok", nil }); err != nil {
		t.Fatalf("half-open trial request failed: %v", err)
	}
	if cb.State() != gobreaker.StateClosed {
		t.Errorf("expected Closed after a successful trial request, got %v", cb.State())
	}
}
