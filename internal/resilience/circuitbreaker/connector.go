package circuitbreaker

import (
	"context"

	"magazine-press/internal/infra/db"
)

// Connector decorates a db.Connector so that connection acquisition fails fast
// while the store is unreachable. Statements run on an acquired connection are
// not counted: a constraint violation says nothing about store health.
type Connector struct {
	cb   *CircuitBreaker
	next db.Connector
}

// NewConnector wraps next with a breaker built from cfg.
func NewConnector(next db.Connector, cfg Config) *Connector {
	return &Connector{cb: New(cfg), next: next}
}

// Conn acquires a connection from the wrapped connector through the breaker.
// While the circuit is open it returns gobreaker.ErrOpenState without calling next.
func (c *Connector) Conn(ctx context.Context) (db.Conn, error) {
	result, err := c.cb.Execute(func() (interface{}, error) {
		return c.next.Conn(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.(db.Conn), nil
}

// Breaker exposes the underlying breaker for state inspection.
func (c *Connector) Breaker() *CircuitBreaker {
	return c.cb
}
