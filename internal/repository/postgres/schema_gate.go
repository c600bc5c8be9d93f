package postgres

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"fooddonation/internal/domain"
)

// SchemaGate applies migrations before the first query that needs them. A
// failed attempt is retried on the next call; once applied it is never rerun.
// A nil *SchemaGate is always ready.
type SchemaGate struct {
	mu      sync.Mutex
	applied atomic.Bool
	apply   func() error
}

// NewSchemaGate returns a gate that runs apply until it succeeds once.
func NewSchemaGate(apply func() error) *SchemaGate {
	return &SchemaGate{apply: apply}
}

// Ready applies pending migrations if that has not succeeded yet. Failures are
// reported as domain.ErrStoreUnavailable.
func (g *SchemaGate) Ready() error {
	if g == nil || g.applied.Load() {
		return nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.applied.Load() {
		return nil
	}
	if err := g.apply(); err != nil {
		if errors.Is(err, domain.ErrStoreUnavailable) {
			return err
		}
		return fmt.Errorf("%w: schema not ready: %w", domain.ErrStoreUnavailable, err)
	}
	g.applied.Store(true)
	return nil
}

// Applied reports whether migrations have run through this gate.
func (g *SchemaGate) Applied() bool {
	return g == nil || g.applied.Load()
}
