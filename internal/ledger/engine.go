// Package ledger implements the mutation rules that keep wallet balances,
// transaction history and saving-goal progress consistent.
//
// Every operation reads a snapshot, validates all of its arguments against
// it, and only then builds a new snapshot. The input snapshot is never
// modified, so a rejected operation leaves the caller's state untouched and
// a successful one can be published atomically by swapping snapshots.
package ledger

import (
	"time"

	"personalfinance/internal/uuid"
)

// Engine applies ledger operations. The zero value is not usable; use New.
type Engine struct {
	now   func() time.Time
	newID func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock used to timestamp transactions.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator sets the function used to mint entity ids. Ids must
// increase in creation order.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// New creates an Engine. By default it stamps transactions with time.Now and
// mints monotonic UUIDv7 ids from the same clock.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.newID == nil {
		e.newID = uuid.NewGenerator(e.now).Next
	}
	return e
}
