package viewstate

import (
	"context"

	"github.com/rs/zerolog"
)

// Fetcher produces the data a controller presents.
type Fetcher[T any] func(ctx context.Context) (T, error)

// Controller drives a Store through Loading, Ready and Failed for one
// screen. Every fetch lands in Ready or Failed; Failed always carries a
// retry bound to Refresh.
//
// Overlapping Refresh calls are not coalesced: both fetches run and the one
// that resolves last decides the final state.
type Controller[T any] struct {
	name   string
	fetch  Fetcher[T]
	store  Store[T]
	logger zerolog.Logger
}

// ControllerOption configures a Controller.
type ControllerOption func(*controllerConfig)

type controllerConfig struct {
	logger zerolog.Logger
}

// WithLogger logs every transition at debug level.
func WithLogger(l zerolog.Logger) ControllerOption {
	return func(c *controllerConfig) { c.logger = l }
}

// NewController returns a controller in Loading. name tags log lines.
func NewController[T any](name string, fetch Fetcher[T], opts ...ControllerOption) *Controller[T] {
	cfg := controllerConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Controller[T]{
		name:   name,
		fetch:  fetch,
		logger: cfg.logger.With().Str("controller", name).Logger(),
	}
}

// Name identifies the controller in logs.
func (c *Controller[T]) Name() string { return c.name }

// Load fetches once and transitions to Ready or Failed. It does not guard
// against being called while another fetch is in flight.
func (c *Controller[T]) Load(ctx context.Context) {
	data, err := c.fetch(ctx)
	if err != nil {
		c.logger.Debug().Err(err).Msg("fetch failed")
		c.set(FailedState[T](Present(err, c.Refresh)))
		return
	}
	c.set(ReadyState(data))
}

// Refresh moves to Loading before the fetch starts, then behaves like Load.
func (c *Controller[T]) Refresh(ctx context.Context) {
	c.set(LoadingState[T]())
	c.Load(ctx)
}

// State returns the current state.
func (c *Controller[T]) State() State[T] {
	return c.store.Snapshot().State
}

// Snapshot returns the current state with its bookkeeping.
func (c *Controller[T]) Snapshot() Snapshot[T] {
	return c.store.Snapshot()
}

// Subscribe observes every transition. See Store.Subscribe.
func (c *Controller[T]) Subscribe(fn func(Snapshot[T])) (cancel func()) {
	return c.store.Subscribe(fn)
}

func (c *Controller[T]) set(state State[T]) {
	c.logger.Debug().Stringer("phase", state.Phase).Msg("state transition")
	c.store.Set(state)
}
