// Package store provides the state engine at the core of the storefront: an
// explicitly constructed container holding the cart and wishlist state,
// mutated only through dispatched actions reduced by pure functions.
package store

import (
	"context"
	"sync"

	"github.com/imdova/medicova-store-sub004/internal/domain"
)

// Listener observes committed transitions. It runs synchronously inside the
// dispatch, after the new state is committed, and must not dispatch further
// actions.
type Listener func(action domain.Action, state domain.State)

// Dispatcher applies an action and returns the resulting state.
type Dispatcher func(ctx context.Context, action domain.Action) domain.State

// Middleware wraps the dispatch pipeline. The first middleware passed to New
// is outermost; the innermost dispatcher commits the reduced state.
type Middleware func(next Dispatcher) Dispatcher

// Engine is a state container with a defined lifecycle: construct it, pass
// the handle to consumers, dispatch actions through it. Dispatch is
// serialized internally so every transition runs to completion before the
// next begins.
type Engine struct {
	mu        sync.Mutex
	state     domain.State
	dispatch  Dispatcher
	listeners map[int]Listener
	nextSub   int
}

// New creates an engine holding the given initial state with the middleware
// chain installed.
func New(initial domain.State, mws ...Middleware) *Engine {
	e := &Engine{
		state:     initial,
		listeners: make(map[int]Listener),
	}

	d := Dispatcher(e.commit)
	for i := len(mws) - 1; i >= 0; i-- {
		d = mws[i](d)
	}
	e.dispatch = d
	return e
}

// Dispatch runs the action through the middleware chain and returns the
// committed state. Failed persistence or publishing downstream never rolls
// the transition back; a dispatched action either commits or is a no-op.
func (e *Engine) Dispatch(ctx context.Context, a domain.Action) domain.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	dispatchesTotal.WithLabelValues(a.Name()).Inc()
	return e.dispatch(ctx, a)
}

// Subscribe registers a listener and returns its unsubscribe function.
func (e *Engine) Subscribe(l Listener) (unsubscribe func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.nextSub
	e.nextSub++
	e.listeners[id] = l

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.listeners, id)
	}
}

// State returns the current root state. Reducers copy-on-write, so the
// returned value is stable; callers must treat it as read-only.
func (e *Engine) State() domain.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// commit is the innermost dispatcher: it reduces, stores the new state, and
// notifies subscribers while the dispatch lock is still held.
func (e *Engine) commit(_ context.Context, a domain.Action) domain.State {
	e.state = domain.Reduce(e.state, a)
	next := e.state
	for _, l := range e.listeners {
		l(a, next)
	}
	return next
}
