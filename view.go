package litekite

import (
	"context"
	"sync"
)

// ViewState is the lifecycle of a page's top-level fetch.
type ViewState int

const (
	Loading ViewState = iota
	Ready
	Failed
)

func (s ViewState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// View holds one page's working data: a snapshot fetched on display and
// re-fetched after every mutating action. A successful load fully replaces
// the previous value; there is no partial merge and no cross-view cache.
type View[T any] struct {
	fetch func(context.Context) (T, error)

	mu    sync.Mutex
	state ViewState
	data  T
	err   error
}

// NewView creates a view in the Loading state.
func NewView[T any](fetch func(context.Context) (T, error)) *View[T] {
	return &View[T]{fetch: fetch, state: Loading}
}

// Load performs the top-level fetch, moving the view to Ready or Failed.
func (v *View[T]) Load(ctx context.Context) error {
	v.mu.Lock()
	v.state = Loading
	v.mu.Unlock()

	data, err := v.fetch(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if err != nil {
		var zero T
		v.state, v.data, v.err = Failed, zero, err
		return err
	}
	v.state, v.data, v.err = Ready, data, nil
	return nil
}

// Refresh re-issues the top-level fetch. Pages call it after any mutating
// action succeeds, instead of patching the held snapshot.
func (v *View[T]) Refresh(ctx context.Context) error { return v.Load(ctx) }

// State returns the current lifecycle state.
func (v *View[T]) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Data returns the held snapshot and whether the view is Ready.
func (v *View[T]) Data() (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.data, v.state == Ready
}

// Err returns the failure of the last load, if any.
func (v *View[T]) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// ActionState is the lifecycle of one mutating action (a buy or sell on one
// row). Each row/kind pair owns its own state; concurrent actions on
// different rows never share a flag.
type ActionState int

const (
	Idle ActionState = iota
	InFlight
	Succeeded
	ActionFailed
)

func (s ActionState) String() string {
	switch s {
	case Idle:
		return "idle"
	case InFlight:
		return "in-flight"
	case Succeeded:
		return "succeeded"
	case ActionFailed:
		return "failed"
	}
	return "unknown"
}

// ActionTracker maps an action key (ticker plus action kind) to its state.
type ActionTracker struct {
	mu      sync.Mutex
	actions map[string]ActionState
}

// NewActionTracker returns an empty tracker.
func NewActionTracker() *ActionTracker {
	return &ActionTracker{actions: make(map[string]ActionState)}
}

// Key builds the tracker key for a ticker and an action kind ("buy", "sell").
func Key(ticker, kind string) string { return ticker + "/" + kind }

// Begin marks the action in flight. It reports false when the same action is
// already in flight, so a widget cannot double-submit its own row.
func (t *ActionTracker) Begin(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.actions[key] == InFlight {
		return false
	}
	t.actions[key] = InFlight
	return true
}

// Done records the action's outcome.
func (t *ActionTracker) Done(key string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err != nil {
		t.actions[key] = ActionFailed
		return
	}
	t.actions[key] = Succeeded
}

// State returns the current state for the key, Idle when never seen.
func (t *ActionTracker) State(key string) ActionState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.actions[key]
}

// InFlightCount returns how many actions are currently in flight.
func (t *ActionTracker) InFlightCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, s := range t.actions {
		if s == InFlight {
			n++
		}
	}
	return n
}
