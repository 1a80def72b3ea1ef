// Package engine mounts accommodation appliers on a settings store. Each
// applier is bound to its slice of the tree: whenever the slice changes the
// previous cleanup runs and the applier is applied with the new value.
package engine

import (
	"context"
	"errors"
	"sync"

	"github.com/alexisbeaulieu97/accommodate/internal/accommodation"
	"github.com/alexisbeaulieu97/accommodate/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/accommodate/internal/ports"
	"github.com/alexisbeaulieu97/accommodate/internal/settings"
)

// ErrMounted is returned by Register once the engine is mounted.
var ErrMounted = errors.New("engine already mounted")

// ErrDuplicate is returned when two appliers share a name.
var ErrDuplicate = errors.New("accommodation already registered")

// Engine owns the apply/cleanup lifecycle of every registered applier against
// one document.
type Engine struct {
	store *settings.Store
	doc   ports.Document

	ctx       context.Context
	log       ports.Logger
	metrics   ports.MetricsRecorder
	publisher ports.EventPublisher

	mu       sync.Mutex
	bindings []*binding
	mounted  bool
}

type binding struct {
	applier     accommodation.Applier
	cleanup     accommodation.Cleanup
	unsubscribe func()
	runs        int
	value       string
}

// Status describes one binding for diagnostics.
type Status struct {
	Accommodation string
	Value         string
	Runs          int
}

// New creates an engine with no appliers registered.
func New(store *settings.Store, doc ports.Document, opts ...Option) *Engine {
	e := &Engine{store: store, doc: doc}
	defaults(e)
	for _, opt := range opts {
		opt(e)
	}
	if id := ports.GetCorrelationID(e.ctx); id != "" {
		e.log = e.log.With("correlation_id", id)
	}
	e.log = e.log.With("component", "engine")
	return e
}

// Default creates an engine with every accommodation registered.
func Default(store *settings.Store, doc ports.Document, accOpts accommodation.Options, opts ...Option) *Engine {
	e := New(store, doc, opts...)
	for _, a := range accommodation.All(accOpts) {
		// Names in All are unique and the engine is fresh.
		_ = e.Register(a)
	}
	return e
}

// Register adds an applier. Registration is closed once the engine is mounted.
func (e *Engine) Register(a accommodation.Applier) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.mounted {
		return ErrMounted
	}
	for _, b := range e.bindings {
		if b.applier.Name() == a.Name() {
			return ErrDuplicate
		}
	}
	e.bindings = append(e.bindings, &binding{applier: a})
	return nil
}

// Mount subscribes every applier to the store and applies the current tree
// once. Mounting an already mounted engine does nothing.
func (e *Engine) Mount() {
	e.mu.Lock()
	if e.mounted {
		e.mu.Unlock()
		return
	}
	e.mounted = true
	tree := e.store.Get()
	for _, b := range e.bindings {
		e.apply(b, tree)
		b.unsubscribe = e.store.Subscribe(e.observer(b))
	}
	count := len(e.bindings)
	e.mu.Unlock()

	e.log.Info("engine mounted", "accommodations", count)
	e.publish(ports.EventEngineMounted, map[string]any{"accommodations": count})
}

func (e *Engine) observer(b *binding) settings.Observer {
	return func(prev, next settings.Tree) {
		if !b.applier.Changed(prev, next) {
			return
		}
		e.mu.Lock()
		defer e.mu.Unlock()
		if !e.mounted {
			return
		}
		e.apply(b, next)
	}
}

// apply runs the previous cleanup and applies the slice selected from tree.
// Callers hold e.mu.
func (e *Engine) apply(b *binding, tree settings.Tree) {
	if b.cleanup != nil {
		b.cleanup()
	}
	b.cleanup = b.applier.ApplyTree(e.doc, tree)
	b.runs++
	b.value = b.applier.Describe(tree)

	e.log.Debug("accommodation applied", "accommodation", b.applier.Name(), "value", b.value)
	if e.metrics != nil {
		e.metrics.ApplierRun(b.applier.Name())
	}
}

// Resync re-applies every applier against the current tree, for example after
// the tree was restored with Store.Replace or the document was re-rendered.
func (e *Engine) Resync() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.mounted {
		return
	}
	tree := e.store.Get()
	for _, b := range e.bindings {
		e.apply(b, tree)
	}
}

// Unmount unsubscribes every applier and runs each outstanding cleanup
// exactly once. It is safe to call more than once.
func (e *Engine) Unmount() {
	e.mu.Lock()
	if !e.mounted {
		e.mu.Unlock()
		return
	}
	e.mounted = false
	for _, b := range e.bindings {
		if b.unsubscribe != nil {
			b.unsubscribe()
			b.unsubscribe = nil
		}
		if b.cleanup != nil {
			b.cleanup()
			b.cleanup = nil
		}
	}
	e.mu.Unlock()

	e.log.Info("engine unmounted")
	e.publish(ports.EventEngineUnmounted, nil)
}

// Mounted reports whether the engine is currently mounted.
func (e *Engine) Mounted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mounted
}

// Statuses lists every binding in registration order.
func (e *Engine) Statuses() []Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Status, 0, len(e.bindings))
	for _, b := range e.bindings {
		out = append(out, Status{Accommodation: b.applier.Name(), Value: b.value, Runs: b.runs})
	}
	return out
}

func (e *Engine) publish(eventType string, data map[string]any) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.Publish(e.ctx, events.Event{Type: eventType, Data: data}); err != nil {
		e.log.Warn("publish failed", "event_type", eventType, "error", err.Error())
	}
}
