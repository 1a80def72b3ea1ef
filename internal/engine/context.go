package engine

import (
	"context"

	"github.com/alexisbeaulieu97/accommodate/internal/logger"
	"github.com/alexisbeaulieu97/accommodate/internal/ports"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for application traces.
func WithLogger(log ports.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithMetrics counts every applier run.
func WithMetrics(m ports.MetricsRecorder) Option {
	return func(e *Engine) { e.metrics = m }
}

// WithPublisher emits mount and unmount events.
func WithPublisher(p ports.EventPublisher) Option {
	return func(e *Engine) { e.publisher = p }
}

// WithContext sets the context passed to the publisher. Its correlation id, if
// any, is attached to every log line.
func WithContext(ctx context.Context) Option {
	return func(e *Engine) {
		if ctx != nil {
			e.ctx = ctx
		}
	}
}

func defaults(e *Engine) {
	e.log = logger.Nop()
	e.ctx = context.Background()
}
