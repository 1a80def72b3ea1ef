package ports

import "context"

const (
	// EventSettingsChanged is emitted after a committed store change.
	EventSettingsChanged = "settings.changed"
	// EventProfileActivated is emitted when a profile preset is switched on.
	EventProfileActivated = "profile.activated"
	// EventProfileDeactivated is emitted when the active profile is cleared.
	EventProfileDeactivated = "profile.deactivated"
	// EventEngineMounted is emitted once every applier has run its initial pass.
	EventEngineMounted = "engine.mounted"
	// EventEngineUnmounted is emitted after every applier cleanup has run.
	EventEngineUnmounted = "engine.unmounted"
)

// DomainEvent represents a significant occurrence within the engine. Events
// carry structured payloads that downstream subscribers can use for logging,
// persistence, or UI updates.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish blocks until all handlers run, matching the engine's
// single-threaded settle-before-next-update model. Implementations must be
// thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Failures are surfaced
// via returned errors so publishers can log diagnostics and continue
// delivering to remaining subscribers.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler. Callers must invoke
// Unsubscribe to stop receiving events.
type Subscription interface {
	Unsubscribe()
}
