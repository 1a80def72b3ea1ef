package events

import (
	"context"

	"github.com/alexisbeaulieu97/accommodate/internal/ports"
	"github.com/alexisbeaulieu97/accommodate/internal/settings"
)

// BridgeStore republishes every committed store change as an
// EventSettingsChanged event listing the dotted paths that changed, plus a
// profile event whenever the active profile moves.
func BridgeStore(ctx context.Context, store *settings.Store, publisher ports.EventPublisher) (unsubscribe func()) {
	return store.Subscribe(func(prev, next settings.Tree) {
		changed := settings.Changed(prev, next)
		_ = publisher.Publish(ctx, Event{
			Type: ports.EventSettingsChanged,
			Data: map[string]any{"paths": changed},
		})

		if prev.Profiles == next.Profiles {
			return
		}
		if next.Profiles != settings.ProfileNone {
			_ = publisher.Publish(ctx, Event{
				Type: ports.EventProfileActivated,
				Data: map[string]any{"profile": string(next.Profiles)},
			})
			return
		}
		_ = publisher.Publish(ctx, Event{
			Type: ports.EventProfileDeactivated,
			Data: map[string]any{"profile": string(prev.Profiles)},
		})
	})
}
