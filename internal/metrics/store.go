package metrics

import (
	"github.com/alexisbeaulieu97/accommodate/internal/ports"
	"github.com/alexisbeaulieu97/accommodate/internal/settings"
)

// ObserveStore counts every changed path of every committed store change.
func ObserveStore(store *settings.Store, recorder ports.MetricsRecorder) (stop func()) {
	return store.Subscribe(func(prev, next settings.Tree) {
		for _, path := range settings.Changed(prev, next) {
			recorder.SettingsUpdated(path)
		}
	})
}
