package storage

import (
	"context"

	"github.com/alexisbeaulieu97/accommodate/internal/logger"
	"github.com/alexisbeaulieu97/accommodate/internal/ports"
	"github.com/alexisbeaulieu97/accommodate/internal/settings"
)

// AutoSave persists the tree after every committed change. Transient dialog
// state is not a reason to write. Save failures are logged and do not affect
// the store.
func AutoSave(ctx context.Context, store *settings.Store, repo ports.SettingsRepository, log ports.Logger) (stop func()) {
	if log == nil {
		log = logger.Nop()
	}
	log = log.With("component", "storage")

	return store.Subscribe(func(prev, next settings.Tree) {
		prev.UI, next.UI = settings.UI{}, settings.UI{}
		if prev == next {
			return
		}
		if err := repo.Save(ctx, next); err != nil {
			log.Error(err, "failed to persist settings")
			return
		}
		log.Debug("settings persisted")
	})
}

// Restore loads the stored tree into store. Callers with a mounted engine
// must Resync it afterwards.
func Restore(ctx context.Context, store *settings.Store, repo ports.SettingsRepository) error {
	tree, err := repo.Load(ctx)
	if err != nil {
		return err
	}
	store.Replace(tree)
	return nil
}
