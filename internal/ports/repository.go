package ports

import (
	"context"

	"github.com/alexisbeaulieu97/accommodate/internal/settings"
)

// SettingsRepository persists the settings tree on behalf of the host. The
// engine itself never persists anything; hosts opt in by wiring a repository.
//
// Load returns settings.Defaults() when nothing has been stored yet. A stored
// tree that fails validation is reported as an error rather than partially
// applied.
type SettingsRepository interface {
	Load(ctx context.Context) (settings.Tree, error)
	Save(ctx context.Context, tree settings.Tree) error
}
