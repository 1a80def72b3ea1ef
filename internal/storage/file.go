// Package storage persists the settings tree between sessions.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/alexisbeaulieu97/accommodate/internal/ports"
	"github.com/alexisbeaulieu97/accommodate/internal/settings"
	acerrors "github.com/alexisbeaulieu97/accommodate/pkg/errors"
)

// FileVersion is the schema version written to settings files.
const FileVersion = "1.0"

// File is the on-disk envelope around the settings tree.
type File struct {
	Version  string        `json:"version"`
	Settings settings.Tree `json:"settings"`
}

// FileRepository stores the tree as JSON at a fixed path.
type FileRepository struct {
	path string
	mu   sync.Mutex
}

var _ ports.SettingsRepository = (*FileRepository)(nil)

// NewFileRepository creates a repository at path. The directory is created on
// first save.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Path returns the file location.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads and validates the stored tree. A missing file yields the
// defaults.
func (r *FileRepository) Load(ctx context.Context) (settings.Tree, error) {
	if err := ctx.Err(); err != nil {
		return settings.Tree{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings.Defaults(), nil
		}
		return settings.Tree{}, fmt.Errorf("failed to read settings: %w", err)
	}

	// Fields absent from the file keep their defaults.
	file := File{Settings: settings.Defaults()}
	if err := json.Unmarshal(data, &file); err != nil {
		return settings.Tree{}, acerrors.NewParseError(r.path, 0, err)
	}
	if file.Version != FileVersion {
		return settings.Tree{}, acerrors.NewValidationError("version",
			fmt.Sprintf("unsupported settings version %q", file.Version), nil)
	}
	if err := settings.Validate(file.Settings); err != nil {
		return settings.Tree{}, err
	}
	return file.Settings, nil
}

// Save writes the tree atomically through a temporary file and rename.
func (r *FileRepository) Save(ctx context.Context, tree settings.Tree) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(File{Version: FileVersion, Settings: tree}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	tmpPath := r.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}
