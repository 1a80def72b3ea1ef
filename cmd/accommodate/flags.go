package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func validateApplyOptions(opts applyOptions) error {
	if strings.TrimSpace(opts.InputPath) == "" {
		return fmt.Errorf("input document is required")
	}

	abs, err := filepath.Abs(opts.InputPath)
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("input document does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("input path %s is a directory", abs)
	}

	return nil
}
