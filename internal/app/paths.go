package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDirName = "nutrilog"

// DefaultStorePath returns the per-user store file for a backend.
func DefaultStorePath(backend Backend) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	name := "nutrilog.db"
	if backend == BackendBolt {
		name = "nutrilog.bolt"
	}
	return filepath.Join(base, appDirName, name), nil
}

func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}
	return nil
}
