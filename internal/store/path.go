package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDBPath resolves where the database lives: the LINGUO_DB
// environment variable if set, otherwise $XDG_DATA_HOME/linguo/linguo.db,
// falling back to ~/.local/share.
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LINGUO_DB"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "linguo", "linguo.db"), nil
}

// EnsureDir creates the parent directory of path if it does not exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	return nil
}
