package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

const slotExt = ".json"

var keyRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// FS implements Provider with one file per key under a root directory.
type FS struct {
	root string // absolute path to the slot directory
}

// NewFS creates a new FS provider rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("storage: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("storage: root is not a directory: %s", abs)
	}
	return &FS{root: abs}, nil
}

// slotPath maps a key to its file. Keys are plain identifiers, so nothing
// can escape the root.
func (f *FS) slotPath(key string) (string, error) {
	if !keyRe.MatchString(key) {
		return "", fmt.Errorf("storage: invalid key %q", key)
	}
	return filepath.Join(f.root, key+slotExt), nil
}

// Read returns the bytes stored under key.
func (f *FS) Read(key string) ([]byte, error) {
	p, err := f.slotPath(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", key, err)
	}
	return data, nil
}

// Write atomically replaces the slot: tmp file → fsync → rename.
func (f *FS) Write(key string, value []byte) error {
	p, err := f.slotPath(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.root, ".sitemarks-tmp-*")
	if err != nil {
		return fmt.Errorf("storage: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(value); err != nil {
		return fmt.Errorf("storage: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("storage: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: close temp: %w", err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		return fmt.Errorf("storage: rename: %w", err)
	}
	success = true
	return nil
}

// Close is a no-op for the file system provider.
func (f *FS) Close() error { return nil }
