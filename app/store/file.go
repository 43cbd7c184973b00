package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileDriver stores one JSON file per record under a root directory.
// This is the default driver: the shop's whole state is a handful of small
// files a user can inspect or delete by hand.
type FileDriver struct {
	root string // absolute root directory
}

func NewFileDriver(root string) *FileDriver {
	// Make root absolute relative to working directory.
	if !filepath.IsAbs(root) {
		cwd, _ := os.Getwd()
		root = filepath.Join(cwd, root)
	}
	return &FileDriver{root: root}
}

func (d *FileDriver) path(key string) string {
	return filepath.Join(d.root, key+".json")
}

func (d *FileDriver) Read(key string) ([]byte, bool, error) {
	raw, err := os.ReadFile(d.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store/file: read %s: %w", key, err)
	}
	return raw, true, nil
}

func (d *FileDriver) Write(key string, value []byte) error {
	if err := os.MkdirAll(d.root, 0o755); err != nil {
		return fmt.Errorf("store/file: mkdir: %w", err)
	}

	// Write-then-rename so a crash mid-write never leaves a half record.
	tmp := d.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("store/file: write %s: %w", key, err)
	}
	if err := os.Rename(tmp, d.path(key)); err != nil {
		return fmt.Errorf("store/file: rename %s: %w", key, err)
	}
	return nil
}

func (d *FileDriver) Delete(key string) error {
	err := os.Remove(d.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("store/file: delete %s: %w", key, err)
	}
	return nil
}

// Root returns the absolute directory holding the record files.
// Used by the store:path CLI command.
func (d *FileDriver) Root() string { return d.root }
