package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Disk stores blobs as plain files under a root directory.
type Disk struct {
	Root string
}

func NewDisk(root string) (*Disk, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload root: %w", err)
	}
	return &Disk{Root: root}, nil
}

func (d *Disk) Put(_ context.Context, path string, data []byte, _ string) error {
	full, err := d.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, data, 0o644)
}

func (d *Disk) Get(_ context.Context, path string) ([]byte, error) {
	full, err := d.resolve(path)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(full)
}

// resolve keeps every path inside the root. Stored names are generated
// server-side, so this only guards against programming mistakes.
func (d *Disk) resolve(path string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(path))
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) || filepath.IsAbs(clean) {
		return "", fmt.Errorf("blob path escapes root: %q", path)
	}
	return filepath.Join(d.Root, clean), nil
}
