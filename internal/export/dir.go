// Package export provides destinations for exported CSV files.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	interfaces "github.com/Miguelburitica/accounts-project/internal/interfaces"
)

// Dir writes each emitted file into a directory, replacing existing files.
type Dir struct {
	path string

	mu      sync.Mutex
	written []string
}

func NewDir(path string) *Dir {
	return &Dir{path: path}
}

func (d *Dir) Emit(ctx context.Context, filename, content string) error {
	if filepath.Base(filename) != filename {
		return fmt.Errorf("emit %q: file name must not contain a path", filename)
	}
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(d.path, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return err
	}

	d.mu.Lock()
	d.written = append(d.written, path)
	d.mu.Unlock()
	return nil
}

// Written lists the paths written so far, in order.
func (d *Dir) Written() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]string(nil), d.written...)
}

var _ interfaces.FileEmitter = (*Dir)(nil)
