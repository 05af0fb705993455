package filestore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// document is one JSON array on disk. Writes go to a temp file in the same
// directory and are renamed over the target, so a failed write leaves the
// previous contents in place.
type document[T any] struct {
	path string
	mu   sync.RWMutex
}

func newDocument[T any](path string) *document[T] {
	return &document[T]{path: path}
}

func (d *document[T]) read() ([]T, error) {
	raw, err := os.ReadFile(d.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (d *document[T]) write(items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(d.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(d.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return err
	}
	if err := os.Rename(tmpName, d.path); err != nil {
		cleanup()
		return err
	}
	return nil
}

// view runs fn under the read lock.
func (d *document[T]) view(fn func(items []T) error) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	items, err := d.read()
	if err != nil {
		return err
	}
	return fn(items)
}

// update runs fn under the write lock and persists what it returns.
func (d *document[T]) update(fn func(items []T) ([]T, error)) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	items, err := d.read()
	if err != nil {
		return err
	}
	next, err := fn(items)
	if err != nil {
		return err
	}
	return d.write(next)
}
