package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// jsonMap is a single JSON object on disk decoded as map[K]V. A missing file
// reads as an empty map. Every write replaces the whole file atomically.
type jsonMap[K comparable, V any] struct {
	path string
	mode os.FileMode
	mu   sync.Mutex
}

func newJSONMap[K comparable, V any](dir, name string) *jsonMap[K, V] {
	return &jsonMap[K, V]{path: filepath.Join(dir, name), mode: 0o600}
}

// get returns the entry for key.
func (m *jsonMap[K, V]) get(key K) (V, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, err := m.read()
	if err != nil {
		var zero V
		return zero, false, err
	}
	v, ok := entries[key]
	return v, ok, nil
}

// all returns every entry.
func (m *jsonMap[K, V]) all() (map[K]V, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.read()
}

// update hands the current entries to fn and writes them back if fn
// reports a change.
func (m *jsonMap[K, V]) update(fn func(entries map[K]V) bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries, err := m.read()
	if err != nil {
		return err
	}
	if !fn(entries) {
		return nil
	}
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", m.path, err)
	}
	if err := replaceFile(m.path, b, m.mode); err != nil {
		return fmt.Errorf("write %s: %w", m.path, err)
	}
	return nil
}

func (m *jsonMap[K, V]) read() (map[K]V, error) {
	entries := make(map[K]V)
	b, err := os.ReadFile(m.path)
	if errors.Is(err, os.ErrNotExist) {
		return entries, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", m.path, err)
	}
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("decode %s: %w", m.path, err)
	}
	return entries, nil
}

// replaceFile writes b to a synced temp file in the target directory and
// renames it over path.
func replaceFile(path string, b []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
