package asset

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileBackend stores images as individual files in a directory.
type FileBackend struct {
	dir string
}

// NewFileBackend creates dir if needed.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Join(ErrStorageUnavailable, err)
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) Put(_ context.Context, name string, data []byte) error {
	return os.WriteFile(filepath.Join(b.dir, name), data, 0o644) //nolint:gosec // Images are public
}

func (b *FileBackend) Get(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(b.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

// MemoryBackend keeps images in memory.
type MemoryBackend struct {
	mu     sync.RWMutex
	images map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{images: make(map[string][]byte)}
}

func (b *MemoryBackend) Put(_ context.Context, name string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.images[name] = append([]byte(nil), data...)
	return nil
}

func (b *MemoryBackend) Get(_ context.Context, name string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	data, ok := b.images[name]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), data...), nil
}

// Compile-time interface checks
var (
	_ Backend = (*FileBackend)(nil)
	_ Backend = (*MemoryBackend)(nil)
)
