package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileBackend keeps each namespace blob in its own file under a state
// directory. Writes go through a temp file and rename so a crash mid-write
// never leaves a truncated blob behind.
type FileBackend struct {
	dir string
}

// OpenFile creates the state directory if needed and returns a file backend
// rooted there.
func OpenFile(dir string) (*FileBackend, error) {
	if dir == "" {
		return nil, errors.New("state directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(namespace string) string {
	return filepath.Join(b.dir, namespace+".json")
}

func (b *FileBackend) Load(namespace string) ([]byte, bool, error) {
	data, err := os.ReadFile(b.path(namespace))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read state file: %w", err)
	}
	return data, true, nil
}

func (b *FileBackend) Save(namespace string, blob []byte) error {
	tmp := b.path(namespace) + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp, b.path(namespace)); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

func (b *FileBackend) Close() error { return nil }
