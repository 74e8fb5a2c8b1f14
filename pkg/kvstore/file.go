package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// envelope is the on-disk/on-wire shape shared by the file and redis
// backends: the snapshot payload with its version embedded.
type envelope struct {
	Version int64           `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// FileStore keeps one JSON document per key inside a data directory. It is
// the local-storage analog: a single durable slot per collection, written
// whole on every mutation. Writes go through a temp file and rename so a
// crash never leaves a half-written snapshot behind.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFile(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("kvstore: data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("kvstore: create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileStore) Get(_ context.Context, key string) (Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read(key)
}

func (f *FileStore) read(key string) (Snapshot, error) {
	raw, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Snapshot{}, nil
		}
		return Snapshot{}, fmt.Errorf("kvstore: read %s: %w", key, err)
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Snapshot{}, fmt.Errorf("kvstore: decode %s: %w", key, err)
	}
	return Snapshot{Version: env.Version, Data: env.Data}, nil
}

func (f *FileStore) Put(_ context.Context, key string, data []byte, expectedVersion int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	current, err := f.read(key)
	if err != nil {
		return 0, err
	}
	if current.Version != expectedVersion {
		return 0, ErrVersionConflict
	}

	next := envelope{Version: expectedVersion + 1, Data: data}
	encoded, err := json.Marshal(next)
	if err != nil {
		return 0, fmt.Errorf("kvstore: encode %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("kvstore: temp file for %s: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(encoded); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return 0, fmt.Errorf("kvstore: write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return 0, fmt.Errorf("kvstore: close %s: %w", key, err)
	}
	if err := os.Rename(tmpName, f.path(key)); err != nil {
		os.Remove(tmpName)
		return 0, fmt.Errorf("kvstore: commit %s: %w", key, err)
	}
	return next.Version, nil
}

func (f *FileStore) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("kvstore: delete %s: %w", key, err)
	}
	return nil
}

func (f *FileStore) Close() error {
	return nil
}
