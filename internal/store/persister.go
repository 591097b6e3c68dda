package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Persister loads and commits whole snapshots. Commit must be atomic:
// either the full snapshot is durable afterwards or the previous one is
// still intact.
type Persister interface {
	// Load returns the persisted snapshot, or (nil, nil) when nothing has
	// been persisted yet.
	Load(ctx context.Context) (*Snapshot, error)
	// Commit durably replaces the persisted snapshot.
	Commit(ctx context.Context, snap *Snapshot) error
}

// FileStore persists the snapshot as a JSON file, writing to a temp file
// in the same directory and renaming over the target so a crashed write
// cannot leave a torn snapshot behind.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed persister at the given path,
// creating parent directories as needed.
func NewFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}
	return &FileStore{path: path}, nil
}

// Load reads the snapshot file. A missing file is not an error.
func (f *FileStore) Load(_ context.Context) (*Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return &snap, nil
}

// Commit writes the snapshot atomically via temp file + rename.
func (f *FileStore) Commit(_ context.Context, snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".rental-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close snapshot: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// MemStore is an in-memory persister for tests and ephemeral runs.
type MemStore struct {
	mu   sync.Mutex
	snap *Snapshot

	// FailCommits makes every Commit return an error, for testing the
	// repository's rollback behavior.
	FailCommits bool

	// Commits counts successful commits.
	Commits int
}

// NewMemStore creates an empty in-memory persister.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Load returns the last committed snapshot, if any.
func (m *MemStore) Load(_ context.Context) (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.snap == nil {
		return nil, nil
	}
	return m.snap.Clone(), nil
}

// Commit replaces the held snapshot.
func (m *MemStore) Commit(_ context.Context, snap *Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailCommits {
		return fmt.Errorf("commit failed")
	}
	m.snap = snap.Clone()
	m.Commits++
	return nil
}
