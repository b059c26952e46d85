package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// FileStore persists snapshots as a single JSON file, matching the
// flights.json layout of the original data file.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore writing to the given path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the snapshot file. A missing file or a payload that does not
// match the snapshot schema is treated as "no prior state", never as an
// error: the caller regenerates the catalog instead.
func (fs *FileStore) Load(ctx context.Context) (*Snapshot, error) {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("store: failed to read %s: %v", fs.path, err)
		}
		return nil, nil
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("store: %s does not match the snapshot schema, regenerating: %v", fs.path, err)
		return nil, nil
	}

	return &snap, nil
}

// Save overwrites the snapshot file wholesale. The write goes through a
// temp file and rename so a crash mid-write cannot leave a truncated
// snapshot behind.
func (fs *FileStore) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	tmp := fs.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(fs.path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	return nil
}
