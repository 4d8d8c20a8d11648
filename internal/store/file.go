package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"HomerunOdds/internal/model"
)

// FileStore keeps the daily snapshot in a single JSON file.
type FileStore struct {
	Path string
}

// NewFileStore creates a file-backed store at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the snapshot from disk. A missing file or a snapshot from a
// different day is absent, not an error.
func (s *FileStore) Load(_ context.Context, date string) (*model.DailySnapshot, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snap model.DailySnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	if snap.Date != date {
		return nil, nil
	}
	return &snap, nil
}

// Save writes the snapshot through a temp file and renames it into place,
// so a crash mid-write can never leave a corrupt file behind.
func (s *FileStore) Save(_ context.Context, snap *model.DailySnapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".tmp")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}
