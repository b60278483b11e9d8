package persist

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/villnoweric/package-delivery-tycoon/core/model"
)

// FileStore persists the state to a local JSON file. Writes go through a
// temporary file and an atomic rename so a crash cannot leave a torn save.
type FileStore struct {
	path string
}

// NewFileStore returns a store writing to path. Parent directories are
// created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Save(_ context.Context, st model.GameState) error {
	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *FileStore) Load(_ context.Context) (model.GameState, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return model.GameState{}, ErrNoSave
	}
	if err != nil {
		return model.GameState{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	var st model.GameState
	if err := json.Unmarshal(data, &st); err != nil {
		return model.GameState{}, fmt.Errorf("parse save: %w", err)
	}
	return st, nil
}
