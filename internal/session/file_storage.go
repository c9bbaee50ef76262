package session

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
)

// FileStorage persists session fields as a small JSON file, the default when
// no Redis address is configured.
type FileStorage struct {
	path string
}

// NewFileStorage builds storage backed by the given file path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) Get(_ context.Context, key string) (string, bool, error) {
	values, err := s.load()
	if err != nil {
		return "", false, err
	}
	value, ok := values[key]
	return value, ok, nil
}

func (s *FileStorage) Set(_ context.Context, key, value string) error {
	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value
	encoded, err := json.Marshal(values)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, encoded, 0o600)
}

func (s *FileStorage) Clear(_ context.Context) error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (s *FileStorage) load() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	values := map[string]string{}
	if err := json.Unmarshal(raw, &values); err != nil {
		// A corrupt session file reads as empty rather than wedging startup.
		return map[string]string{}, nil
	}
	return values, nil
}
