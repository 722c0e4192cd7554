package kvstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// File persists one file per key under a base directory.
type File struct {
	baseDir string
}

// NewFile ensures the base directory exists and returns a handle.
func NewFile(baseDir string) (*File, error) {
	if baseDir == "" {
		baseDir = "./data"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}
	return &File{baseDir: baseDir}, nil
}

func (s *File) Get(_ context.Context, key string) (string, bool, error) {
	raw, err := os.ReadFile(s.resolve(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read blob %s: %w", key, err)
	}
	return string(raw), true, nil
}

func (s *File) Set(_ context.Context, key, value string) error {
	if err := os.WriteFile(s.resolve(key), []byte(value), 0o644); err != nil {
		return fmt.Errorf("write blob %s: %w", key, err)
	}
	return nil
}

func (s *File) Available() bool { return true }

func (s *File) resolve(key string) string {
	return filepath.Join(s.baseDir, key+".json")
}
