package kv

import (
	"errors"
	"os"
	"path/filepath"
)

// File keeps one file per key under a base directory.
type File struct{ base string }

func NewFile(base string) (*File, error) {
	if base == "" {
		base = "./data"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &File{base: base}, nil
}

func (s *File) path(key string) string {
	return filepath.Join(s.base, filepath.Clean(key)+".json")
}

func (s *File) Get(key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, errors.New("empty key")
	}
	b, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (s *File) Set(key string, value []byte) error {
	if key == "" {
		return errors.New("empty key")
	}
	return os.WriteFile(s.path(key), value, 0o644)
}

func (s *File) Delete(key string) error {
	if key == "" {
		return errors.New("empty key")
	}
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
