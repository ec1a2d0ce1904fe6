// Package kv holds the storage backends the progress record persists
// through. The interface is a plain string-keyed map so tests can inject
// an in-memory double and non-persistent contexts can inject Noop.
package kv

import "sync"

type Backend interface {
	// Get returns the stored value and whether the key was present.
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

type Memory struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{m: map[string][]byte{}}
}

func (s *Memory) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (s *Memory) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.m[key] = v
	return nil
}

func (s *Memory) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

// Noop is the "storage unavailable" backend: reads find nothing and
// writes vanish silently. Used when the server runs without a writable
// location, mirroring the original app rendering before its store exists.
type Noop struct{}

func (Noop) Get(string) ([]byte, bool, error) { return nil, false, nil }
func (Noop) Set(string, []byte) error         { return nil }
func (Noop) Delete(string) error              { return nil }
