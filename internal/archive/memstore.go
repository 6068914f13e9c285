package archive

import (
	"os"
	"sync"
	"time"
)

// MemStore is an in-memory Store used in tests.
type MemStore struct {
	mu     sync.Mutex
	files  map[string][]byte
	stamps map[string]time.Time
	writes int
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{
		files:  make(map[string][]byte),
		stamps: make(map[string]time.Time),
	}
}

func (s *MemStore) Exists(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[name]
	return ok
}

func (s *MemStore) Write(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes++
	s.files[name] = append([]byte(nil), data...)
	s.stamps[name] = time.Now()
	return nil
}

// WriteCount returns how many Write calls have happened, letting tests
// assert write-once behavior.
func (s *MemStore) WriteCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func (s *MemStore) Read(name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[name]
	if !ok {
		return nil, os.ErrNotExist
	}
	return append([]byte(nil), data...), nil
}

func (s *MemStore) List() ([]FileInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	files := make([]FileInfo, 0, len(s.files))
	for name, data := range s.files {
		files = append(files, FileInfo{Name: name, Size: int64(len(data)), Created: s.stamps[name]})
	}
	return files, nil
}

func (s *MemStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.files[name]; !ok {
		return os.ErrNotExist
	}
	delete(s.files, name)
	delete(s.stamps, name)
	return nil
}
