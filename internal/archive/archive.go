// Package archive persists redacted answer-key copies under deterministic
// filenames. Storage is modeled as a capability interface so the pipeline and
// handlers never touch the filesystem directly.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileInfo describes one archived file.
type FileInfo struct {
	Name    string    `json:"name"`
	Size    int64     `json:"size"`
	Created time.Time `json:"created"`
}

// Store is the persistence capability for sanitized answer keys.
type Store interface {
	Exists(name string) bool
	Write(name string, data []byte) error
	Read(name string) ([]byte, error)
	List() ([]FileInfo, error)
	Delete(name string) error
}

// DirStore stores files in a single directory.
type DirStore struct {
	dir string
}

// NewDirStore creates the backing directory if needed.
func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}
	return &DirStore{dir: dir}, nil
}

// Exists reports whether a file with this name has been archived.
func (s *DirStore) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.dir, name))
	return err == nil
}

// Write stores the file. Callers check Exists first; a lost race between two
// identical writers is harmless since content derives from the same source.
func (s *DirStore) Write(name string, data []byte) error {
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write archive file: %w", err)
	}
	return nil
}

// Read returns the file contents.
func (s *DirStore) Read(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.dir, name))
}

// List returns archived .html files, newest first.
func (s *DirStore) List() ([]FileInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read archive dir: %w", err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Name:    entry.Name(),
			Size:    info.Size(),
			Created: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Created.After(files[j].Created)
	})
	return files, nil
}

// Delete removes the file.
func (s *DirStore) Delete(name string) error {
	return os.Remove(filepath.Join(s.dir, name))
}
