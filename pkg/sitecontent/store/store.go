// Package store persists the content document as a single JSON file
// guarded by one process-wide lock.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/secretspot/site-content/pkg/sitecontent"
)

// Store owns the persisted content document. All access goes through one
// mutex so concurrent writers never interleave partial document states.
type Store struct {
	mu   sync.Mutex
	path string
}

// New creates a store persisting to the given file path, creating the
// parent directory if needed. The file itself is created lazily on first
// load.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("content path is required")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create content directory: %w", err)
		}
	}

	return &Store{path: path}, nil
}

// Load reads the persisted document. A missing file bootstraps and persists
// the default document; an unreadable or corrupt file degrades to the
// default document in memory without overwriting the file. The returned
// document always satisfies the slot-key and gallery invariants.
func (s *Store) Load() (*sitecontent.ContentDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadLocked()
}

// Save serializes the full document and overwrites the persisted location.
func (s *Store) Save(doc *sitecontent.ContentDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saveLocked(doc)
}

// Update runs fn on the loaded document and saves the result, holding the
// lock across the whole read-modify-write so concurrent mutations never
// lose each other's changes. If fn returns an error nothing is saved.
func (s *Store) Update(fn func(*sitecontent.ContentDocument) error) (*sitecontent.ContentDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.loadLocked()
	if err != nil {
		return nil, err
	}

	if err := fn(doc); err != nil {
		return nil, err
	}

	if err := s.saveLocked(doc); err != nil {
		return nil, err
	}

	return doc, nil
}

func (s *Store) loadLocked() (*sitecontent.ContentDocument, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		doc := sitecontent.DefaultDocument()
		if err := s.saveLocked(doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		slog.Warn("Content document unreadable, using defaults", "path", s.path, "err", err)
		return sitecontent.DefaultDocument(), nil
	}

	var doc sitecontent.ContentDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		// Only explicit saves persist; the corrupt file is left in place.
		slog.Warn("Content document corrupt, using defaults", "path", s.path, "err", err)
		return sitecontent.DefaultDocument(), nil
	}

	doc.MergeDefaults()
	return &doc, nil
}

func (s *Store) saveLocked(doc *sitecontent.ContentDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode content document: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return &sitecontent.StorageError{Op: "save", Key: s.path, Err: err}
	}

	return nil
}
