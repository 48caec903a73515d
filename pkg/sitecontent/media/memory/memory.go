package memory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/secretspot/site-content/pkg/sitecontent/media"
)

// Backend is an in-memory implementation of the media.Store interface,
// intended for tests. It records upload and delete calls so tests can
// assert on backend interactions.
type Backend struct {
	mu      sync.RWMutex
	objects map[string][]byte
	uploads int
	deletes int

	// FailUploads makes every Upload return an error, for exercising
	// upstream-failure paths.
	FailUploads bool
}

// New creates a new in-memory media backend
func New() *Backend {
	return &Backend{
		objects: make(map[string][]byte),
	}
}

// Upload stores the payload in memory under a generated reference.
func (b *Backend) Upload(ctx context.Context, reader io.Reader, params media.UploadParams) (*media.Stored, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.uploads++
	if b.FailUploads {
		return nil, errors.New("upload failed")
	}

	token := strings.ReplaceAll(uuid.New().String(), "-", "")
	ref := path.Join(params.Folder, token)
	b.objects[ref] = data

	return &media.Stored{
		URL: fmt.Sprintf("memory://%s", ref),
		Ref: ref,
	}, nil
}

// Delete removes the object by reference. A missing object is not an error.
func (b *Backend) Delete(ctx context.Context, ref string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.deletes++
	delete(b.objects, ref)
	return nil
}

// Get returns the stored bytes for a reference.
func (b *Backend) Get(ref string) ([]byte, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, ok := b.objects[ref]
	return data, ok
}

// UploadCount returns how many Upload calls were made.
func (b *Backend) UploadCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.uploads
}

// DeleteCount returns how many Delete calls were made.
func (b *Backend) DeleteCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.deletes
}
