package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/secretspot/site-content/pkg/sitecontent/media"
)

// Backend is a local-disk implementation of the media.Store interface.
// Files are written flat under a served directory with collision-resistant
// names; the reference handed back is the generated filename.
type Backend struct {
	baseDir   string
	urlPrefix string
}

// Config options for the filesystem backend
type Config struct {
	BaseDir   string // Directory for storing files
	URLPrefix string // Public URL prefix the directory is served under (default: /uploads)
}

// New creates a new filesystem media backend
func New(config Config) (*Backend, error) {
	if config.BaseDir == "" {
		return nil, errors.New("base directory is required")
	}
	if config.URLPrefix == "" {
		config.URLPrefix = "/uploads"
	}

	if err := os.MkdirAll(config.BaseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}

	return &Backend{
		baseDir:   config.BaseDir,
		urlPrefix: strings.TrimSuffix(config.URLPrefix, "/"),
	}, nil
}

// Upload writes the payload to disk under a generated filename and returns
// a locally-rooted URL plus the filename as the deletion reference.
func (b *Backend) Upload(ctx context.Context, reader io.Reader, params media.UploadParams) (*media.Stored, error) {
	name := generateFilename(params.FileName)
	filePath := filepath.Join(b.baseDir, name)

	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		// Don't leave a partial file behind.
		file.Close()
		os.Remove(filePath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &media.Stored{
		URL: fmt.Sprintf("%s/%s", b.urlPrefix, name),
		Ref: name,
	}, nil
}

// Delete removes the file named by ref if present. A missing file is not
// an error.
func (b *Backend) Delete(ctx context.Context, ref string) error {
	// Refs are bare filenames; strip any path components a stale or
	// malformed ref might carry.
	filePath := filepath.Join(b.baseDir, filepath.Base(ref))

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil
	}

	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// generateFilename builds a collision-resistant name from a random token
// plus the sanitized original filename.
func generateFilename(original string) string {
	token := strings.ReplaceAll(uuid.New().String(), "-", "")
	if original == "" {
		return token
	}
	return fmt.Sprintf("%s_%s", token, sanitizeFilename(original))
}

func sanitizeFilename(filename string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		" ", "_",
	)
	return replacer.Replace(filename)
}
