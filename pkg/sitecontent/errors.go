package sitecontent

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrInvalidSlotKey indicates a slot key outside the fixed slot set
	ErrInvalidSlotKey = errors.New("invalid slot key")

	// ErrInvalidCategory indicates a gallery category outside the closed set
	ErrInvalidCategory = errors.New("invalid gallery category")

	// ErrEmptyUpload indicates a missing or empty file payload
	ErrEmptyUpload = errors.New("empty file upload")

	// ErrGalleryItemNotFound indicates a gallery item was not found
	ErrGalleryItemNotFound = errors.New("gallery item not found")
)

// StorageError represents an error from a media or document storage operation.
type StorageError struct {
	Op  string // "upload", "delete", "load", "save"
	Key string // folder, ref or path involved
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage operation %s failed for %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
