package sitecontent

import (
	"context"

	"github.com/secretspot/site-content/pkg/sitecontent/media"
)

// Service defines the main interface for the site-content library
type Service interface {
	// Read operations
	GetContent(ctx context.Context) (*ContentDocument, error)
	GetGallery(ctx context.Context) ([]GalleryItem, error)

	// Mutating operations
	UpdateHeroVideo(ctx context.Context, upload UploadInput) (*media.Stored, error)
	UpdateSlotImage(ctx context.Context, slotKey string, upload UploadInput) (*media.Stored, error)
	AddGalleryImage(ctx context.Context, category string, upload UploadInput) (*GalleryItem, error)
	DeleteGalleryImage(ctx context.Context, id string) error
}

// DocumentStore is the persistence contract the service depends on. The
// store package provides the JSON-file implementation.
type DocumentStore interface {
	// Load reads the persisted document, bootstrapping defaults when absent.
	Load() (*ContentDocument, error)

	// Save overwrites the persisted document with the full given document.
	Save(doc *ContentDocument) error

	// Update applies fn to the loaded document and saves the result under
	// the document lock. fn returning an error aborts the save.
	Update(fn func(*ContentDocument) error) (*ContentDocument, error)
}
