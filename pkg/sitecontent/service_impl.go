package sitecontent

import (
	"context"
	"fmt"
	"log/slog"
	"path"

	"github.com/google/uuid"

	"github.com/secretspot/site-content/pkg/sitecontent/media"
)

// service implements the Service interface
type service struct {
	store        DocumentStore
	media        media.Store
	folderPrefix string
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithStore sets the document store for the service
func WithStore(store DocumentStore) Option {
	return func(s *service) {
		s.store = store
	}
}

// WithMediaStore sets the media backend for the service
func WithMediaStore(m media.Store) Option {
	return func(s *service) {
		s.media = m
	}
}

// WithFolderPrefix sets the root namespace for upload folders
func WithFolderPrefix(prefix string) Option {
	return func(s *service) {
		s.folderPrefix = prefix
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{
		folderPrefix: "secretspot",
	}

	for _, option := range options {
		option(s)
	}

	if s.store == nil {
		return nil, fmt.Errorf("document store is required")
	}
	if s.media == nil {
		return nil, fmt.Errorf("media store is required")
	}

	return s, nil
}

// Read operations

func (s *service) GetContent(ctx context.Context) (*ContentDocument, error) {
	return s.store.Load()
}

func (s *service) GetGallery(ctx context.Context) ([]GalleryItem, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return doc.Gallery, nil
}

// Mutating operations
//
// Every write follows the same shape: validate, upload the bytes outside
// the document lock, then read-modify-write the document. An upload
// failure aborts before the document is touched.

func (s *service) UpdateHeroVideo(ctx context.Context, upload UploadInput) (*media.Stored, error) {
	if upload.Reader == nil {
		return nil, ErrEmptyUpload
	}

	folder := path.Join(s.folderPrefix, "hero", "api")
	stored, err := s.media.Upload(ctx, upload.Reader, media.UploadParams{
		Folder:   folder,
		FileName: upload.FileName,
		Kind:     media.KindVideo,
	})
	if err != nil {
		return nil, &StorageError{Op: "upload", Key: folder, Err: err}
	}

	if _, err := s.store.Update(func(doc *ContentDocument) error {
		doc.HeroVideo = &stored.URL
		return nil
	}); err != nil {
		return nil, err
	}

	slog.Info("Hero video updated", "url", stored.URL)
	return stored, nil
}

func (s *service) UpdateSlotImage(ctx context.Context, slotKey string, upload UploadInput) (*media.Stored, error) {
	if !ValidSlotKey(slotKey) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSlotKey, slotKey)
	}
	if upload.Reader == nil {
		return nil, ErrEmptyUpload
	}

	folder := path.Join(s.folderPrefix, "slots", slotKey, "api")
	stored, err := s.media.Upload(ctx, upload.Reader, media.UploadParams{
		Folder:   folder,
		FileName: upload.FileName,
		Kind:     media.KindImage,
	})
	if err != nil {
		return nil, &StorageError{Op: "upload", Key: folder, Err: err}
	}

	if _, err := s.store.Update(func(doc *ContentDocument) error {
		doc.Slots[slotKey] = &stored.URL
		return nil
	}); err != nil {
		return nil, err
	}

	slog.Info("Slot image updated", "slot_key", slotKey, "url", stored.URL)
	return stored, nil
}

func (s *service) AddGalleryImage(ctx context.Context, category string, upload UploadInput) (*GalleryItem, error) {
	if !ValidCategory(category) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCategory, category)
	}
	if upload.Reader == nil {
		return nil, ErrEmptyUpload
	}

	folder := path.Join(s.folderPrefix, "gallery", category)
	stored, err := s.media.Upload(ctx, upload.Reader, media.UploadParams{
		Folder:   folder,
		FileName: upload.FileName,
		Kind:     media.KindImage,
	})
	if err != nil {
		return nil, &StorageError{Op: "upload", Key: folder, Err: err}
	}

	item := GalleryItem{
		ID:       uuid.New().String(),
		URL:      stored.URL,
		MediaRef: stored.Ref,
		Category: category,
	}

	if _, err := s.store.Update(func(doc *ContentDocument) error {
		doc.Gallery = append(doc.Gallery, item)
		return nil
	}); err != nil {
		return nil, err
	}

	slog.Info("Gallery image added", "id", item.ID, "category", category)
	return &item, nil
}

func (s *service) DeleteGalleryImage(ctx context.Context, id string) error {
	doc, err := s.store.Load()
	if err != nil {
		return err
	}

	var ref string
	found := false
	for _, item := range doc.Gallery {
		if item.ID == id {
			ref = item.MediaRef
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrGalleryItemNotFound, id)
	}

	// Best-effort backend cleanup: an orphaned file is preferable to an
	// index entry the user cannot remove.
	if err := s.media.Delete(ctx, ref); err != nil {
		slog.Warn("Media delete failed", "ref", ref, "err", err)
	}

	if _, err := s.store.Update(func(doc *ContentDocument) error {
		kept := doc.Gallery[:0]
		removed := false
		for _, item := range doc.Gallery {
			if item.ID == id {
				removed = true
				continue
			}
			kept = append(kept, item)
		}
		if !removed {
			return fmt.Errorf("%w: %s", ErrGalleryItemNotFound, id)
		}
		doc.Gallery = kept
		return nil
	}); err != nil {
		return err
	}

	slog.Info("Gallery image deleted", "id", id)
	return nil
}
