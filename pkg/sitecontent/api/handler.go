// Package api exposes the content service over HTTP with chi.
package api

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/secretspot/site-content/pkg/sitecontent"
)

// maxUploadMemory bounds the in-memory part of multipart parsing.
const maxUploadMemory = 32 << 20

// Handler handles HTTP requests for site content
type Handler struct {
	service    sitecontent.Service
	adminToken string
}

// NewHandler creates a new content handler
func NewHandler(service sitecontent.Service, adminToken string) *Handler {
	return &Handler{
		service:    service,
		adminToken: adminToken,
	}
}

// Routes returns the routes for the content API. Reads are public; every
// mutating route sits behind the bearer-token middleware.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/content", h.GetContent)
	r.Get("/gallery", h.GetGallery)

	r.Group(func(r chi.Router) {
		r.Use(RequireBearerToken(h.adminToken))

		r.Post("/hero-video", h.UpdateHeroVideo)
		r.Post("/slot-image", h.UpdateSlotImage)
		r.Post("/gallery", h.AddGalleryImage)
		r.Delete("/gallery/{id}", h.DeleteGalleryImage)
	})

	return r
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HeroVideoResponse is the response body for a hero video update
type HeroVideoResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Message  string `json:"message"`
}

// SlotImageResponse is the response body for a slot image update
type SlotImageResponse struct {
	SlotKey  string `json:"slot_key"`
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Message  string `json:"message"`
}

// GalleryAddResponse is the response body for a gallery upload
type GalleryAddResponse struct {
	Item    sitecontent.GalleryItem `json:"item"`
	Message string                  `json:"message"`
}

// GalleryDeleteResponse is the response body for a gallery deletion
type GalleryDeleteResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// GetContent returns the full content document. No auth required.
func (h *Handler) GetContent(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.GetContent(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.JSON(w, r, doc)
}

// GetGallery returns only the gallery sequence. No auth required.
func (h *Handler) GetGallery(w http.ResponseWriter, r *http.Request) {
	gallery, err := h.service.GetGallery(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.JSON(w, r, gallery)
}

// UpdateHeroVideo replaces the hero video with the uploaded file.
func (h *Handler) UpdateHeroVideo(w http.ResponseWriter, r *http.Request) {
	file, header, ok := h.formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	stored, err := h.service.UpdateHeroVideo(r.Context(), sitecontent.UploadInput{
		FileName: header.Filename,
		Reader:   file,
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.JSON(w, r, HeroVideoResponse{
		URL:      stored.URL,
		PublicID: stored.Ref,
		Message:  "Hero video updated",
	})
}

// UpdateSlotImage replaces the image in one named slot.
func (h *Handler) UpdateSlotImage(w http.ResponseWriter, r *http.Request) {
	file, header, ok := h.formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	slotKey := r.FormValue("slot_key")

	stored, err := h.service.UpdateSlotImage(r.Context(), slotKey, sitecontent.UploadInput{
		FileName: header.Filename,
		Reader:   file,
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.JSON(w, r, SlotImageResponse{
		SlotKey:  slotKey,
		URL:      stored.URL,
		PublicID: stored.Ref,
		Message:  "Slot image updated",
	})
}

// AddGalleryImage appends a new tagged image to the gallery.
func (h *Handler) AddGalleryImage(w http.ResponseWriter, r *http.Request) {
	file, header, ok := h.formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	category := r.FormValue("category")

	item, err := h.service.AddGalleryImage(r.Context(), category, sitecontent.UploadInput{
		FileName: header.Filename,
		Reader:   file,
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	render.JSON(w, r, GalleryAddResponse{
		Item:    *item,
		Message: "Gallery image added",
	})
}

// DeleteGalleryImage removes one gallery item by id, best-effort deleting
// the underlying media.
func (h *Handler) DeleteGalleryImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteGalleryImage(r.Context(), id); err != nil {
		h.renderError(w, r, err)
		return
	}

	render.JSON(w, r, GalleryDeleteResponse{
		Message: "Gallery image deleted",
		ID:      id,
	})
}

// formFile extracts the uploaded file from the multipart body, rejecting
// missing or empty payloads before any side effect.
func (h *Handler) formFile(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, bool) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "no file uploaded"})
		return nil, nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "no file uploaded"})
		return nil, nil, false
	}

	if header.Size == 0 {
		file.Close()
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: "empty file upload"})
		return nil, nil, false
	}

	return file, header, true
}

// renderError maps service errors onto HTTP statuses. Internal details are
// logged, not exposed.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, sitecontent.ErrInvalidSlotKey),
		errors.Is(err, sitecontent.ErrInvalidCategory),
		errors.Is(err, sitecontent.ErrEmptyUpload):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, ErrorResponse{Error: err.Error()})

	case errors.Is(err, sitecontent.ErrGalleryItemNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, ErrorResponse{Error: err.Error()})

	default:
		var storageErr *sitecontent.StorageError
		if errors.As(err, &storageErr) && storageErr.Op == "upload" {
			slog.Error("Media upload failed", "key", storageErr.Key, "err", storageErr.Err)
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, ErrorResponse{Error: "media upload failed: " + storageErr.Err.Error()})
			return
		}

		slog.Error("Request failed", "path", r.URL.Path, "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, ErrorResponse{Error: "internal server error"})
	}
}
