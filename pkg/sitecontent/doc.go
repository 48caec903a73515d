// Package sitecontent provides the editable-content backend for the site:
// a hero video, a fixed set of named image slots, and a tagged photo
// gallery, persisted as a single JSON document.
//
// It exposes a single Service interface that orchestrates validation,
// media upload/deletion through a pluggable media.Store, and atomic
// read-modify-write of the content document. Media backends (filesystem,
// S3-compatible, memory) live under subpackages of media; the document
// store lives under store.
package sitecontent
